package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"foodee-api/models"
)

func TestListMenuIsPublic(t *testing.T) {
	t.Parallel()
	e := setup(t)
	if err := e.db.Create(&models.MenuItem{Name: "Salad", Category: "starter", Price: 8}).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}

	w := e.do(t, http.MethodGet, "/menu", "", nil)
	wantStatus(t, w, http.StatusOK)
	items := decode[[]models.MenuItem](t, w)
	if len(items) != 1 || items[0].Name != "Salad" {
		t.Errorf("menu = %+v, want the seeded salad", items)
	}
}

func TestAddMenuItemIsAdminOnly(t *testing.T) {
	t.Parallel()
	e := setup(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)
	e.seedUser(t, "plain@x.com", models.RoleDefault)

	item := map[string]any{"name": "Burger", "category": "main", "price": 11.0}

	t.Run("no token", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/menu", "", item)
		wantStatus(t, w, http.StatusUnauthorized)
		wantErrorBody(t, w)
	})

	t.Run("non-admin", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/menu", e.token(t, "plain@x.com"), item)
		wantStatus(t, w, http.StatusForbidden)
		wantErrorBody(t, w)
	})

	t.Run("admin", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/menu", e.token(t, "admin@x.com"), item)
		wantStatus(t, w, http.StatusCreated)
		body := decode[map[string]any](t, w)
		if body["inserted_id"] == nil {
			t.Error("inserted_id missing from response")
		}
	})
}

func TestDeleteMenuItem(t *testing.T) {
	t.Parallel()
	e := setup(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)
	token := e.token(t, "admin@x.com")

	menuItem := models.MenuItem{Name: "Soup", Price: 6}
	if err := e.db.Create(&menuItem).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}

	w := e.do(t, http.MethodDelete, fmt.Sprintf("/menu/%d", menuItem.ID), token, nil)
	wantStatus(t, w, http.StatusOK)
	body := decode[map[string]any](t, w)
	if body["deleted_count"] != float64(1) {
		t.Errorf("deleted_count = %v, want 1", body["deleted_count"])
	}

	w = e.do(t, http.MethodGet, "/menu", "", nil)
	wantStatus(t, w, http.StatusOK)
	if items := decode[[]models.MenuItem](t, w); len(items) != 0 {
		t.Errorf("menu after delete = %+v, want empty", items)
	}

	// Deleting again reports zero rows, not an error.
	w = e.do(t, http.MethodDelete, fmt.Sprintf("/menu/%d", menuItem.ID), token, nil)
	wantStatus(t, w, http.StatusOK)
	body = decode[map[string]any](t, w)
	if body["deleted_count"] != float64(0) {
		t.Errorf("deleted_count = %v, want 0", body["deleted_count"])
	}
}

func TestReviews(t *testing.T) {
	t.Parallel()
	e := setup(t)

	t.Run("listing is public", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/reviews", "", nil)
		wantStatus(t, w, http.StatusOK)
	})

	t.Run("posting requires a token", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/reviews", "", map[string]any{"name": "Bob", "rating": 4})
		wantStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("posted review shows up in the listing", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/reviews", e.token(t, "bob@x.com"), map[string]any{
			"name": "Bob", "details": "great pasta", "rating": 4.5,
		})
		wantStatus(t, w, http.StatusCreated)

		w = e.do(t, http.MethodGet, "/reviews", "", nil)
		wantStatus(t, w, http.StatusOK)
		reviews := decode[[]models.Review](t, w)
		if len(reviews) != 1 || reviews[0].Details != "great pasta" {
			t.Errorf("reviews = %+v, want the posted review", reviews)
		}
	})
}
