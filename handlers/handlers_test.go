package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"foodee-api/handlers"
	"foodee-api/middleware"
	"foodee-api/models"
	"foodee-api/repository"
	"foodee-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "handler-test-secret"

// fakeGateway stands in for the payment processor and records the
// last amount requested.
type fakeGateway struct {
	lastAmount int64
	secret     string
	err        error
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64) (string, error) {
	g.lastAmount = amount
	if g.err != nil {
		return "", g.err
	}
	return g.secret, nil
}

type env struct {
	router  *gin.Engine
	db      *gorm.DB
	gateway *fakeGateway
}

// setup builds the full route table over an in-memory store and a fake
// payment gateway.
func setup(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.MenuItem{}, &models.Review{},
		&models.CartItem{}, &models.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gw := &fakeGateway{secret: "pi_test_client_secret"}
	h := &handlers.Handler{
		JWTSecret: testSecret,
		Users:     repository.NewUsers(db),
		Menu:      repository.NewMenu(db),
		Reviews:   repository.NewReviews(db),
		Carts:     repository.NewCarts(db),
		Payments:  repository.NewPayments(db),
		Gateway:   gw,
	}

	r := gin.New()
	routes.SetupRoutes(r, h)

	return &env{router: r, db: db, gateway: gw}
}

// seedUser inserts a user directly into the store.
func (e *env) seedUser(t *testing.T, email string, role models.UserRole) uint {
	t.Helper()
	user := models.User{Email: email, Role: role}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user.ID
}

// seedCartItem inserts a cart item directly into the store.
func (e *env) seedCartItem(t *testing.T, email string, price float64) uint {
	t.Helper()
	item := models.CartItem{Email: email, Name: "item", Price: price}
	if err := e.db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed cart item: %v", err)
	}
	return item.ID
}

func (e *env) token(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(testSecret, email, "")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// do performs a JSON request against the router. Empty token means no
// Authorization header.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}

func wantErrorBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	body := decode[map[string]any](t, w)
	if body["error"] != true {
		t.Errorf("body error = %v, want true", body["error"])
	}
}
