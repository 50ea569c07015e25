package repository

import (
	"context"

	"foodee-api/models"

	"gorm.io/gorm"
)

// Menu is the store for the menu collection.
type Menu struct {
	db *gorm.DB
}

func NewMenu(db *gorm.DB) *Menu {
	return &Menu{db: db}
}

// List returns all menu items.
func (r *Menu) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Insert stores a new menu item and fills in its generated ID.
func (r *Menu) Insert(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteByID removes the menu item with the given ID and returns
// the number of rows deleted.
func (r *Menu) DeleteByID(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.MenuItem{}, id)
	return result.RowsAffected, result.Error
}
