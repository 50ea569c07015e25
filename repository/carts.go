package repository

import (
	"context"

	"foodee-api/models"

	"gorm.io/gorm"
)

// Carts is the store for the carts collection.
type Carts struct {
	db *gorm.DB
}

func NewCarts(db *gorm.DB) *Carts {
	return &Carts{db: db}
}

// ListByEmail returns the cart items owned by the given email.
func (r *Carts) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Insert stores a new cart item and fills in its generated ID.
func (r *Carts) Insert(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteByID removes the cart item with the given ID and returns
// the number of rows deleted.
func (r *Carts) DeleteByID(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.CartItem{}, id)
	return result.RowsAffected, result.Error
}
