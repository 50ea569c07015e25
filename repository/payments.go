package repository

import (
	"context"

	"foodee-api/models"

	"gorm.io/gorm"
)

// Payments is the store for the payments collection.
type Payments struct {
	db *gorm.DB
}

func NewPayments(db *gorm.DB) *Payments {
	return &Payments{db: db}
}

// ListByEmail returns the payments recorded for the given email.
func (r *Payments) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Settle records a payment and deletes the cart items it references,
// in a single transaction so a failed cleanup rolls the payment back.
// Returns the number of cart items deleted.
func (r *Payments) Settle(ctx context.Context, payment *models.Payment) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if len(payment.CartItemIDs) == 0 {
			return nil
		}
		result := tx.Where("id IN ?", payment.CartItemIDs).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
