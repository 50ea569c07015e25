package repository

import (
	"context"

	"foodee-api/models"

	"gorm.io/gorm"
)

// Reviews is the store for the reviews collection.
type Reviews struct {
	db *gorm.DB
}

func NewReviews(db *gorm.DB) *Reviews {
	return &Reviews{db: db}
}

// List returns all reviews.
func (r *Reviews) List(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Insert stores a new review and fills in its generated ID.
func (r *Reviews) Insert(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}
