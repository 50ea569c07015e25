package repository

import (
	"context"
	"errors"

	"foodee-api/models"

	"gorm.io/gorm"
)

// Users is the store for the users collection.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// List returns all users.
func (r *Users) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail returns the user with the given email, or nil if none exists.
func (r *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert stores a new user and fills in its generated ID.
func (r *Users) Insert(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// PromoteAdmin sets role=admin on the user with the given ID and
// returns the number of rows modified.
func (r *Users) PromoteAdmin(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("role", models.RoleAdmin)
	return result.RowsAffected, result.Error
}
