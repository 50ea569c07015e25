package models

import "time"

// CartItem is a pending order line owned by one user, removed once paid.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"index;not null"`
	MenuItemID uint      `json:"menu_item_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
