package models

import "time"

// Payment records a completed checkout. CartItemIDs are the cart lines
// settled by this payment; they are deleted when the payment is recorded.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Email         string    `json:"email" gorm:"index;not null"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount" gorm:"not null"`
	CartItemIDs   []uint    `json:"cart_item_ids" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"created_at"`
}
