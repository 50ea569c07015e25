package models

import "time"

type MenuItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Recipe    string    `json:"recipe"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
