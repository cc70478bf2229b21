package models

import "time"

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category" gorm:"not null"`
	IsVeg       bool      `json:"is_veg" gorm:"default:true"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
