package models

import "time"

// OrderStatus represents the lifecycle state of a customer order
type OrderStatus string

const (
	StatusPendingConfirmation OrderStatus = "Pending Confirmation"
	StatusConfirmed           OrderStatus = "Confirmed"
	StatusDelivered           OrderStatus = "Delivered"
	StatusCancelled           OrderStatus = "Cancelled"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	Reference       string      `json:"reference" gorm:"uniqueIndex;not null"`
	CustomerName    string      `json:"customer_name" gorm:"not null"`
	CustomerPhone   string      `json:"customer_phone" gorm:"not null"`
	CustomerEmail   string      `json:"customer_email"`
	DeliveryAddress string      `json:"delivery_address"`
	TotalPrice      float64     `json:"total_price" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'Pending Confirmation'"`
	OrderDate       time.Time   `json:"order_date"`
	Items           []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
	Payment         *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot of menu price at order time
}
