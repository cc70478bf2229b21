package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
)

type Payment struct {
	ID                uint          `json:"id" gorm:"primaryKey"`
	OrderID           uint          `json:"order_id" gorm:"uniqueIndex;not null"`
	PaymentMethod     string        `json:"payment_method" gorm:"not null"`
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	RazorpayOrderID   string        `json:"razorpay_order_id"`
	RazorpaySignature string        `json:"-"`
	Amount            float64       `json:"amount" gorm:"not null"`
	Status            PaymentStatus `json:"status" gorm:"not null;default:'Pending'"`
	PaymentDate       time.Time     `json:"payment_date"`
}
