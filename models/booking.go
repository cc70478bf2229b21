package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	CustomerName   string        `json:"customer_name" gorm:"not null"`
	CustomerPhone  string        `json:"customer_phone" gorm:"not null"`
	BookingDate    time.Time     `json:"booking_date" gorm:"not null"`
	BookingTime    string        `json:"booking_time" gorm:"not null"` // "HH:MM", validated on input
	NumberOfPeople int           `json:"number_of_people" gorm:"not null"`
	Status         BookingStatus `json:"status" gorm:"not null;default:'Confirmed'"`
	CreatedAt      time.Time     `json:"created_at"`
}
