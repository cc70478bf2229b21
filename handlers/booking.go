package handlers

import (
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	BookingDate    string `json:"booking_date" binding:"required"`
	BookingTime    string `json:"booking_time" binding:"required"`
	NumberOfPeople int    `json:"number_of_people" binding:"required,min=1"`
}

// CreateBooking creates a new table booking
func CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_date must be in YYYY-MM-DD format"})
		return
	}
	if _, err := time.Parse("15:04", req.BookingTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_time must be in HH:MM format"})
		return
	}

	booking := models.Booking{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		BookingDate:    date,
		BookingTime:    req.BookingTime,
		NumberOfPeople: req.NumberOfPeople,
		Status:         models.BookingConfirmed,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking created successfully",
		"booking_id": booking.ID,
	})
}
