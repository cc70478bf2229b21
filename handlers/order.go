package handlers

import (
	"math"
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	CustomerName    string   `json:"customer_name" binding:"required"`
	CustomerPhone   string   `json:"customer_phone" binding:"required"`
	CustomerEmail   string   `json:"customer_email"`
	DeliveryAddress string   `json:"delivery_address"`
	TotalPrice      *float64 `json:"total_price" binding:"required"`
	Items           []struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,dive"`
}

// PlaceOrder creates a new order with status Pending Confirmation. Each
// requested item is resolved against the available menu by exact name;
// names that match nothing are skipped rather than rejected. The total is
// taken from the client as-is unless strict totals are enabled.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + err.Error()})
		return
	}

	var orderItems []models.OrderItem
	var lineTotal float64
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		err := config.DB.Where("name = ? AND is_available = ?", reqItem.Name, true).First(&menuItem).Error
		if err != nil {
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   reqItem.Quantity,
			Price:      menuItem.Price,
		})
		lineTotal += menuItem.Price * float64(reqItem.Quantity)
	}

	if config.StrictTotals && math.Abs(*req.TotalPrice-lineTotal) > 0.01 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order total does not match line items"})
		return
	}

	order := models.Order{
		Reference:       uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		TotalPrice:      *req.TotalPrice,
		Status:          models.StatusPendingConfirmation,
		OrderDate:       time.Now(),
		Items:           orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Order placed successfully",
		"order_id":  order.ID,
		"reference": order.Reference,
	})
}
