package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"
	"restaurant-api/reporting"
	"restaurant-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Menu management ─────────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category" binding:"required"`
	IsVeg       *bool   `json:"is_veg"`
	IsAvailable *bool   `json:"is_available"`
}

// AdminListMenuItems returns every menu item, including unavailable ones
func AdminListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	config.DB.Order("category, name").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// AdminCreateMenuItem adds a new menu item
func AdminCreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.MenuItem
	if err := config.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A menu item with this name already exists"})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		IsVeg:       true,
		IsAvailable: true,
	}
	if req.IsVeg != nil {
		item.IsVeg = *req.IsVeg
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// AdminUpdateMenuItem updates a menu item; only whitelisted fields apply
func AdminUpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{
		"name": true, "description": true, "price": true,
		"image_url": true, "category": true, "is_veg": true, "is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// AdminDeleteMenuItem removes a menu item
func AdminDeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ── Orders ──────────────────────────────────────────────────────────────────

// AdminListOrders returns all orders, newest first
func AdminListOrders(c *gin.Context) {
	query := config.DB.Preload("Items.MenuItem").Preload("Payment")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if ref := c.Query("reference"); ref != "" {
		query = query.Where("reference = ?", ref)
	}

	var orders []models.Order
	query.Order("order_date desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus moves an order through its lifecycle (e.g. to
// Delivered or Cancelled), rejecting transitions the state machine forbids
func AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorAdmin); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}

// ── Bookings ────────────────────────────────────────────────────────────────

// AdminListBookings returns all bookings, newest first
func AdminListBookings(c *gin.Context) {
	var bookings []models.Booking
	config.DB.Order("booking_date desc, booking_time desc").Find(&bookings)
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// ── Reports ─────────────────────────────────────────────────────────────────

// AdminSalesReport generates the sales report for a period, anchored at the
// optional date query param (YYYY-MM-DD) or the current time
func AdminSalesReport(c *gin.Context) {
	period := c.Query("period")

	ref := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		// Anchor at end of the requested day so the whole day is covered
		ref = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	report, err := reporting.Generate(config.DB, period, ref)
	if err != nil {
		if errors.Is(err, reporting.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
