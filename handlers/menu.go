package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns all available menu items grouped by category (public)
func GetMenu(c *gin.Context) {
	query := config.DB.Where("is_available = ?", true)
	if c.Query("is_veg") == "true" {
		query = query.Where("is_veg = ?", true)
	}

	var items []models.MenuItem
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	menuByCategory := map[string][]models.MenuItem{}
	for _, item := range items {
		menuByCategory[item.Category] = append(menuByCategory[item.Category], item)
	}

	c.JSON(http.StatusOK, menuByCategory)
}
