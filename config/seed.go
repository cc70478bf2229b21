package config

import (
	"restaurant-api/models"

	"github.com/sirupsen/logrus"
)

var seedMenu = []models.MenuItem{
	{Name: "Chicken Tikka Masala", Description: "Tender pieces of grilled chicken simmered in a creamy tomato-based sauce.", Price: 280, Category: "Main Course", IsVeg: false, IsAvailable: true},
	{Name: "Matar Paneer", Description: "Cottage cheese and green peas in a rich and spicy tomato-based gravy.", Price: 190, Category: "Main Course", IsVeg: true, IsAvailable: true},
	{Name: "Fish Curry", Description: "Spicy fish cooked in a tangy and aromatic coconut milk-based curry.", Price: 320, Category: "Main Course", IsVeg: false, IsAvailable: true},
	{Name: "Aloo Gobi", Description: "A dry curry made with potatoes and cauliflower florets, spiced with turmeric and cumin.", Price: 150, Category: "Main Course", IsVeg: true, IsAvailable: true},
	{Name: "Kadai Paneer", Description: "Paneer stir-fried with bell peppers, onions, and kadai spices.", Price: 210, Category: "Main Course", IsVeg: true, IsAvailable: true},
	{Name: "Mutton Rogan Josh", Description: "A rich Kashmiri curry made with slow-cooked lamb and aromatic spices.", Price: 350, Category: "Main Course", IsVeg: false, IsAvailable: true},
	{Name: "Vegetable Biryani", Description: "Fragrant basmati rice cooked with mixed vegetables and whole spices.", Price: 180, Category: "Main Course", IsVeg: true, IsAvailable: true},
	{Name: "Samosa", Description: "Crispy pastry filled with spiced potatoes and peas, served with chutney.", Price: 50, Category: "Appetizers", IsVeg: true, IsAvailable: true},
	{Name: "Chicken Seekh Kebab", Description: "Minced chicken skewers, marinated in spices and grilled to perfection.", Price: 220, Category: "Appetizers", IsVeg: false, IsAvailable: true},
	{Name: "Onion Bhaji", Description: "Deep-fried fritters made with sliced onions and gram flour.", Price: 70, Category: "Appetizers", IsVeg: true, IsAvailable: true},
	{Name: "Papad", Description: "Thin, crispy lentil wafers, often served as an accompaniment.", Price: 20, Category: "Appetizers", IsVeg: true, IsAvailable: true},
	{Name: "Garlic Naan", Description: "Soft naan bread topped with fresh garlic and cilantro.", Price: 45, Category: "Bread", IsVeg: true, IsAvailable: true},
	{Name: "Tandoori Roti", Description: "Whole wheat flatbread cooked in a tandoor.", Price: 30, Category: "Bread", IsVeg: true, IsAvailable: true},
	{Name: "Jeera Rice", Description: "Basmati rice tempered with roasted cumin seeds.", Price: 90, Category: "Rice", IsVeg: true, IsAvailable: true},
	{Name: "Rasgulla", Description: "Spongy cottage cheese balls soaked in a light sugar syrup.", Price: 60, Category: "Desserts", IsVeg: true, IsAvailable: true},
	{Name: "Gajar Halwa", Description: "A rich dessert made from grated carrots, milk, and sugar.", Price: 100, Category: "Desserts", IsVeg: true, IsAvailable: true},
	{Name: "Kheer", Description: "A traditional rice pudding made with milk, rice, and sugar, garnished with nuts.", Price: 90, Category: "Desserts", IsVeg: true, IsAvailable: true},
	{Name: "Mango Lassi", Description: "A creamy and refreshing drink made with yogurt and ripe mango pulp.", Price: 80, Category: "Beverages", IsVeg: true, IsAvailable: true},
	{Name: "Masala Chai", Description: "Spiced tea brewed with a blend of aromatic herbs and spices.", Price: 40, Category: "Beverages", IsVeg: true, IsAvailable: true},
	{Name: "Fresh Lime Soda", Description: "A zesty and refreshing soda made with fresh lime juice, sugar, and soda water.", Price: 50, Category: "Beverages", IsVeg: true, IsAvailable: true},
}

// SeedMenu inserts the standard menu when the menu table is empty.
func SeedMenu() {
	var count int64
	DB.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		logrus.WithField("items", count).Info("menu already seeded, skipping")
		return
	}
	if err := DB.Create(&seedMenu).Error; err != nil {
		logrus.WithError(err).Fatal("failed to seed menu")
	}
	logrus.WithField("items", len(seedMenu)).Info("menu seeded")
}
