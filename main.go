package main

import (
	"flag"
	"net/http"
	"os"

	"restaurant-api/config"
	"restaurant-api/payments"
	"restaurant-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Bool("seed", false, "seed the menu with the standard items and exit")
	flag.Parse()

	config.Load()
	config.InitDB()

	if *seed {
		config.SeedMenu()
		return
	}

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Gateway client is built once here and injected into the handlers
	gateway := payments.NewRazorpayFromEnv()

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering API",
		})
	})

	routes.SetupRoutes(r, gateway)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
