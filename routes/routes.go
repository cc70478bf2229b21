package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/payments"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, gateway payments.Gateway) {
	paymentHandler := handlers.NewPaymentHandler(gateway)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/menu", handlers.GetMenu)
		public.POST("/orders", handlers.PlaceOrder)
		public.POST("/bookings", handlers.CreateBooking)

		public.POST("/payments/order", paymentHandler.CreateGatewayOrder)
		public.POST("/payments/verify", paymentHandler.VerifyPayment)

		public.POST("/admin/login", handlers.AdminLogin)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/menu", handlers.AdminListMenuItems)
		admin.POST("/menu", handlers.AdminCreateMenuItem)
		admin.PUT("/menu/:id", handlers.AdminUpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.AdminDeleteMenuItem)

		admin.GET("/orders", handlers.AdminListOrders)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)

		admin.GET("/bookings", handlers.AdminListBookings)

		admin.GET("/reports/sales", handlers.AdminSalesReport)
	}
}
