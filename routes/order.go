package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/MOmenx0/AccessoriesE-commerce/controllers/order"
	"github.com/MOmenx0/AccessoriesE-commerce/middleware"
)

// SetupOrderRoutes registers all "/orders/*" endpoints for buyers.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// websocket feed of order events for the admin dashboard; the
	// handler validates the admin token itself (query param or header)
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch the authenticated buyer's orders
		orders.GET("/my-orders", orderControllers.GetMyOrdersHandler(db))

		// Fetch a single order (owner or admin only)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
