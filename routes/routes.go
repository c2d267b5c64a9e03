package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/MOmenx0/AccessoriesE-commerce/controllers/product"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/search", productcontroller.SearchProducts(db))
	r.GET("/products/categories", productcontroller.GetCategories(db))
	r.GET("/products/brands", productcontroller.GetBrands(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, db)
}
