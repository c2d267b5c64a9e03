package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MOmenx0/AccessoriesE-commerce/models"
)

type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category" binding:"required"`
	Brand            string          `json:"brand"`
	ImageURL         string          `json:"image_url"`
	AdditionalImages []string        `json:"additional_images"`
	StockQuantity    int             `json:"stock_quantity"`
	IsAvailable      *bool           `json:"is_available"`
}

// CreateProduct adds a new product to the catalog.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !req.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
			return
		}
		if req.StockQuantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock_quantity must not be negative"})
			return
		}

		available := req.StockQuantity > 0
		if req.IsAvailable != nil {
			available = *req.IsAvailable
		}

		product := models.Product{
			Name:             req.Name,
			Description:      req.Description,
			Price:            req.Price,
			Category:         req.Category,
			Brand:            req.Brand,
			ImageURL:         req.ImageURL,
			AdditionalImages: req.AdditionalImages,
			StockQuantity:    req.StockQuantity,
			IsAvailable:      available,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
