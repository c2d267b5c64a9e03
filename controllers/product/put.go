package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MOmenx0/AccessoriesE-commerce/models"
)

type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	Price            *decimal.Decimal `json:"price"`
	Category         *string          `json:"category"`
	Brand            *string          `json:"brand"`
	ImageURL         *string          `json:"image_url"`
	AdditionalImages *[]string        `json:"additional_images"`
	StockQuantity    *int             `json:"stock_quantity"`
	IsAvailable      *bool            `json:"is_available"`
}

// UpdateProduct applies a partial update to an existing product.
// Changing the price never touches already-placed orders: order items
// keep the unit price snapshotted at placement time.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			if !req.Price.IsPositive() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
				return
			}
			product.Price = *req.Price
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Brand != nil {
			product.Brand = *req.Brand
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}
		if req.AdditionalImages != nil {
			product.AdditionalImages = *req.AdditionalImages
		}
		if req.StockQuantity != nil {
			if *req.StockQuantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock_quantity must not be negative"})
				return
			}
			product.StockQuantity = *req.StockQuantity
		}
		if req.IsAvailable != nil {
			product.IsAvailable = *req.IsAvailable
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
