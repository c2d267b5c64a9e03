package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"not null" json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category         string          `gorm:"index" json:"category"`
	Brand            string          `gorm:"index" json:"brand"`
	ImageURL         string          `json:"image_url"`
	AdditionalImages []string        `gorm:"serializer:json" json:"additional_images"`
	StockQuantity    int             `gorm:"not null" json:"stock_quantity"`
	// IsAvailable is cleared automatically when stock hits zero during
	// order placement, but an admin may also clear it by hand while
	// stock remains.
	IsAvailable bool           `gorm:"not null" json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
