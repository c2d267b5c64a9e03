package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // placed, awaiting fulfilment
	OrderStatusShipped   OrderStatus = "Shipped"   // handed to the carrier
	OrderStatusDelivered OrderStatus = "Delivered" // customer received the parcel
)

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint        `gorm:"index;not null" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"user"`
	OrderNumber string      `gorm:"uniqueIndex;not null" json:"order_number"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	// TotalAmount is computed once at placement time and never recomputed.
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	ShippingAddress    string          `gorm:"not null" json:"shipping_address"`
	ShippingCity       string          `gorm:"not null" json:"shipping_city"`
	ShippingPostalCode string          `gorm:"not null" json:"shipping_postal_code"`
	ShippingCountry    string          `gorm:"not null" json:"shipping_country"`
	CustomerName       string          `gorm:"not null" json:"customer_name"`
	CustomerPhone      string          `gorm:"not null" json:"customer_phone"`
	Notes              string          `json:"notes"`
	OrderDate          time.Time       `json:"order_date"`
	ShippedDate        *time.Time      `json:"shipped_date"`
	DeliveredDate      *time.Time      `json:"delivered_date"`
	Items              []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem snapshots name, image and unit price at placement time, so
// historical orders keep rendering after the product changes or is
// removed from the catalog.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint            `gorm:"index" json:"order_id"`
	ProductID    uint            `gorm:"index" json:"product_id"`
	ProductName  string          `gorm:"not null" json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
}
