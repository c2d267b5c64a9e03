package models

import "time"

// CartEntry is one (product, quantity) line in a buyer's pending cart.
// One row per product per buyer; all of a buyer's rows are deleted as a
// side effect of successful order placement.
type CartEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
