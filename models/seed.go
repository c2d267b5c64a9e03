package models

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedIfEmpty populates a fresh database with the default admin account
// and a starter catalog. Does nothing once any user exists.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@accessories.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	products := []Product{
		{
			Name:          "Luxury Leather Wallet",
			Description:   "Handcrafted full-grain leather wallet with RFID protection",
			Price:         decimal.NewFromFloat(89.99),
			Category:      "Wallets",
			Brand:         "LuxuryLeather",
			StockQuantity: 50,
			IsAvailable:   true,
		},
		{
			Name:          "Designer Sunglasses",
			Description:   "Polarized designer sunglasses with UV400 protection",
			Price:         decimal.NewFromFloat(199.99),
			Category:      "Eyewear",
			Brand:         "DesignerVision",
			StockQuantity: 30,
			IsAvailable:   true,
		},
		{
			Name:          "Premium Watch",
			Description:   "Swiss movement watch with sapphire crystal glass",
			Price:         decimal.NewFromFloat(599.99),
			Category:      "Watches",
			Brand:         "LuxuryTime",
			StockQuantity: 25,
			IsAvailable:   true,
		},
		{
			Name:          "Silk Scarf",
			Description:   "Hand-rolled pure silk scarf in classic patterns",
			Price:         decimal.NewFromFloat(79.99),
			Category:      "Scarves",
			Brand:         "SilkElegance",
			StockQuantity: 40,
			IsAvailable:   true,
		},
		{
			Name:          "Leather Belt",
			Description:   "Reversible leather belt with brushed metal buckle",
			Price:         decimal.NewFromFloat(69.99),
			Category:      "Belts",
			Brand:         "LeatherCraft",
			StockQuantity: 35,
			IsAvailable:   true,
		},
		{
			Name:          "Jewelry Box",
			Description:   "Velvet-lined jewelry box with lock and travel tray",
			Price:         decimal.NewFromFloat(149.99),
			Category:      "Storage",
			Brand:         "LuxuryStorage",
			StockQuantity: 20,
			IsAvailable:   true,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded database: admin %s plus %d products", adminEmail, len(products))
	return nil
}
