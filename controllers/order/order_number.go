package orderControllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MOmenx0/AccessoriesE-commerce/models"
)

const orderNumberAttempts = 3

// newOrderNumber produces a human-sortable reference like
// ORD-20250914-3F2A81BC: date prefix plus 8 uppercase hex characters.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// uniqueOrderNumber generates a reference and re-rolls on the (remote)
// chance it already exists. The unique index on order_number backs this
// up if two transactions race past the check.
func uniqueOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		candidate := newOrderNumber(now)
		var count int64
		if err := tx.Model(&models.Order{}).Where("order_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique order number after %d attempts", orderNumberAttempts)
}
