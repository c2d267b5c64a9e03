package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MOmenx0/AccessoriesE-commerce/models"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type PlaceOrderRequest struct {
	ShippingAddress    string             `json:"shipping_address"`
	ShippingCity       string             `json:"shipping_city"`
	ShippingPostalCode string             `json:"shipping_postal_code"`
	ShippingCountry    string             `json:"shipping_country"`
	CustomerName       string             `json:"customer_name"`
	CustomerPhone      string             `json:"customer_phone"`
	Notes              string             `json:"notes"`
	Items              []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	default:
		return "", &ValidationError{Field: "status", Reason: "invalid order status"}
	}
}

func validatePlaceOrder(req PlaceOrderRequest) error {
	required := []struct {
		field, value string
	}{
		{"shipping_address", req.ShippingAddress},
		{"shipping_city", req.ShippingCity},
		{"shipping_postal_code", req.ShippingPostalCode},
		{"shipping_country", req.ShippingCountry},
		{"customer_name", req.CustomerName},
		{"customer_phone", req.CustomerPhone},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: "is required"}
		}
	}
	if len(req.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
		}
	}
	return nil
}

// -------- Core Logic --------

// PlaceOrder atomically checks availability, snapshots prices, decrements
// stock, persists the order with its items and clears the buyer's cart.
// Any failure rolls back every mutation; stock can never go negative
// because each product row is locked for the duration of the check and
// decrement.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, err
	}

	var placed models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		orderNumber, err := uniqueOrderNumber(tx, now)
		if err != nil {
			return err
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(req.Items))

		// Process line items in input order.
		for _, line := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: "product", ID: line.ProductID}
				}
				return err
			}

			if !product.IsAvailable {
				return &ConflictError{ProductID: product.ID, Reason: "product is not available"}
			}
			if product.StockQuantity < line.Quantity {
				return &ConflictError{
					ProductID: product.ID,
					Requested: line.Quantity,
					Available: product.StockQuantity,
				}
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(lineTotal)

			// Deduct stock; a product that sells out drops off the shop.
			product.StockQuantity -= line.Quantity
			if product.StockQuantity == 0 {
				product.IsAvailable = false
			}
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.ImageURL,
				Quantity:     line.Quantity,
				UnitPrice:    product.Price,
				TotalPrice:   lineTotal,
			})
		}

		order := models.Order{
			UserID:             userID,
			OrderNumber:        orderNumber,
			Status:             models.OrderStatusPending,
			TotalAmount:        total,
			ShippingAddress:    req.ShippingAddress,
			ShippingCity:       req.ShippingCity,
			ShippingPostalCode: req.ShippingPostalCode,
			ShippingCountry:    req.ShippingCountry,
			CustomerName:       req.CustomerName,
			CustomerPhone:      req.CustomerPhone,
			Notes:              req.Notes,
			OrderDate:          now,
			Items:              orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear the buyer's cart; other buyers' carts are untouched.
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error; err != nil {
			return err
		}

		return tx.Preload("Items").First(&placed, order.ID).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("order.created", placed)
	return &placed, nil
}

// UpdateOrderStatus moves an order through the Pending/Shipped/Delivered
// machine. Each timestamp is set on the first transition into its state
// and never overwritten.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "order", ID: orderID}
			}
			return err
		}

		order.Status = newStatus
		now := time.Now().UTC()
		if newStatus == models.OrderStatusShipped && order.ShippedDate == nil {
			order.ShippedDate = &now
		}
		if newStatus == models.OrderStatusDelivered && order.DeliveredDate == nil {
			order.DeliveredDate = &now
		}

		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return tx.Preload("Items").First(&order, orderID).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("order.status", order)
	return &order, nil
}

// GetOrder returns a single order with its items.
func GetOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, err
	}
	return &order, nil
}

// ListOrdersForUser returns a buyer's orders, newest first.
func ListOrdersForUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// ListAllOrders returns every order with its buyer, newest first.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("User").
		Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// DeleteOrder removes an order and its items together.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "order", ID: orderID}
			}
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// -------- Handlers --------

func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

func isAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role.(string) == models.RoleAdmin
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/my-orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := ListOrdersForUser(db, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — buyers see only their own orders, admins see any.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		order, err := GetOrder(db, orderID)
		if err != nil {
			respondError(c, err)
			return
		}
		if order.UserID != userID && !isAdmin(c) {
			// Do not reveal that the order exists.
			c.JSON(http.StatusNotFound, gin.H{"error": (&NotFoundError{Resource: "order", ID: orderID}).Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ListAllOrders(db)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := UpdateOrderStatus(db, orderID, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}
		if err := DeleteOrder(db, orderID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
