package productcontroller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	productcontroller "github.com/MOmenx0/AccessoriesE-commerce/controllers/product"
	"github.com/MOmenx0/AccessoriesE-commerce/models"
)

func setupProductTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/search", productcontroller.SearchProducts(db))
	r.GET("/products/categories", productcontroller.GetCategories(db))
	r.GET("/products/brands", productcontroller.GetBrands(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.POST("/admin/products", productcontroller.CreateProduct(db))
	r.PUT("/admin/products/:id", productcontroller.UpdateProduct(db))
	r.DELETE("/admin/products/:id", productcontroller.DeleteProduct(db))
	return r, db
}

func seedProduct(t *testing.T, db *gorm.DB, name, brand, category, price string, stock int, available bool) models.Product {
	t.Helper()
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price: %v", err)
	}
	product := models.Product{
		Name:          name,
		Description:   name + " description",
		Price:         p,
		Category:      category,
		Brand:         brand,
		StockQuantity: stock,
		IsAvailable:   available,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}

func TestGetProductsListsOnlyAvailable(t *testing.T) {
	router, db := setupProductTest(t)
	seedProduct(t, db, "Wallet", "LuxuryLeather", "Wallets", "89.99", 10, true)
	seedProduct(t, db, "Old Watch", "LuxuryTime", "Watches", "599.99", 0, false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var products []models.Product
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "Wallet", products[0].Name)
}

func TestGetProductByID(t *testing.T) {
	router, db := setupProductTest(t)
	product := seedProduct(t, db, "Wallet", "LuxuryLeather", "Wallets", "89.99", 10, true)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products/9999", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearchProductsFilters(t *testing.T) {
	router, db := setupProductTest(t)
	seedProduct(t, db, "Luxury Leather Wallet", "LuxuryLeather", "Wallets", "89.99", 10, true)
	seedProduct(t, db, "Designer Sunglasses", "DesignerVision", "Eyewear", "199.99", 5, true)
	seedProduct(t, db, "Premium Watch", "LuxuryTime", "Watches", "599.99", 0, false)

	search := func(query string) (int, []models.Product) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products/search?"+query, nil))
		var resp struct {
			Products []models.Product `json:"products"`
			Total    int64            `json:"total"`
		}
		if recorder.Code == http.StatusOK {
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		}
		return recorder.Code, resp.Products
	}

	code, products := search("q=leather")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, products, 1)
	assert.Equal(t, "Luxury Leather Wallet", products[0].Name)

	code, products = search("category=Eyewear")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, products, 1)

	code, products = search("brand=LuxuryTime")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, products, 1)

	code, products = search("min_price=100&max_price=300")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, products, 1)
	assert.Equal(t, "Designer Sunglasses", products[0].Name)

	code, products = search("available=false")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, products, 1)
	assert.Equal(t, "Premium Watch", products[0].Name)

	code, _ = search("min_price=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCategoryAndBrandListings(t *testing.T) {
	router, db := setupProductTest(t)
	seedProduct(t, db, "Luxury Leather Wallet", "LuxuryLeather", "Wallets", "89.99", 10, true)
	seedProduct(t, db, "Slim Wallet", "LuxuryLeather", "Wallets", "49.99", 10, true)
	seedProduct(t, db, "Designer Sunglasses", "DesignerVision", "Eyewear", "199.99", 5, true)

	get := func(path string) []string {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		var values []string
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &values))
		return values
	}

	// Duplicates collapse, values come back sorted.
	assert.Equal(t, []string{"Eyewear", "Wallets"}, get("/products/categories"))
	assert.Equal(t, []string{"DesignerVision", "LuxuryLeather"}, get("/products/brands"))
}

func TestSearchProductsPagination(t *testing.T) {
	router, db := setupProductTest(t)
	for i := 0; i < 5; i++ {
		seedProduct(t, db, fmt.Sprintf("Wallet %d", i), "LuxuryLeather", "Wallets", "89.99", 10, true)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products/search?page=2&page_size=2", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
		Page     int              `json:"page"`
		PageSize int              `json:"page_size"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.EqualValues(t, 5, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Products, 2)
}

func TestCreateProductValidation(t *testing.T) {
	router, _ := setupProductTest(t)

	post := func(body interface{}) *httptest.ResponseRecorder {
		data, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	recorder := post(productcontroller.CreateProductRequest{
		Name:          "Wallet",
		Price:         decimal.NewFromFloat(89.99),
		Category:      "Wallets",
		StockQuantity: 10,
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Product
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.True(t, created.IsAvailable, "in-stock product defaults to available")

	recorder = post(productcontroller.CreateProductRequest{
		Name:     "Free Wallet",
		Price:    decimal.Zero,
		Category: "Wallets",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "price must be positive")

	recorder = post(productcontroller.CreateProductRequest{
		Name:          "Backorder Wallet",
		Price:         decimal.NewFromFloat(10),
		Category:      "Wallets",
		StockQuantity: -1,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateProductPartial(t *testing.T) {
	router, db := setupProductTest(t)
	product := seedProduct(t, db, "Wallet", "LuxuryLeather", "Wallets", "89.99", 10, true)

	newPrice := decimal.NewFromFloat(99.99)
	unavailable := false
	body, _ := json.Marshal(productcontroller.UpdateProductRequest{
		Price:       &newPrice,
		IsAvailable: &unavailable,
	})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/admin/products/%d", product.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var got models.Product
	assert.NoError(t, db.First(&got, product.ID).Error)
	assert.True(t, got.Price.Equal(newPrice))
	assert.False(t, got.IsAvailable, "admin can pull a product while stock remains")
	assert.Equal(t, "Wallet", got.Name, "unset fields stay put")
	assert.Equal(t, 10, got.StockQuantity)
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	router, db := setupProductTest(t)
	product := seedProduct(t, db, "Wallet", "LuxuryLeather", "Wallets", "89.99", 10, true)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)

	// Row survives for historical reads.
	var unscoped int64
	db.Unscoped().Model(&models.Product{}).Count(&unscoped)
	assert.EqualValues(t, 1, unscoped)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
