package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MOmenx0/AccessoriesE-commerce/auth"
	"github.com/MOmenx0/AccessoriesE-commerce/middleware"
	"github.com/MOmenx0/AccessoriesE-commerce/models"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key")
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/auth/register", auth.RegisterHandler(db))
	r.POST("/auth/login", auth.LoginHandler(db))
	r.GET("/auth/me", middleware.ValidateToken, auth.MeHandler(db))
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterLoginMeRoundTrip(t *testing.T) {
	router, db := setupAuthTest(t)

	recorder := postJSON(t, router, "/auth/register", auth.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var registered struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, models.RoleClient, registered.User.Role)
	assert.NotContains(t, recorder.Body.String(), "password_hash")

	// The stored hash is bcrypt, never the raw password.
	var stored models.User
	assert.NoError(t, db.First(&stored, registered.User.ID).Error)
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	recorder = postJSON(t, router, "/auth/login", auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	var loggedIn struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &loggedIn))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loggedIn.Token)
	meRecorder := httptest.NewRecorder()
	router.ServeHTTP(meRecorder, req)
	assert.Equal(t, http.StatusOK, meRecorder.Code)

	var me models.User
	assert.NoError(t, json.Unmarshal(meRecorder.Body.Bytes(), &me))
	assert.Equal(t, "jane@example.com", me.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _ := setupAuthTest(t)

	req := auth.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	}
	assert.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", req).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/auth/register", req).Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := setupAuthTest(t)

	postJSON(t, router, "/auth/register", auth.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})

	wrongPassword := postJSON(t, router, "/auth/login", auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

	unknownEmail := postJSON(t, router, "/auth/login", auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Both failures look identical to the caller.
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	router, _ := setupAuthTest(t)

	recorder := postJSON(t, router, "/auth/register", auth.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	var registered struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &registered))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+registered.Token+"tampered")
	meRecorder := httptest.NewRecorder()
	router.ServeHTTP(meRecorder, req)
	assert.Equal(t, http.StatusUnauthorized, meRecorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	meRecorder = httptest.NewRecorder()
	router.ServeHTTP(meRecorder, req)
	assert.Equal(t, http.StatusUnauthorized, meRecorder.Code)
}
