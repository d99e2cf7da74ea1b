package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
	"github.com/lucaseduardo5855/ABarateira/internal/gateway/middleware"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.LoginLog{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewAuthHTTPHandler(db, logger, time.Hour)
	r := gin.New()
	r.POST("/api/v1/auth/login", handler.Login)
	r.GET("/api/v1/auth/me", middleware.JWTAuth(), handler.Me)
	return r, db
}

func postLogin(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(gin.H{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginGrantsDemoAccount(t *testing.T) {
	r, db := newAuthRouter(t)

	w := postLogin(t, r, "admin@barateira.com", "password")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Errorf("response = %+v, want success with a token", resp)
	}
	if resp.User.Email != "admin@barateira.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}

	var logs []models.LoginLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("reading login_log: %v", err)
	}
	if len(logs) != 1 || !logs[0].Sucesso {
		t.Errorf("login_log = %+v, want one successful entry", logs)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, db := newAuthRouter(t)

	w := postLogin(t, r, "admin@barateira.com", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", w.Code)
	}

	var logs []models.LoginLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("reading login_log: %v", err)
	}
	if len(logs) != 1 || logs[0].Sucesso {
		t.Errorf("login_log = %+v, want one failed entry", logs)
	}
	if logs[0].Email != "admin@barateira.com" {
		t.Errorf("logged email = %q", logs[0].Email)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	r, db := newAuthRouter(t)

	w := postLogin(t, r, "alguem@barateira.com", "password")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", w.Code)
	}

	var count int64
	if err := db.Model(&models.LoginLog{}).Where("sucesso = ?", false).Count(&count).Error; err != nil {
		t.Fatalf("counting login_log: %v", err)
	}
	if count != 1 {
		t.Errorf("failed attempts logged = %d, want 1", count)
	}
}

func TestMeRequiresBearerToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token status = %d, want 401", w.Code)
	}
}

func TestMeReturnsSessionUser(t *testing.T) {
	r, _ := newAuthRouter(t)

	login := postLogin(t, r, "admin@barateira.com", "password")
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad login body: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", w.Code, w.Body.String())
	}

	var me struct {
		Success bool `json:"success"`
		Data    struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("bad me body: %v", err)
	}
	if !me.Success || me.Data.Email != "admin@barateira.com" {
		t.Errorf("me response = %+v", me)
	}
}
