package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/config"
	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
	"github.com/lucaseduardo5855/ABarateira/internal/gateway/middleware"
	"github.com/lucaseduardo5855/ABarateira/internal/utils"
)

// The dashboard ships with a single demo account; there is no user
// management. Every attempt, failed or not, lands in login_log.
const adminEmail = "admin@barateira.com"

// bcrypt hash of the demo password ("password").
var adminPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthHTTPHandler struct {
	db       *gorm.DB
	logger   *logrus.Logger
	tokenTTL time.Duration
}

func NewAuthHTTPHandler(db *gorm.DB, logger *logrus.Logger, tokenTTL time.Duration) *AuthHTTPHandler {
	return &AuthHTTPHandler{db: db, logger: logger, tokenTTL: tokenTTL}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthHTTPHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	granted := req.Email == adminEmail &&
		bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(req.Password)) == nil

	entry := models.LoginLog{Email: req.Email, Sucesso: granted}
	if err := h.db.WithContext(c.Request.Context()).Create(&entry).Error; err != nil {
		config.LogError(h.logger, "auth", "Login", "failed to write login_log", req.Email, err)
	}

	if !granted {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := utils.GenerateToken(1, req.Email, h.tokenTTL)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to issue token: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"expires_at": expiresAt,
		"user":       SessionUser{ID: 1, Name: "Administrador", Email: adminEmail},
	})
}

func (h *AuthHTTPHandler) Me(c *gin.Context) {
	value, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		respondError(c, http.StatusUnauthorized, "no session")
		return
	}
	claims := value.(*utils.Claims)

	respondSuccess(c, SessionUser{ID: claims.UserId, Name: "Administrador", Email: claims.Email})
}

// Logout is stateless: tokens are not revocable, the client just drops its
// copy. Kept so the session surface matches the dashboard's shape.
func (h *AuthHTTPHandler) Logout(c *gin.Context) {
	respondSuccess(c, nil)
}
