package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/config"
	"github.com/EvarJr/EBotikaApp/internal/directory"
	"github.com/EvarJr/EBotikaApp/internal/models"
	"github.com/EvarJr/EBotikaApp/internal/storage"
)

const userIDKey = "user_id"

// generateToken issues a session JWT for a user. This is mock auth for the
// demo: the token only carries who you claimed to be at login.
func (h *Handler) generateToken(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(config.SessionTokenTTL).Unix(),
		"iss":     "ebotika-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}

func (h *Handler) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", errors.New("missing user_id claim")
	}
	return userID, nil
}

// RequireToken validates the Bearer token and stores the caller's id on the
// context.
func (h *Handler) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}
		userID, err := h.parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (h *Handler) callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Language string `json:"language"`
}

// Login authenticates one of the demo accounts and returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, directory.ErrBanned) {
			c.JSON(http.StatusForbidden, gin.H{"error": "login_banned_error"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login_error"})
		return
	}

	token, err := h.generateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	h.Users.SetOnline(user.ID, true)
	if err := h.Store.SaveSession(storage.Session{
		UserID:     user.ID,
		Role:       user.Role,
		Language:   req.Language,
		LoggedInAt: time.Now(),
	}); err != nil {
		// The session snapshot is a convenience; login still succeeds.
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type registerRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// Register creates a patient account and logs it in.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Register(req.Name, req.Email, req.Password, req.ContactNumber, req.Address)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	token, err := h.generateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// GuestSession issues a throwaway guest identity, the "Continue as Guest"
// flow. Guests can run a symptom check but cannot message doctors.
func (h *Handler) GuestSession(c *gin.Context) {
	guest := models.User{
		ID:     "guest-" + uuid.New().String(),
		Name:   "Guest",
		Role:   models.RoleGuest,
		Status: models.StatusActive,
	}
	token, err := h.generateToken(guest.ID, guest.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": guest})
}

// Logout clears the session snapshot and presence flag.
func (h *Handler) Logout(c *gin.Context) {
	userID := h.callerID(c)
	h.Users.SetOnline(userID, false)
	if err := h.Store.DeleteSession(userID); err != nil {
		c.Error(err)
	}
	c.Status(http.StatusNoContent)
}

// Me returns the caller's account.
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.Users.FindByID(h.callerID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type profileUpdateRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
	AvatarURL     *string `json:"avatar_url"`
}

// UpdateProfile applies a partial profile update to the caller's account.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.Users.UpdateProfile(h.callerID(c), directory.ProfileUpdate{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	user, _ := h.Users.FindByID(h.callerID(c))
	c.JSON(http.StatusOK, user)
}
