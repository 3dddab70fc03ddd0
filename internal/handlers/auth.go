package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/database"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/errors"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/logger"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	guestEmail    = "guest@example.com"
	guestPassword = "guest123"
)

type SignupInput struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.store.GetUserByEmail(input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already in use"})
		return
	}
	if _, err := h.store.GetUserByUsername(input.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already taken"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if err := h.store.CreateUser(&user); err != nil {
		// A race with a concurrent signup can still trip the unique index.
		logger.Warn().Err(err).Str("email", input.Email).Msg("Signup failed: unique violation")
		c.JSON(http.StatusConflict, gin.H{"message": "User with this email or username already exists"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	logger.Info().Uint("user_id", user.ID).Msg("User registered")

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(input.Email)
	if err != nil {
		logger.Warn().Str("email", input.Email).Msg("Login failed: user not found")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logger.Warn().Str("email", input.Email).Msg("Login failed: invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	logger.Info().Uint("user_id", user.ID).Msg("User logged in")

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GuestLogin reuses a fixed guest account, creating it on first use.
func (h *Handler) GuestLogin(c *gin.Context) {
	user, err := h.store.GetUserByEmail(guestEmail)
	if err != nil {
		if _, ok := err.(*errors.AppError); !ok {
			respondError(c, err)
			return
		}

		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(guestPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Guest login failed"})
			return
		}

		guest := models.User{
			Username:  "guest",
			Email:     guestEmail,
			Password:  string(hashed),
			FirstName: "Guest",
			LastName:  "User",
		}
		if err := h.store.CreateUser(&guest); err != nil {
			respondError(c, err)
			return
		}
		user = &guest
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout revokes the current token by blacklisting its JTI for the
// remainder of its lifetime.
func (h *Handler) Logout(c *gin.Context) {
	claimsValue, exists := c.Get("claims")
	claims, ok := claimsValue.(*utils.Claims)
	if !exists || !ok || claims == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already logged out"})
		return
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl > 0 {
		if err := database.BlacklistToken(claims.ID, ttl); err != nil {
			logger.Error().Err(err).Msg("Failed to blacklist token")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// GetCurrentUser returns the authenticated user's profile.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
