package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"github.com/ubudab109/number-discussion/internal/domain"  // Domain errors
	"github.com/ubudab109/number-discussion/internal/service" // Business logic
)

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	Token  string `json:"token"`  // Session token
	UserID uint   `json:"userId"` // Authenticated user's id
}

// RegisterHandler creates a new user and logs them straight in
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		// Create the user and issue a session token
		token, userID, err := auth.Register(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			// Duplicate usernames are a client error, anything else is internal
			if errors.Is(err, domain.ErrDuplicateUsername) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			// Log the unexpected failure with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return the token and the new user's id
		c.JSON(http.StatusCreated, AuthResponse{Token: token, UserID: userID})
	}
}

// LoginHandler authenticates a user and returns a session token
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		// Verify credentials and issue a session token
		token, userID, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			// Bad username and bad password look identical to the caller
			if errors.Is(err, domain.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			// Log the unexpected failure with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, UserID: userID})
	}
}
