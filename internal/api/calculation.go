package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"github.com/ubudab109/number-discussion/internal/domain"     // Domain models and errors
	"github.com/ubudab109/number-discussion/internal/middleware" // Context keys
	"github.com/ubudab109/number-discussion/internal/service"    // Business logic
)

// CreateCalculationRequest is the body of POST /api/calculations. The two
// request forms share one shape: a root carries startingNumber only, an
// operation carries parentId, operation and operand. Pointers distinguish
// "absent" from zero values.
type CreateCalculationRequest struct {
	StartingNumber *float64 `json:"startingNumber"` // Seed value, root form only
	ParentID       *uint    `json:"parentId"`       // Parent node, operation form only
	Operation      *string  `json:"operation"`      // add, subtract, multiply or divide
	Operand        *float64 `json:"operand"`        // Right-hand operand
}

// ListCalculationsHandler returns the full calculation forest. Public, no
// authentication required.
func ListCalculationsHandler(calcs *service.CalculationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Rebuild the forest from the ledger
		forest, err := calcs.ListForest(c.Request.Context())
		if err != nil {
			// Log the failure and return an opaque internal error
			logrus.WithField("error", err.Error()).Error("Failed to list calculations")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, forest) // Return the forest
	}
}

// CreateCalculationHandler appends a calculation for the authenticated
// user: a new starting number, or an operation extending an existing node
func CreateCalculationHandler(calcs *service.CalculationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(middleware.ContextUserIDKey) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateCalculationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Root form: a starting number and no parent
		if req.StartingNumber != nil && req.ParentID == nil {
			calc, err := calcs.CreateRoot(c.Request.Context(), userID.(uint), *req.StartingNumber)
			if err != nil {
				// Log the failure and return an opaque internal error
				logrus.WithFields(logrus.Fields{
					"user_id": userID,
					"error":   err.Error(),
				}).Error("Failed to create starting number")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.JSON(http.StatusCreated, calc) // Return the new root node
			return
		}

		// Operation form: a parent, an operation name and an operand
		if req.ParentID != nil && req.Operation != nil && req.Operand != nil {
			op := domain.Operation(*req.Operation)
			// Reject unknown operation names before touching the ledger
			if !op.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operation"})
				return
			}
			calc, err := calcs.AddOperation(c.Request.Context(), userID.(uint), *req.ParentID, op, *req.Operand)
			if err != nil {
				// Business-rule failures are client errors
				if errors.Is(err, domain.ErrParentNotFound) || errors.Is(err, domain.ErrDivisionByZero) {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				// Log the failure and return an opaque internal error
				logrus.WithFields(logrus.Fields{
					"user_id":   userID,
					"parent_id": *req.ParentID,
					"operation": *req.Operation,
					"error":     err.Error(),
				}).Error("Failed to add operation")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.JSON(http.StatusCreated, calc) // Return the new derived node
			return
		}

		// Neither form matched
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
	}
}
