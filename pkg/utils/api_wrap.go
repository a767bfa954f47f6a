package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hookify/internal/models/db_models"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		// Distinct from permission errors so clients can prompt an upgrade.
		c.Header("X-Quota-Exceeded", "true")
		RespondError(c, http.StatusTooManyRequests,
			"Monthly quota exceeded. Upgrade your plan to continue.")
	case errors.Is(err, ErrNoSubscription):
		RespondError(c, http.StatusForbidden, "Account has no active subscription")
	case errors.Is(err, ErrInvalidTier):
		RespondError(c, http.StatusBadRequest,
			fmt.Sprintf("Invalid plan. Options: %v", db_models.ValidTiers()))
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrAccountInactive):
		RespondError(c, http.StatusForbidden, "Account is inactive")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidApiKey):
		RespondError(c, http.StatusUnauthorized, "Invalid API key")
	case errors.Is(err, ErrLinkNotFound):
		RespondError(c, http.StatusNotFound, "Link not found")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
