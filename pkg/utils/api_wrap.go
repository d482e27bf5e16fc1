package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500; the cause is logged, never echoed back.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrProfileNotFound):
		RespondError(c, http.StatusNotFound, "Profile not found")
	case errors.Is(err, ErrPassNotFound):
		RespondError(c, http.StatusNotFound, "Pass not found")
	case errors.Is(err, ErrPassNotDeployed):
		RespondError(c, http.StatusConflict, "Pass has no deployed settlement contract")
	case errors.Is(err, ErrInvalidTierRule):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusBadRequest, "Pass duration is invalid")
	case errors.Is(err, ErrPermissionDenied):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrActiveSubscriptionExists):
		RespondError(c, http.StatusConflict, "An active subscription for this pass already exists")
	case errors.Is(err, ErrInvalidSubscriptionState):
		RespondError(c, http.StatusConflict, "Subscription state does not allow this operation")
	case errors.Is(err, ErrInvalidRefundAmount):
		RespondError(c, http.StatusBadRequest, "Refund amount must not be negative")
	case errors.Is(err, ErrDocumentNotFound):
		RespondError(c, http.StatusNotFound, "OCR document not found")
	case errors.Is(err, ErrDocumentNotReady):
		RespondError(c, http.StatusConflict, "OCR document is not completed yet")
	case errors.Is(err, ErrDocumentTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, "Image exceeds the upload limit")
	case errors.Is(err, ErrExtractionFailed):
		RespondError(c, http.StatusBadGateway, "Contract extraction failed")
	case errors.Is(err, ErrInvalidContractSpec):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
