package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"personatag/internal/models"
)

// APIError defines standard error response
// Example: { "error": { "code": "bad_request", "message": "Invalid ID" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func Unauthorized(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusUnauthorized, "unauthorized", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// RespondError maps a pipeline failure to its outward signal. Upstream
// diagnostics (including raw provider output carried in the error) are
// logged here and never echoed to the caller.
func RespondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		Unauthorized(ctx, "Invalid or missing API secret")
	case errors.Is(err, models.ErrInvalidRequest):
		BadRequest(ctx, err.Error())
	case errors.Is(err, models.ErrSchemaViolation):
		JSONError(ctx, http.StatusBadRequest, "schema_violation", err.Error())
	case errors.Is(err, models.ErrTaxonomyViolation):
		JSONError(ctx, http.StatusBadRequest, "taxonomy_violation", err.Error())
	case errors.Is(err, models.ErrMalformedResponse):
		log.WithField("request_id", RequestIDFrom(ctx)).Errorf("Malformed provider response: %v", err)
		Internal(ctx, "Invalid JSON returned from the completion provider")
	case errors.Is(err, models.ErrProvider):
		log.WithField("request_id", RequestIDFrom(ctx)).Errorf("Completion provider call failed: %v", err)
		Internal(ctx, "Failed to get response from the completion provider")
	case errors.Is(err, models.ErrStore):
		log.WithField("request_id", RequestIDFrom(ctx)).Errorf("Profile store mutation failed: %v", err)
		Internal(ctx, "Failed to update the customer profile")
	default:
		log.WithField("request_id", RequestIDFrom(ctx)).Errorf("Unhandled error: %v", err)
		Internal(ctx, "Internal server error")
	}
}
