package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain"
	"tr4cking/internal/http/middleware"
)

// ErrorResponse estandariza los payloads de error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      message,
			"code":       code,
			"details":    details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, ErrorResponse{Error: message, Code: code, Details: details})
}

// RespondDomainError mapea errores de dominio a HTTP. Las validaciones
// con campo viajan en details para que el front marque el input.
func RespondDomainError(c *gin.Context, err error) {
	var verr domain.ValidationError
	switch {
	case domain.AsValidation(err, &verr):
		var details any
		if verr.Campo != "" {
			details = gin.H{verr.Campo: verr.Msg}
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "ocurrió un error inesperado", nil)
	}
}
