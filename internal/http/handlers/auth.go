package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/http/middleware"
	"tr4cking/internal/services"
)

type AuthHandler struct {
	Auth services.AuthService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := h.Auth
	svc.RequestID = middleware.GetRequestID(c)

	pair, err := svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == services.ErrCredenciales {
			RespondError(c, http.StatusUnauthorized, "usuario o contraseña incorrectos", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// POST /api/auth/refresh
func (h AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := h.Auth
	svc.RequestID = middleware.GetRequestID(c)

	pair, err := svc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		if err == services.ErrCredenciales {
			RespondError(c, http.StatusUnauthorized, "refresh token inválido o vencido", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// POST /api/auth/logout
func (h AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.Auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sesión cerrada"})
}
