package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
)

type UsuariosHandler struct {
	Repo      repositories.UsuarioRepository
	TokenRepo repositories.TokenRepository
}

type usuarioRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Activo   *bool  `json:"activo"`
	Password string `json:"password"`
}

func rolValido(rol string) bool {
	switch rol {
	case domain.RolAdmin, domain.RolEmpleado, domain.RolCliente:
		return true
	}
	return false
}

func (h UsuariosHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h UsuariosHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	u, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h UsuariosHandler) Create(c *gin.Context) {
	var req usuarioRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Username == "" {
		RespondError(c, http.StatusBadRequest, "username es obligatorio", nil)
		return
	}
	if !rolValido(req.Rol) {
		RespondError(c, http.StatusBadRequest, "rol desconocido: "+req.Rol, nil)
		return
	}
	hash, err := services.HashPassword(req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	u := models.Usuario{Username: req.Username, Email: req.Email, Rol: req.Rol, Activo: true}
	if req.Activo != nil {
		u.Activo = *req.Activo
	}
	id, err := h.Repo.Create(c.Request.Context(), u, hash)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	u.ID = id
	c.JSON(http.StatusCreated, u)
}

func (h UsuariosHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req usuarioRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if !rolValido(req.Rol) {
		RespondError(c, http.StatusBadRequest, "rol desconocido: "+req.Rol, nil)
		return
	}

	actual, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	u := models.Usuario{ID: id, Username: req.Username, Email: req.Email, Rol: req.Rol, Activo: actual.Activo}
	if req.Activo != nil {
		u.Activo = *req.Activo
	}
	if err := h.Repo.Update(c.Request.Context(), u); err != nil {
		RespondDomainError(c, err)
		return
	}
	if req.Password != "" {
		hash, err := services.HashPassword(req.Password)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if err := h.Repo.UpdatePassword(c.Request.Context(), id, hash); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	// desactivar la cuenta corta todas sus sesiones
	if req.Activo != nil && !*req.Activo {
		_ = h.TokenRepo.RevokeAll(c.Request.Context(), id)
	}
	c.JSON(http.StatusOK, u)
}

func (h UsuariosHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	_ = h.TokenRepo.RevokeAll(c.Request.Context(), id)
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado"})
}
