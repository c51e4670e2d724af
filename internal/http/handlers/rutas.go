package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
)

type RutasHandler struct {
	Repo repositories.RutaRepository
	Svc  services.RutasService
}

func (h RutasHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h RutasHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	r, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h RutasHandler) Create(c *gin.Context) {
	var r models.Ruta
	if !BindJSONOrError(c, &r) {
		return
	}
	if r.Nombre == "" {
		RespondError(c, http.StatusBadRequest, "nombre es obligatorio", nil)
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), r)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	r.ID = id
	c.JSON(http.StatusCreated, r)
}

func (h RutasHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var r models.Ruta
	if !BindJSONOrError(c, &r) {
		return
	}
	r.ID = id
	if err := h.Repo.Update(c.Request.Context(), r); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h RutasHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ruta eliminada"})
}

// GET /api/rutas/:id/detalles
func (h RutasHandler) ListDetalles(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if _, err := h.Repo.GetByID(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	detalles, err := h.Repo.ListDetalles(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detalles)
}

type secuenciaRequest struct {
	Paradas []int64 `json:"paradas"`
}

// PUT /api/rutas/:id/detalles
// Reemplaza la secuencia completa de paradas. Solo se persisten las
// diferencias contra lo guardado.
func (h RutasHandler) ReemplazarDetalles(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req secuenciaRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	detalles, err := h.Svc.ReemplazarSecuencia(c.Request.Context(), id, req.Paradas)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detalles)
}
