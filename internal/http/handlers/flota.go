package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/seatmap"
)

type FlotaHandler struct {
	Repo repositories.FlotaRepository
}

func (h FlotaHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h FlotaHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	b, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h FlotaHandler) Create(c *gin.Context) {
	var b models.Bus
	if !BindJSONOrError(c, &b) {
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	b.ID = id
	c.JSON(http.StatusCreated, b)
}

func (h FlotaHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var b models.Bus
	if !BindJSONOrError(c, &b) {
		return
	}
	b.ID = id
	if err := h.Repo.Update(c.Request.Context(), b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h FlotaHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus eliminado"})
}

// GET /api/buses/:id/asientos
func (h FlotaHandler) ListAsientos(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	list, err := h.Repo.ListAsientos(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/buses/:id/layout?piso=1
// Devuelve la grilla del piso pedido tal como la dibuja la pantalla de
// venta: filas de punteros con null en el pasillo.
func (h FlotaHandler) Layout(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	piso, err := strconv.Atoi(c.DefaultQuery("piso", "1"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "piso inválido", err)
		return
	}

	b, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	layout, err := seatmap.Generar(seatmap.TipoBus(b.Tipo), b.Capacidad, piso)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "no se pudo generar el layout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id_bus":    b.ID,
		"tipo":      b.Tipo,
		"capacidad": b.Capacidad,
		"piso":      piso,
		"layout":    layout,
	})
}
