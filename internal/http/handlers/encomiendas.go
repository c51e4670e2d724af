package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/http/middleware"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
)

type EncomiendasHandler struct {
	Repo repositories.EncomiendaRepository
	Svc  services.EncomiendasService
	Docs services.DocsService
}

// GET /api/encomiendas?viaje=1
func (h EncomiendasHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), QueryInt64(c, "viaje"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h EncomiendasHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	e, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h EncomiendasHandler) Create(c *gin.Context) {
	var e models.Encomienda
	if !BindJSONOrError(c, &e) {
		return
	}
	svc := h.Svc
	svc.RequestID = middleware.GetRequestID(c)

	out, err := svc.Registrar(c.Request.Context(), e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h EncomiendasHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var e models.Encomienda
	if !BindJSONOrError(c, &e) {
		return
	}
	e.ID = id
	if err := h.Svc.Actualizar(c.Request.Context(), e); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h EncomiendasHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "encomienda eliminada"})
}

// GET /api/encomiendas/:id/comprobante
func (h EncomiendasHandler) ComprobantePDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := docs.ComprobanteEncomienda(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
