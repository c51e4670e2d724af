package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/http/middleware"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
)

type FacturasHandler struct {
	Repo repositories.FacturaRepository
	Docs services.DocsService
}

// GET /api/facturas?cliente=1
func (h FacturasHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), QueryInt64(c, "cliente"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h FacturasHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	f, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h FacturasHandler) Create(c *gin.Context) {
	var f models.Factura
	if !BindJSONOrError(c, &f) {
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/facturas/:id/anular
func (h FacturasHandler) Anular(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Anular(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "factura anulada"})
}

// GET /api/facturas/:id/pdf
func (h FacturasHandler) PDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := docs.FacturaPDF(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
