package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/http/middleware"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
)

type PasajesHandler struct {
	Repo repositories.PasajeRepository
	Svc  services.PasajesService
	Docs services.DocsService
}

// GET /api/pasajes?viaje=1
func (h PasajesHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), QueryInt64(c, "viaje"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h PasajesHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	p, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/pasajes
func (h PasajesHandler) Create(c *gin.Context) {
	var p models.Pasaje
	if !BindJSONOrError(c, &p) {
		return
	}
	cred, _ := middleware.GetCredencial(c)

	svc := h.Svc
	svc.RequestID = middleware.GetRequestID(c)
	out, err := svc.Emitir(c.Request.Context(), p, int64(cred.UsuarioID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/pasajes/:id/anular
func (h PasajesHandler) Anular(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	svc := h.Svc
	svc.RequestID = middleware.GetRequestID(c)
	if err := svc.Anular(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pasaje anulado"})
}

// GET /api/pasajes/:id/ticket
func (h PasajesHandler) TicketPDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := docs.TicketPasaje(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
