package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
)

type ClientesHandler struct {
	Repo repositories.ClienteRepository
}

// GET /api/clientes?q=ruc-o-razon
func (h ClientesHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h ClientesHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	cl, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h ClientesHandler) Create(c *gin.Context) {
	var cl models.Cliente
	if !BindJSONOrError(c, &cl) {
		return
	}
	if cl.RazonSocial == "" || cl.RUC == "" {
		RespondError(c, http.StatusBadRequest, "ruc y razón social son obligatorios", nil)
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), cl)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	cl.ID = id
	c.JSON(http.StatusCreated, cl)
}

func (h ClientesHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var cl models.Cliente
	if !BindJSONOrError(c, &cl) {
		return
	}
	cl.ID = id
	if err := h.Repo.Update(c.Request.Context(), cl); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h ClientesHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente eliminado"})
}
