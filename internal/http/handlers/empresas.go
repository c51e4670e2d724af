package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
)

type EmpresasHandler struct {
	Repo repositories.EmpresaRepository
}

func (h EmpresasHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h EmpresasHandler) Get(c *gin.Context) {
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

func (h EmpresasHandler) Create(c *gin.Context) {
	var e models.Empresa
	if !BindJSONOrError(c, &e) {
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	e.ID = id
	c.JSON(http.StatusCreated, e)
}

func (h EmpresasHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var e models.Empresa
	if !BindJSONOrError(c, &e) {
		return
	}
	e.ID = id
	if err := h.Repo.Update(c.Request.Context(), e); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h EmpresasHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empresa eliminada"})
}
