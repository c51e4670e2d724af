package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
)

type EmpleadosHandler struct {
	Repo repositories.EmpleadoRepository
}

// GET /api/empleados?empresa=1
func (h EmpleadosHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), QueryInt64(c, "empresa"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h EmpleadosHandler) Get(c *gin.Context) {
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

func (h EmpleadosHandler) Create(c *gin.Context) {
	var e models.Empleado
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

func (h EmpleadosHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var e models.Empleado
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

func (h EmpleadosHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empleado eliminado"})
}
