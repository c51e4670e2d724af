package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
)

type GeografiaHandler struct {
	Repo repositories.GeografiaRepository
}

func (h GeografiaHandler) ListLocalidades(c *gin.Context) {
	list, err := h.Repo.ListLocalidades(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h GeografiaHandler) GetLocalidad(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	l, err := h.Repo.GetLocalidad(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h GeografiaHandler) CreateLocalidad(c *gin.Context) {
	var l models.Localidad
	if !BindJSONOrError(c, &l) {
		return
	}
	id, err := h.Repo.CreateLocalidad(c.Request.Context(), l)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	l.ID = id
	c.JSON(http.StatusCreated, l)
}

func (h GeografiaHandler) UpdateLocalidad(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var l models.Localidad
	if !BindJSONOrError(c, &l) {
		return
	}
	l.ID = id
	if err := h.Repo.UpdateLocalidad(c.Request.Context(), l); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h GeografiaHandler) DeleteLocalidad(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteLocalidad(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "localidad eliminada"})
}

func (h GeografiaHandler) ListParadas(c *gin.Context) {
	list, err := h.Repo.ListParadas(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h GeografiaHandler) GetParada(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	p, err := h.Repo.GetParada(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h GeografiaHandler) CreateParada(c *gin.Context) {
	var p models.Parada
	if !BindJSONOrError(c, &p) {
		return
	}
	id, err := h.Repo.CreateParada(c.Request.Context(), p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

func (h GeografiaHandler) UpdateParada(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var p models.Parada
	if !BindJSONOrError(c, &p) {
		return
	}
	p.ID = id
	if err := h.Repo.UpdateParada(c.Request.Context(), p); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h GeografiaHandler) DeleteParada(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteParada(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "parada eliminada"})
}
