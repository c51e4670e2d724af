package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain/models"
	"tr4cking/internal/http/middleware"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
	"tr4cking/internal/utils"
)

type ViajesHandler struct {
	Repo     repositories.ViajeRepository
	Asientos services.AsientosService
	Busqueda services.BusquedaService
}

// GET /api/horarios?ruta=1
func (h ViajesHandler) ListHorarios(c *gin.Context) {
	list, err := h.Repo.ListHorarios(c.Request.Context(), QueryInt64(c, "ruta"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h ViajesHandler) GetHorario(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	hr, err := h.Repo.GetHorario(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hr)
}

// validarHorario chequea hora_salida HH:MM y la máscara lunes-domingo.
func validarHorario(c *gin.Context, hr models.Horario) bool {
	if _, err := utils.ParseHora(hr.HoraSalida); err != nil {
		RespondError(c, http.StatusBadRequest, "hora_salida debe tener formato HH:MM", nil)
		return false
	}
	if len(hr.DiasSemana) != 7 || strings.Trim(hr.DiasSemana, "01") != "" {
		RespondError(c, http.StatusBadRequest, "dias_semana debe ser una máscara de 7 dígitos 0/1", nil)
		return false
	}
	return true
}

func (h ViajesHandler) CreateHorario(c *gin.Context) {
	var hr models.Horario
	if !BindJSONOrError(c, &hr) {
		return
	}
	if !validarHorario(c, hr) {
		return
	}
	id, err := h.Repo.CreateHorario(c.Request.Context(), hr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	hr.ID = id
	c.JSON(http.StatusCreated, hr)
}

func (h ViajesHandler) UpdateHorario(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var hr models.Horario
	if !BindJSONOrError(c, &hr) {
		return
	}
	if !validarHorario(c, hr) {
		return
	}
	hr.ID = id
	if err := h.Repo.UpdateHorario(c.Request.Context(), hr); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hr)
}

func (h ViajesHandler) DeleteHorario(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteHorario(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "horario eliminado"})
}

// GET /api/viajes?fecha=2025-03-01
func (h ViajesHandler) List(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h ViajesHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	v, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// validarFechaHorario chequea que la fecha del viaje caiga en un día
// de salida según la máscara del horario.
func (h ViajesHandler) validarFechaHorario(c *gin.Context, v models.Viaje) bool {
	fecha, err := utils.ParseDate(v.Fecha)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "fecha debe tener formato YYYY-MM-DD", nil)
		return false
	}
	hr, err := h.Repo.GetHorario(c.Request.Context(), v.HorarioID)
	if err != nil {
		RespondDomainError(c, err)
		return false
	}
	if !utils.DiaSemanaActivo(hr.DiasSemana, fecha) {
		RespondError(c, http.StatusBadRequest, "la fecha no cae en los días de salida del horario", nil)
		return false
	}
	return true
}

func (h ViajesHandler) Create(c *gin.Context) {
	var v models.Viaje
	if !BindJSONOrError(c, &v) {
		return
	}
	if !h.validarFechaHorario(c, v) {
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), v)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	v.ID = id
	c.JSON(http.StatusCreated, v)
}

func (h ViajesHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var v models.Viaje
	if !BindJSONOrError(c, &v) {
		return
	}
	if !h.validarFechaHorario(c, v) {
		return
	}
	v.ID = id
	if err := h.Repo.Update(c.Request.Context(), v); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h ViajesHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viaje eliminado"})
}

// GET /api/viajes/:id/asientos
func (h ViajesHandler) MapaAsientos(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	svc := h.Asientos
	svc.RequestID = middleware.GetRequestID(c)

	mapa, err := svc.Mapa(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapa)
}

type retencionRequest struct {
	Numero int `json:"numero_asiento"`
}

// POST /api/viajes/:id/asientos/retener
func (h ViajesHandler) RetenerAsiento(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req retencionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	cred, _ := middleware.GetCredencial(c)

	svc := h.Asientos
	svc.RequestID = middleware.GetRequestID(c)
	if err := svc.Retener(c.Request.Context(), id, req.Numero, int64(cred.UsuarioID)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asiento retenido"})
}

// POST /api/viajes/:id/asientos/liberar
func (h ViajesHandler) LiberarAsiento(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req retencionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	cred, _ := middleware.GetCredencial(c)

	svc := h.Asientos
	svc.RequestID = middleware.GetRequestID(c)
	if err := svc.Liberar(c.Request.Context(), id, req.Numero, int64(cred.UsuarioID)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asiento liberado"})
}

// GET /api/public/viajes?origen=1&destino=2&fecha=2025-03-01
// Buscador sin sesión.
func (h ViajesHandler) BuscarPublico(c *gin.Context) {
	origen, _ := strconv.ParseInt(c.Query("origen"), 10, 64)
	destino, _ := strconv.ParseInt(c.Query("destino"), 10, 64)

	list, err := h.Busqueda.Buscar(c.Request.Context(), origen, destino, c.Query("fecha"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
