package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/seatmap"
	"tr4cking/internal/utils"
)

// TTL de una retención de asiento en Redis.
const holdTTL = 5 * time.Minute

// AsientosService arma el mapa de asientos de un viaje combinando el
// layout del bus, los pasajes vendidos y las retenciones temporales en
// Redis. Con Redis caído el servicio sigue operando sin retenciones.
type AsientosService struct {
	ViajeRepo repositories.ViajeRepository
	FlotaRepo repositories.FlotaRepository
	Redis     *redis.Client
	RequestID string
}

// MapaViaje es lo que ve la pantalla de venta: el layout por piso con
// el estado de cada asiento.
type MapaViaje struct {
	ViajeID   int64  `json:"id_viaje"`
	BusID     int64  `json:"bus"`
	Tipo      string `json:"tipo"`
	Capacidad int    `json:"capacidad"`
	Ocupados  []int  `json:"ocupados"`
	Retenidos []int  `json:"retenidos"`
}

func holdKey(viajeID int64, numero int) string {
	return fmt.Sprintf("hold:viaje:%d:asiento:%d", viajeID, numero)
}

// Mapa devuelve la ocupación actual del viaje.
func (s AsientosService) Mapa(ctx context.Context, viajeID int64) (MapaViaje, error) {
	var out MapaViaje

	viaje, err := s.ViajeRepo.GetByID(ctx, viajeID)
	if err != nil {
		return out, err
	}
	bus, err := s.FlotaRepo.GetByID(ctx, viaje.BusID)
	if err != nil {
		return out, err
	}
	ocupados, err := s.ViajeRepo.AsientosOcupados(ctx, viajeID)
	if err != nil {
		return out, err
	}

	out = MapaViaje{
		ViajeID:   viajeID,
		BusID:     bus.ID,
		Tipo:      bus.Tipo,
		Capacidad: bus.Capacidad,
		Ocupados:  ocupados,
		Retenidos: s.retenidos(ctx, viajeID, bus.Tipo, bus.Capacidad),
	}
	return out, nil
}

// Retener marca un asiento como retenido por un usuario durante el
// proceso de venta. Falla con conflicto si otro usuario lo retiene o
// si ya está vendido.
func (s AsientosService) Retener(ctx context.Context, viajeID int64, numero int, usuarioID int64) error {
	mapaBase, bus, err := s.mapaOcupacion(ctx, viajeID)
	if err != nil {
		return err
	}
	if !seatmap.ExisteNumero(seatmap.TipoBus(bus.Tipo), bus.Capacidad, numero) {
		return domain.ValidationError{Campo: "numero", Msg: "el asiento no existe en este bus"}
	}
	if mapaBase.Estado(numero) == seatmap.Ocupado {
		return domain.ConflictError{Recurso: "asiento", Msg: "el asiento ya está ocupado en este viaje"}
	}

	if s.Redis == nil {
		return nil
	}
	ok, err := s.Redis.SetNX(ctx, holdKey(viajeID, numero), usuarioID, holdTTL).Result()
	if err != nil {
		utils.LogEvent(s.RequestID, "asientos", "retener", "redis error: "+err.Error())
		return nil
	}
	if !ok {
		dueno, _ := s.Redis.Get(ctx, holdKey(viajeID, numero)).Int64()
		if dueno != usuarioID {
			return domain.ConflictError{Recurso: "asiento", Msg: "el asiento está retenido por otro usuario"}
		}
	}
	return nil
}

// Liberar suelta una retención propia. Liberar un asiento no retenido
// no es error.
func (s AsientosService) Liberar(ctx context.Context, viajeID int64, numero int, usuarioID int64) error {
	if s.Redis == nil {
		return nil
	}
	dueno, err := s.Redis.Get(ctx, holdKey(viajeID, numero)).Int64()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		utils.LogEvent(s.RequestID, "asientos", "liberar", "redis error: "+err.Error())
		return nil
	}
	if dueno != usuarioID {
		return domain.ConflictError{Recurso: "asiento", Msg: "la retención pertenece a otro usuario"}
	}
	return s.Redis.Del(ctx, holdKey(viajeID, numero)).Err()
}

// RetenidoPor indica quién retiene el asiento, 0 si nadie.
func (s AsientosService) RetenidoPor(ctx context.Context, viajeID int64, numero int) int64 {
	if s.Redis == nil {
		return 0
	}
	dueno, err := s.Redis.Get(ctx, holdKey(viajeID, numero)).Int64()
	if err != nil {
		return 0
	}
	return dueno
}

// ValidarAsiento confirma que el número corresponda a un asiento real
// del bus, en cualquiera de los dos pisos.
func (s AsientosService) ValidarAsiento(ctx context.Context, busID int64, numero int) error {
	bus, err := s.FlotaRepo.GetByID(ctx, busID)
	if err != nil {
		return err
	}
	if !seatmap.ExisteNumero(seatmap.TipoBus(bus.Tipo), bus.Capacidad, numero) {
		return domain.ValidationError{Campo: "numero_asiento", Msg: "el asiento no existe en este bus"}
	}
	return nil
}

func (s AsientosService) mapaOcupacion(ctx context.Context, viajeID int64) (*seatmap.Mapa, models.Bus, error) {
	var bus models.Bus
	viaje, err := s.ViajeRepo.GetByID(ctx, viajeID)
	if err != nil {
		return nil, bus, err
	}
	bus, err = s.FlotaRepo.GetByID(ctx, viaje.BusID)
	if err != nil {
		return nil, bus, err
	}
	ocupados, err := s.ViajeRepo.AsientosOcupados(ctx, viajeID)
	if err != nil {
		return nil, bus, err
	}
	mapa, err := seatmap.NuevoMapa(seatmap.TipoBus(bus.Tipo), bus.Capacidad, ocupados)
	return mapa, bus, err
}

func (s AsientosService) retenidos(ctx context.Context, viajeID int64, tipo string, capacidad int) []int {
	retenidos := []int{}
	if s.Redis == nil {
		return retenidos
	}
	for _, numero := range seatmap.NumerosBus(seatmap.TipoBus(tipo), capacidad) {
		if _, err := s.Redis.Get(ctx, holdKey(viajeID, numero)).Result(); err == nil {
			retenidos = append(retenidos, numero)
		}
	}
	return retenidos
}
