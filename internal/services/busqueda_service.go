package services

import (
	"context"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/utils"
)

// BusquedaService atiende el buscador público de viajes. No requiere
// sesión.
type BusquedaService struct {
	ViajeRepo repositories.ViajeRepository
}

func (s BusquedaService) Buscar(ctx context.Context, origen, destino int64, fecha string) ([]models.Viaje, error) {
	if origen <= 0 || destino <= 0 {
		return nil, domain.ValidationError{Campo: "origen", Msg: "origen y destino son obligatorios"}
	}
	if origen == destino {
		return nil, domain.ValidationError{Campo: "destino", Msg: "origen y destino no pueden coincidir"}
	}
	if _, err := utils.ParseDate(fecha); err != nil {
		return nil, domain.ValidationError{Campo: "fecha", Msg: "fecha inválida, formato esperado YYYY-MM-DD", Err: err}
	}
	return s.ViajeRepo.Buscar(ctx, origen, destino, fecha)
}
