package services

import (
	"context"

	"tr4cking/internal/repositories"
	"tr4cking/internal/rutas"
)

// RutasService expone la edición de la secuencia de paradas. El editor
// trabaja sobre una sesión en memoria y persiste con un diff mínimo.
type RutasService struct {
	RutaRepo repositories.RutaRepository
}

// CargarSesion arma una sesión de edición con el estado actual de la
// ruta.
func (s RutasService) CargarSesion(ctx context.Context, rutaID int64) (*rutas.Sesion, error) {
	if _, err := s.RutaRepo.GetByID(ctx, rutaID); err != nil {
		return nil, err
	}
	detalles, err := s.RutaRepo.ListDetalles(ctx, rutaID)
	if err != nil {
		return nil, err
	}
	return rutas.NuevaSesion(rutaID, detalles), nil
}

// ReemplazarSecuencia aplica de una vez la secuencia de paradas que
// manda el cliente: carga la sesión, la deja igual a la secuencia
// pedida y guarda el diff resultante.
func (s RutasService) ReemplazarSecuencia(ctx context.Context, rutaID int64, paradas []int64) ([]rutas.Detalle, error) {
	sesion, err := s.CargarSesion(ctx, rutaID)
	if err != nil {
		return nil, err
	}

	// quita lo que sobra y agrega lo que falta, en el orden pedido
	deseadas := make(map[int64]bool, len(paradas))
	for _, p := range paradas {
		deseadas[p] = true
	}
	for _, d := range sesion.Detalles() {
		if !deseadas[d.ParadaID] {
			sesion.QuitarParada(d.ID)
		}
	}
	for _, p := range paradas {
		existe := false
		for _, d := range sesion.Detalles() {
			if d.ParadaID == p {
				existe = true
				break
			}
		}
		if !existe {
			if _, err := sesion.AgregarParada(p); err != nil {
				return nil, err
			}
		}
	}

	// reordena moviendo cada parada hasta su posición destino
	for destino, p := range paradas {
		actual := -1
		for i, d := range sesion.Detalles() {
			if d.ParadaID == p {
				actual = i
				break
			}
		}
		for actual > destino {
			sesion.MoverParada(actual, rutas.Arriba)
			actual--
		}
	}

	if err := sesion.Guardar(ctx, s.RutaRepo); err != nil {
		return nil, err
	}
	return sesion.Detalles(), nil
}
