package services

import (
	"context"
	"fmt"
	"time"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/queue"
	"tr4cking/internal/repositories"
	"tr4cking/internal/utils"
)

// PasajesService emite y anula pasajes. La emisión valida el asiento,
// libera la retención y publica el evento; el broker caído no frena la
// venta.
type PasajesService struct {
	PasajeRepo  repositories.PasajeRepository
	ViajeRepo   repositories.ViajeRepository
	ClienteRepo repositories.ClienteRepository
	Asientos    AsientosService
	Publisher   queue.Publisher
	RequestID   string
}

func (s PasajesService) Emitir(ctx context.Context, p models.Pasaje, usuarioID int64) (models.Pasaje, error) {
	var out models.Pasaje

	if p.ViajeID <= 0 {
		return out, domain.ValidationError{Campo: "viaje", Msg: "viaje es obligatorio"}
	}
	if p.AsientoNumero <= 0 {
		return out, domain.ValidationError{Campo: "numero_asiento", Msg: "asiento es obligatorio"}
	}
	if p.Piso != 1 && p.Piso != 2 {
		p.Piso = 1
	}

	if _, err := s.ClienteRepo.GetByID(ctx, p.ClienteID); err != nil {
		return out, err
	}

	viaje, err := s.ViajeRepo.GetByID(ctx, p.ViajeID)
	if err != nil {
		return out, err
	}
	if !viaje.Activo {
		return out, domain.ValidationError{Campo: "viaje", Msg: "el viaje no está activo"}
	}
	if err := s.Asientos.ValidarAsiento(ctx, viaje.BusID, p.AsientoNumero); err != nil {
		return out, err
	}

	// el asiento puede estar retenido por el mismo vendedor
	if dueno := s.Asientos.RetenidoPor(ctx, p.ViajeID, p.AsientoNumero); dueno != 0 && dueno != usuarioID {
		return out, domain.ConflictError{Recurso: "asiento", Msg: "el asiento está retenido por otro usuario"}
	}

	id, err := s.PasajeRepo.Create(ctx, p)
	if err != nil {
		return out, err
	}
	_ = s.Asientos.Liberar(ctx, p.ViajeID, p.AsientoNumero, usuarioID)

	out, err = s.PasajeRepo.GetByID(ctx, id)
	if err != nil {
		return out, err
	}

	utils.LogEvent(s.RequestID, "pasajes", "emitir",
		fmt.Sprintf("pasaje_id=%d viaje=%d asiento=%d", id, p.ViajeID, p.AsientoNumero))

	_ = s.Publisher.Publicar(ctx, queue.ColaPasajeEmitido, queue.PasajeEmitidoEvent{
		PasajeID:      out.ID,
		ViajeID:       out.ViajeID,
		ClienteID:     out.ClienteID,
		AsientoNumero: out.AsientoNumero,
		Piso:          out.Piso,
		Precio:        out.Precio,
		Emitido:       utils.FormatDateTime(time.Now()),
	})
	return out, nil
}

func (s PasajesService) Anular(ctx context.Context, id int64) error {
	if err := s.PasajeRepo.Anular(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "pasajes", "anular", fmt.Sprintf("pasaje_id=%d", id))
	return nil
}
