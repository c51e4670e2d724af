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

type EncomiendasService struct {
	EncomiendaRepo repositories.EncomiendaRepository
	ViajeRepo      repositories.ViajeRepository
	Publisher      queue.Publisher
	RequestID      string
}

// validar revisa la coherencia entre tipo de envío y cantidades:
// "sobre" exige sobres y cero paquetes, "paquete" lo inverso, "ambos"
// exige los dos.
func validarEncomienda(e models.Encomienda) error {
	if e.Remitente == "" {
		return domain.ValidationError{Campo: "remitente", Msg: "remitente es obligatorio"}
	}
	if e.OrigenID <= 0 || e.DestinoID <= 0 {
		return domain.ValidationError{Campo: "origen", Msg: "origen y destino son obligatorios"}
	}
	if e.OrigenID == e.DestinoID {
		return domain.ValidationError{Campo: "destino", Msg: "origen y destino no pueden coincidir"}
	}
	if e.Flete <= 0 {
		return domain.ValidationError{Campo: "flete", Msg: "el flete debe ser mayor a cero"}
	}

	switch e.TipoEnvio {
	case models.EnvioSobre:
		if e.CantidadSobre <= 0 {
			return domain.ValidationError{Campo: "cantidad_sobre", Msg: "cantidad de sobres debe ser mayor a cero"}
		}
		if e.CantidadPaquete != 0 {
			return domain.ValidationError{Campo: "cantidad_paquete", Msg: "un envío de sobres no lleva paquetes"}
		}
	case models.EnvioPaquete:
		if e.CantidadPaquete <= 0 {
			return domain.ValidationError{Campo: "cantidad_paquete", Msg: "cantidad de paquetes debe ser mayor a cero"}
		}
		if e.CantidadSobre != 0 {
			return domain.ValidationError{Campo: "cantidad_sobre", Msg: "un envío de paquetes no lleva sobres"}
		}
	case models.EnvioAmbos:
		if e.CantidadSobre <= 0 || e.CantidadPaquete <= 0 {
			return domain.ValidationError{Campo: "tipo_envio", Msg: "un envío mixto lleva sobres y paquetes"}
		}
	default:
		return domain.ValidationError{Campo: "tipo_envio", Msg: "tipo de envío desconocido: " + e.TipoEnvio}
	}
	return nil
}

func (s EncomiendasService) Registrar(ctx context.Context, e models.Encomienda) (models.Encomienda, error) {
	var out models.Encomienda

	if err := validarEncomienda(e); err != nil {
		return out, err
	}
	viaje, err := s.ViajeRepo.GetByID(ctx, e.ViajeID)
	if err != nil {
		return out, err
	}
	if !viaje.Activo {
		return out, domain.ValidationError{Campo: "viaje", Msg: "el viaje no está activo"}
	}

	id, err := s.EncomiendaRepo.Create(ctx, e)
	if err != nil {
		return out, err
	}
	out, err = s.EncomiendaRepo.GetByID(ctx, id)
	if err != nil {
		return out, err
	}

	utils.LogEvent(s.RequestID, "encomiendas", "registrar",
		fmt.Sprintf("encomienda_id=%d viaje=%d tipo=%s", id, e.ViajeID, e.TipoEnvio))

	_ = s.Publisher.Publicar(ctx, queue.ColaEncomiendaRegistrada, queue.EncomiendaRegistradaEvent{
		EncomiendaID: out.ID,
		ViajeID:      out.ViajeID,
		OrigenID:     out.OrigenID,
		DestinoID:    out.DestinoID,
		TipoEnvio:    out.TipoEnvio,
		Flete:        out.Flete,
		Creado:       utils.FormatDateTime(time.Now()),
	})
	return out, nil
}

func (s EncomiendasService) Actualizar(ctx context.Context, e models.Encomienda) error {
	if err := validarEncomienda(e); err != nil {
		return err
	}
	return s.EncomiendaRepo.Update(ctx, e)
}
