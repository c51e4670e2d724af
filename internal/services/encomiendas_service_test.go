package services

import (
	"testing"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

func TestValidarEncomienda(t *testing.T) {
	base := models.Encomienda{
		ViajeID:        10,
		OrigenID:       1,
		DestinoID:      2,
		Flete:          50000,
		Remitente:      "Remitente",
		RucCI:          "1234567",
		NumeroContacto: "0981123456",
	}

	cases := []struct {
		name    string
		mutate  func(*models.Encomienda)
		wantErr bool
	}{
		{"sobre valido", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioSobre
			e.CantidadSobre = 2
		}, false},
		{"paquete valido", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioPaquete
			e.CantidadPaquete = 1
		}, false},
		{"ambos valido", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioAmbos
			e.CantidadSobre = 1
			e.CantidadPaquete = 1
		}, false},
		{"sobre sin cantidad", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioSobre
		}, true},
		{"sobre con paquetes", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioSobre
			e.CantidadSobre = 1
			e.CantidadPaquete = 3
		}, true},
		{"paquete con sobres", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioPaquete
			e.CantidadPaquete = 1
			e.CantidadSobre = 1
		}, true},
		{"ambos incompleto", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioAmbos
			e.CantidadSobre = 1
		}, true},
		{"tipo desconocido", func(e *models.Encomienda) {
			e.TipoEnvio = "caja"
			e.CantidadPaquete = 1
		}, true},
		{"mismo origen y destino", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioSobre
			e.CantidadSobre = 1
			e.DestinoID = e.OrigenID
		}, true},
		{"flete cero", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioSobre
			e.CantidadSobre = 1
			e.Flete = 0
		}, true},
		{"sin remitente", func(e *models.Encomienda) {
			e.TipoEnvio = models.EnvioSobre
			e.CantidadSobre = 1
			e.Remitente = ""
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := base
			tc.mutate(&e)
			err := validarEncomienda(e)
			if tc.wantErr && !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
