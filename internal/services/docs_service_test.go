package services

import (
	"context"
	"testing"
	"time"

	"tr4cking/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{
		PasajeLoader: func(_ context.Context, id int64) (models.Pasaje, error) {
			return models.Pasaje{
				ID:            id,
				ClienteID:     3,
				ViajeID:       10,
				AsientoNumero: 12,
				Piso:          1,
				Precio:        80000,
				Estado:        models.PasajeEmitido,
				Emitido:       time.Now().Format("2006-01-02 15:04:05"),
				ClienteNombre: "Cliente Prueba",
				RutaNombre:    "Asunción - Encarnación",
				ViajeFecha:    "2025-03-01",
			}, nil
		},
		FacturaLoader: func(_ context.Context, id int64) (models.Factura, error) {
			return models.Factura{
				ID:            id,
				ClienteID:     3,
				Timbrado:      "12345678",
				Numero:        "001-001-0000042",
				Fecha:         "2025-03-01",
				Total:         160000,
				ClienteNombre: "Cliente Prueba",
				ClienteRUC:    "80012345-6",
				Detalles: []models.DetalleFactura{
					{Descripcion: "Pasaje Asunción - Encarnación", Cantidad: 2, Monto: 80000},
				},
			}, nil
		},
		EncomiendaLoader: func(_ context.Context, id int64) (models.Encomienda, error) {
			return models.Encomienda{
				ID:              id,
				ViajeID:         10,
				Remitente:       "Remitente Prueba",
				RucCI:           "1234567",
				NumeroContacto:  "0981123456",
				TipoEnvio:       models.EnvioAmbos,
				CantidadSobre:   1,
				CantidadPaquete: 2,
				Flete:           50000,
				OrigenNombre:    "Asunción",
				DestinoNombre:   "Encarnación",
			}, nil
		},
	}

	ctx := context.Background()

	pdf, filename, err := svc.TicketPasaje(ctx, 1)
	if err != nil {
		t.Fatalf("TicketPasaje returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("TicketPasaje returned empty data")
	}

	factura, facName, err := svc.FacturaPDF(ctx, 1)
	if err != nil {
		t.Fatalf("FacturaPDF returned error: %v", err)
	}
	if len(factura) == 0 || facName == "" {
		t.Fatalf("FacturaPDF returned empty data")
	}

	recibo, recName, err := svc.ComprobanteEncomienda(ctx, 1)
	if err != nil {
		t.Fatalf("ComprobanteEncomienda returned error: %v", err)
	}
	if len(recibo) == 0 || recName == "" {
		t.Fatalf("ComprobanteEncomienda returned empty data")
	}
}
