package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/utils"
)

// DocsService genera los PDF: ticket de pasaje, factura y comprobante
// de encomienda. Los Loaders permiten inyectar datos en tests sin base.
type DocsService struct {
	PasajeRepo     repositories.PasajeRepository
	EncomiendaRepo repositories.EncomiendaRepository
	FacturaRepo    repositories.FacturaRepository
	RequestID      string

	PasajeLoader     func(context.Context, int64) (models.Pasaje, error)
	EncomiendaLoader func(context.Context, int64) (models.Encomienda, error)
	FacturaLoader    func(context.Context, int64) (models.Factura, error)
}

func (s DocsService) TicketPasaje(ctx context.Context, pasajeID int64) ([]byte, string, error) {
	load := s.PasajeLoader
	if load == nil {
		load = s.PasajeRepo.GetByID
	}
	p, err := load(ctx, pasajeID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "ticket_pasaje", fmt.Sprintf("pasaje_id=%d", pasajeID))
	return buildTicketPDF(p)
}

func (s DocsService) FacturaPDF(ctx context.Context, facturaID int64) ([]byte, string, error) {
	load := s.FacturaLoader
	if load == nil {
		load = s.FacturaRepo.GetByID
	}
	f, err := load(ctx, facturaID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "factura_pdf", fmt.Sprintf("factura_id=%d", facturaID))
	return buildFacturaPDF(f)
}

func (s DocsService) ComprobanteEncomienda(ctx context.Context, encomiendaID int64) ([]byte, string, error) {
	load := s.EncomiendaLoader
	if load == nil {
		load = s.EncomiendaRepo.GetByID
	}
	e, err := load(ctx, encomiendaID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "comprobante_encomienda", fmt.Sprintf("encomienda_id=%d", encomiendaID))
	return buildEncomiendaPDF(e)
}

func buildTicketPDF(p models.Pasaje) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pasaje", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PASAJE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Pasajero   : %s", safe(p.ClienteNombre, "-")),
		fmt.Sprintf("Ruta       : %s", safe(p.RutaNombre, "-")),
		fmt.Sprintf("Fecha      : %s", safe(p.ViajeFecha, "-")),
		fmt.Sprintf("Asiento    : %d (piso %d)", p.AsientoNumero, p.Piso),
		fmt.Sprintf("Precio     : %s", utils.FormatGuaranies(p.Precio)),
		fmt.Sprintf("Emitido    : %s", safe(p.Emitido, "-")),
		fmt.Sprintf("Código     : PSJ-%d-%d", p.ViajeID, p.ID),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Este pasaje es válido para un asiento. Presentarlo al abordar.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el PDF", Err: err}
	}
	filename := fmt.Sprintf("PASAJE_%d_%s.pdf", p.ID, safeFilenamePart(p.ClienteNombre))
	return buf.Bytes(), filename, nil
}

func buildFacturaPDF(f models.Factura) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Factura", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FACTURA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Timbrado  : "+safe(f.Timbrado, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Número    : "+safe(f.Numero, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Fecha     : "+safe(f.Fecha, utils.FormatDate(time.Now())))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Cliente:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Razón social : %s", safe(f.ClienteNombre, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("RUC          : %s", safe(f.ClienteRUC, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Detalle:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, d := range f.Detalles {
		linea := fmt.Sprintf("%d) %s x%d  %s", i+1, d.Descripcion, d.Cantidad,
			utils.FormatGuaranies(d.Monto*int64(d.Cantidad)))
		pdf.MultiCell(0, 6, linea, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatGuaranies(f.Total))
	pdf.Ln(12)

	if f.Anulada {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 8, "** ANULADA **")
		pdf.Ln(10)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el PDF", Err: err}
	}
	filename := fmt.Sprintf("FACTURA_%s.pdf", safeFilenamePart(f.Numero))
	return buf.Bytes(), filename, nil
}

func buildEncomiendaPDF(e models.Encomienda) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Encomienda", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "COMPROBANTE DE ENCOMIENDA")
	pdf.Ln(12)

	bultos := describirBultos(e)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Remitente  : %s (%s)", safe(e.Remitente, "-"), safe(e.RucCI, "-")),
		fmt.Sprintf("Contacto   : %s", safe(e.NumeroContacto, "-")),
		fmt.Sprintf("Origen     : %s", safe(e.OrigenNombre, "-")),
		fmt.Sprintf("Destino    : %s", safe(e.DestinoNombre, "-")),
		fmt.Sprintf("Envío      : %s", bultos),
		fmt.Sprintf("Flete      : %s", utils.FormatGuaranies(e.Flete)),
		fmt.Sprintf("Registrado : %s", safe(e.Creado, "-")),
		fmt.Sprintf("Código     : ENC-%d-%d", e.ViajeID, e.ID),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	if e.Descripcion != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, "Descripción: "+e.Descripcion, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el PDF", Err: err}
	}
	filename := fmt.Sprintf("ENCOMIENDA_%d_%s.pdf", e.ID, safeFilenamePart(e.Remitente))
	return buf.Bytes(), filename, nil
}

func describirBultos(e models.Encomienda) string {
	switch e.TipoEnvio {
	case models.EnvioSobre:
		return fmt.Sprintf("%d sobre(s)", e.CantidadSobre)
	case models.EnvioPaquete:
		return fmt.Sprintf("%d paquete(s)", e.CantidadPaquete)
	case models.EnvioAmbos:
		return fmt.Sprintf("%d sobre(s), %d paquete(s)", e.CantidadSobre, e.CantidadPaquete)
	}
	return e.TipoEnvio
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
