package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

type FacturaRepository struct {
	DB *sql.DB
}

const facturaSelect = `
	SELECT f.id_factura, f.cliente, f.timbrado, f.numero,
	       DATE_FORMAT(f.fecha, '%Y-%m-%d'), f.total, f.anulada,
	       c.razon_social, c.ruc
	FROM facturas f
	JOIN clientes c ON c.id_cliente = f.cliente`

func scanFactura(row interface{ Scan(...any) error }, f *models.Factura) error {
	return row.Scan(&f.ID, &f.ClienteID, &f.Timbrado, &f.Numero,
		&f.Fecha, &f.Total, &f.Anulada, &f.ClienteNombre, &f.ClienteRUC)
}

func (r FacturaRepository) List(ctx context.Context, clienteID int64) ([]models.Factura, error) {
	query := facturaSelect
	args := []any{}
	if clienteID > 0 {
		query += ` WHERE f.cliente = ?`
		args = append(args, clienteID)
	}
	query += ` ORDER BY f.fecha DESC, f.id_factura DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Factura{}
	for rows.Next() {
		var f models.Factura
		if err := scanFactura(rows, &f); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// GetByID trae la factura con sus detalles.
func (r FacturaRepository) GetByID(ctx context.Context, id int64) (models.Factura, error) {
	var f models.Factura
	err := scanFactura(r.DB.QueryRowContext(ctx, facturaSelect+` WHERE f.id_factura = ?`, id), &f)
	if err == sql.ErrNoRows {
		return f, domain.NotFoundError{Recurso: "factura", Err: err}
	}
	if err != nil {
		return f, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_detalle, factura, descripcion, cantidad, monto
		FROM detalle_facturas WHERE factura = ? ORDER BY id_detalle`, id)
	if err != nil {
		return f, err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.DetalleFactura
		if err := rows.Scan(&d.ID, &d.FacturaID, &d.Descripcion, &d.Cantidad, &d.Monto); err != nil {
			return f, err
		}
		f.Detalles = append(f.Detalles, d)
	}
	return f, rows.Err()
}

// Create inserta cabecera y detalles en una sola transacción. El total
// se recalcula de los detalles, no se confía en el que llega.
func (r FacturaRepository) Create(ctx context.Context, f models.Factura) (int64, error) {
	if len(f.Detalles) == 0 {
		return 0, domain.ValidationError{Campo: "detalles", Msg: "la factura necesita al menos un detalle"}
	}

	var total int64
	for _, d := range f.Detalles {
		total += d.Monto * int64(d.Cantidad)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO facturas (cliente, timbrado, numero, fecha, total, anulada)
		VALUES (?, ?, ?, ?, ?, 0)`,
		f.ClienteID, f.Timbrado, f.Numero, f.Fecha, total)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "factura", Msg: "ya existe una factura con ese número y timbrado", Err: err}
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, d := range f.Detalles {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO detalle_facturas (factura, descripcion, cantidad, monto)
			VALUES (?, ?, ?, ?)`,
			id, d.Descripcion, d.Cantidad, d.Monto); err != nil {
			return 0, err
		}
	}
	return id, tx.Commit()
}

// Anular marca la factura sin borrarla; los números de timbrado no se
// reutilizan.
func (r FacturaRepository) Anular(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE facturas SET anulada = 1 WHERE id_factura = ? AND anulada = 0`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "factura"}
	}
	return nil
}
