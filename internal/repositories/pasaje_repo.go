package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

type PasajeRepository struct {
	DB *sql.DB
}

const pasajeSelect = `
	SELECT p.id_pasaje, p.cliente, p.viaje, p.asiento_numero, p.piso,
	       p.precio, p.estado, DATE_FORMAT(p.fecha_emision, '%Y-%m-%d %H:%i:%s'),
	       c.razon_social, r.nombre, DATE_FORMAT(v.fecha, '%Y-%m-%d')
	FROM pasajes p
	JOIN clientes c ON c.id_cliente = p.cliente
	JOIN viajes v ON v.id_viaje = p.viaje
	JOIN horarios h ON h.id_horario = v.horario
	JOIN rutas r ON r.id_ruta = h.ruta`

func scanPasaje(row interface{ Scan(...any) error }, p *models.Pasaje) error {
	return row.Scan(&p.ID, &p.ClienteID, &p.ViajeID, &p.AsientoNumero, &p.Piso,
		&p.Precio, &p.Estado, &p.Emitido,
		&p.ClienteNombre, &p.RutaNombre, &p.ViajeFecha)
}

func (r PasajeRepository) List(ctx context.Context, viajeID int64) ([]models.Pasaje, error) {
	query := pasajeSelect
	args := []any{}
	if viajeID > 0 {
		query += ` WHERE p.viaje = ?`
		args = append(args, viajeID)
	}
	query += ` ORDER BY p.fecha_emision DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Pasaje{}
	for rows.Next() {
		var p models.Pasaje
		if err := scanPasaje(rows, &p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r PasajeRepository) GetByID(ctx context.Context, id int64) (models.Pasaje, error) {
	var p models.Pasaje
	err := scanPasaje(r.DB.QueryRowContext(ctx, pasajeSelect+` WHERE p.id_pasaje = ?`, id), &p)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Recurso: "pasaje", Err: err}
	}
	return p, err
}

// Create emite el pasaje verificando dentro de la misma transacción
// que el asiento siga libre en ese viaje.
func (r PasajeRepository) Create(ctx context.Context, p models.Pasaje) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var ocupado int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM pasajes
		WHERE viaje = ? AND asiento_numero = ? AND estado <> 'anulado'
		FOR UPDATE`,
		p.ViajeID, p.AsientoNumero).Scan(&ocupado)
	if err != nil {
		return 0, err
	}
	if ocupado > 0 {
		return 0, domain.ConflictError{Recurso: "pasaje", Msg: "el asiento ya está ocupado en este viaje"}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO pasajes (cliente, viaje, asiento_numero, piso, precio, estado, fecha_emision)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		p.ClienteID, p.ViajeID, p.AsientoNumero, p.Piso, p.Precio, models.PasajeEmitido)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "pasaje", Msg: "el asiento ya está ocupado en este viaje", Err: err}
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// Anular marca el pasaje como anulado; el asiento vuelve a quedar
// disponible.
func (r PasajeRepository) Anular(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE pasajes SET estado = ? WHERE id_pasaje = ? AND estado <> ?`,
		models.PasajeAnulado, id, models.PasajeAnulado)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "pasaje"}
	}
	return nil
}

func (r PasajeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM pasajes WHERE id_pasaje = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "pasaje"}
	}
	return nil
}
