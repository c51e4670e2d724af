package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

type EncomiendaRepository struct {
	DB *sql.DB
}

const encomiendaSelect = `
	SELECT e.id_encomienda, e.viaje, e.cliente, e.origen, e.destino,
	       e.flete, e.remitente, e.ruc_ci, e.numero_contacto,
	       e.tipo_envio, e.cantidad_sobre, e.cantidad_paquete,
	       COALESCE(e.descripcion,''), DATE_FORMAT(e.fecha_creacion, '%Y-%m-%d %H:%i:%s'),
	       lo.nombre, ld.nombre, c.razon_social
	FROM encomiendas e
	JOIN localidades lo ON lo.id_localidad = e.origen
	JOIN localidades ld ON ld.id_localidad = e.destino
	JOIN clientes c ON c.id_cliente = e.cliente`

func scanEncomienda(row interface{ Scan(...any) error }, e *models.Encomienda) error {
	return row.Scan(&e.ID, &e.ViajeID, &e.ClienteID, &e.OrigenID, &e.DestinoID,
		&e.Flete, &e.Remitente, &e.RucCI, &e.NumeroContacto,
		&e.TipoEnvio, &e.CantidadSobre, &e.CantidadPaquete,
		&e.Descripcion, &e.Creado,
		&e.OrigenNombre, &e.DestinoNombre, &e.ClienteNombre)
}

func (r EncomiendaRepository) List(ctx context.Context, viajeID int64) ([]models.Encomienda, error) {
	query := encomiendaSelect
	args := []any{}
	if viajeID > 0 {
		query += ` WHERE e.viaje = ?`
		args = append(args, viajeID)
	}
	query += ` ORDER BY e.fecha_creacion DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Encomienda{}
	for rows.Next() {
		var e models.Encomienda
		if err := scanEncomienda(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r EncomiendaRepository) GetByID(ctx context.Context, id int64) (models.Encomienda, error) {
	var e models.Encomienda
	err := scanEncomienda(r.DB.QueryRowContext(ctx, encomiendaSelect+` WHERE e.id_encomienda = ?`, id), &e)
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Recurso: "encomienda", Err: err}
	}
	return e, err
}

func (r EncomiendaRepository) Create(ctx context.Context, e models.Encomienda) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO encomiendas
			(viaje, cliente, origen, destino, flete, remitente, ruc_ci,
			 numero_contacto, tipo_envio, cantidad_sobre, cantidad_paquete,
			 descripcion, fecha_creacion)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		e.ViajeID, e.ClienteID, e.OrigenID, e.DestinoID, e.Flete,
		e.Remitente, e.RucCI, e.NumeroContacto, e.TipoEnvio,
		e.CantidadSobre, e.CantidadPaquete, nullIfEmpty(e.Descripcion))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EncomiendaRepository) Update(ctx context.Context, e models.Encomienda) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE encomiendas SET
			viaje = ?, cliente = ?, origen = ?, destino = ?, flete = ?,
			remitente = ?, ruc_ci = ?, numero_contacto = ?, tipo_envio = ?,
			cantidad_sobre = ?, cantidad_paquete = ?, descripcion = ?
		WHERE id_encomienda = ?`,
		e.ViajeID, e.ClienteID, e.OrigenID, e.DestinoID, e.Flete,
		e.Remitente, e.RucCI, e.NumeroContacto, e.TipoEnvio,
		e.CantidadSobre, e.CantidadPaquete, nullIfEmpty(e.Descripcion), e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "encomienda"}
	}
	return nil
}

func (r EncomiendaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM encomiendas WHERE id_encomienda = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "encomienda"}
	}
	return nil
}
