package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/rutas"
)

// RutaRepository maneja rutas y su secuencia de paradas (detalle_rutas).
type RutaRepository struct {
	DB *sql.DB
}

func (r RutaRepository) List(ctx context.Context) ([]models.Ruta, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_ruta, nombre, duracion_total, distancia_km, precio_base, activo,
		       DATE_FORMAT(fecha_actualizacion, '%Y-%m-%d %H:%i:%s')
		FROM rutas
		ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Ruta{}
	for rows.Next() {
		var rt models.Ruta
		if err := rows.Scan(&rt.ID, &rt.Nombre, &rt.DuracionTotal, &rt.DistanciaKm,
			&rt.PrecioBase, &rt.Activo, &rt.Actualizado); err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

func (r RutaRepository) GetByID(ctx context.Context, id int64) (models.Ruta, error) {
	var rt models.Ruta
	err := r.DB.QueryRowContext(ctx, `
		SELECT id_ruta, nombre, duracion_total, distancia_km, precio_base, activo,
		       DATE_FORMAT(fecha_actualizacion, '%Y-%m-%d %H:%i:%s')
		FROM rutas
		WHERE id_ruta = ?`, id).
		Scan(&rt.ID, &rt.Nombre, &rt.DuracionTotal, &rt.DistanciaKm,
			&rt.PrecioBase, &rt.Activo, &rt.Actualizado)
	if err == sql.ErrNoRows {
		return rt, domain.NotFoundError{Recurso: "ruta", Err: err}
	}
	return rt, err
}

func (r RutaRepository) Create(ctx context.Context, rt models.Ruta) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO rutas (nombre, duracion_total, distancia_km, precio_base, activo)
		VALUES (?, ?, ?, ?, ?)`,
		rt.Nombre, rt.DuracionTotal, rt.DistanciaKm, rt.PrecioBase, rt.Activo)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RutaRepository) Update(ctx context.Context, rt models.Ruta) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE rutas
		SET nombre = ?, duracion_total = ?, distancia_km = ?, precio_base = ?, activo = ?
		WHERE id_ruta = ?`,
		rt.Nombre, rt.DuracionTotal, rt.DistanciaKm, rt.PrecioBase, rt.Activo, rt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "ruta"}
	}
	return nil
}

func (r RutaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM rutas WHERE id_ruta = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "ruta"}
	}
	return nil
}

// ListDetalles devuelve la secuencia de paradas de la ruta ordenada por
// orden.
func (r RutaRepository) ListDetalles(ctx context.Context, rutaID int64) ([]rutas.Detalle, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_detalle, ruta, parada, orden
		FROM detalle_rutas
		WHERE ruta = ?
		ORDER BY orden`, rutaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []rutas.Detalle{}
	for rows.Next() {
		var d rutas.Detalle
		if err := rows.Scan(&d.ID, &d.RutaID, &d.ParadaID, &d.Orden); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// AplicarDiff ejecuta el diff de la secuencia en una sola transacción:
// primero borra, luego actualiza orden, al final inserta. Una falla en
// cualquier punto revierte todo, eliminando la ventana de estado
// parcial que dejaba el viejo borrar-y-recrear.
func (r RutaRepository) AplicarDiff(ctx context.Context, rutaID int64, d rutas.Diff) ([]rutas.Detalle, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, id := range d.Eliminar {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM detalle_rutas WHERE id_detalle = ? AND ruta = ?`, id, rutaID); err != nil {
			return nil, err
		}
	}

	// orden negativo transitorio para no chocar con el unique (ruta, orden)
	for _, u := range d.Actualizar {
		if _, err := tx.ExecContext(ctx,
			`UPDATE detalle_rutas SET orden = ? WHERE id_detalle = ? AND ruta = ?`,
			-u.Orden, u.ID, rutaID); err != nil {
			return nil, err
		}
	}
	for _, u := range d.Actualizar {
		if _, err := tx.ExecContext(ctx,
			`UPDATE detalle_rutas SET orden = ? WHERE id_detalle = ? AND ruta = ?`,
			u.Orden, u.ID, rutaID); err != nil {
			return nil, err
		}
	}

	for _, c := range d.Crear {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO detalle_rutas (ruta, parada, orden) VALUES (?, ?, ?)`,
			rutaID, c.ParadaID, c.Orden); err != nil {
			if mysqlDuplicate(err) {
				return nil, domain.ConflictError{Recurso: "detalle_rutas", Msg: "parada repetida en la ruta", Err: err}
			}
			return nil, err
		}
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id_detalle, ruta, parada, orden
		FROM detalle_rutas
		WHERE ruta = ?
		ORDER BY orden`, rutaID)
	if err != nil {
		return nil, err
	}
	result := []rutas.Detalle{}
	for rows.Next() {
		var det rutas.Detalle
		if err := rows.Scan(&det.ID, &det.RutaID, &det.ParadaID, &det.Orden); err != nil {
			rows.Close()
			return nil, err
		}
		result = append(result, det)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
