package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

// ViajeRepository cubre horarios y viajes programados.
type ViajeRepository struct {
	DB *sql.DB
}

func (r ViajeRepository) ListHorarios(ctx context.Context, rutaID int64) ([]models.Horario, error) {
	query := `
		SELECT id_horario, ruta, TIME_FORMAT(hora_salida, '%H:%i'), dias_semana, activo
		FROM horarios`
	args := []any{}
	if rutaID > 0 {
		query += ` WHERE ruta = ?`
		args = append(args, rutaID)
	}
	query += ` ORDER BY hora_salida`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Horario{}
	for rows.Next() {
		var h models.Horario
		if err := rows.Scan(&h.ID, &h.RutaID, &h.HoraSalida, &h.DiasSemana, &h.Activo); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func (r ViajeRepository) GetHorario(ctx context.Context, id int64) (models.Horario, error) {
	var h models.Horario
	err := r.DB.QueryRowContext(ctx, `
		SELECT id_horario, ruta, TIME_FORMAT(hora_salida, '%H:%i'), dias_semana, activo
		FROM horarios WHERE id_horario = ?`, id).
		Scan(&h.ID, &h.RutaID, &h.HoraSalida, &h.DiasSemana, &h.Activo)
	if err == sql.ErrNoRows {
		return h, domain.NotFoundError{Recurso: "horario"}
	}
	return h, err
}

func (r ViajeRepository) CreateHorario(ctx context.Context, h models.Horario) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO horarios (ruta, hora_salida, dias_semana, activo)
		VALUES (?, ?, ?, ?)`,
		h.RutaID, h.HoraSalida, h.DiasSemana, h.Activo)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "horario", Msg: "la ruta ya tiene una salida a esa hora", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r ViajeRepository) UpdateHorario(ctx context.Context, h models.Horario) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE horarios SET ruta = ?, hora_salida = ?, dias_semana = ?, activo = ?
		WHERE id_horario = ?`,
		h.RutaID, h.HoraSalida, h.DiasSemana, h.Activo, h.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "horario", Msg: "la ruta ya tiene una salida a esa hora", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "horario"}
	}
	return nil
}

func (r ViajeRepository) DeleteHorario(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM horarios WHERE id_horario = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "horario"}
	}
	return nil
}

const viajeSelect = `
	SELECT v.id_viaje, v.horario, v.bus, b.placa,
	       DATE_FORMAT(v.fecha, '%Y-%m-%d'), v.activo, COALESCE(v.observaciones,''),
	       h.ruta, r.nombre, TIME_FORMAT(h.hora_salida, '%H:%i')
	FROM viajes v
	JOIN buses b ON b.id_bus = v.bus
	JOIN horarios h ON h.id_horario = v.horario
	JOIN rutas r ON r.id_ruta = h.ruta`

func scanViaje(rows interface{ Scan(...any) error }, v *models.Viaje) error {
	return rows.Scan(&v.ID, &v.HorarioID, &v.BusID, &v.BusPlaca,
		&v.Fecha, &v.Activo, &v.Observaciones,
		&v.RutaID, &v.RutaNombre, &v.HoraSalida)
}

func (r ViajeRepository) List(ctx context.Context, fecha string) ([]models.Viaje, error) {
	query := viajeSelect
	args := []any{}
	if fecha != "" {
		query += ` WHERE v.fecha = ?`
		args = append(args, fecha)
	}
	query += ` ORDER BY v.fecha DESC, h.hora_salida`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Viaje{}
	for rows.Next() {
		var v models.Viaje
		if err := scanViaje(rows, &v); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r ViajeRepository) GetByID(ctx context.Context, id int64) (models.Viaje, error) {
	var v models.Viaje
	err := scanViaje(r.DB.QueryRowContext(ctx, viajeSelect+` WHERE v.id_viaje = ?`, id), &v)
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Recurso: "viaje", Err: err}
	}
	return v, err
}

func (r ViajeRepository) Create(ctx context.Context, v models.Viaje) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO viajes (horario, bus, fecha, activo, observaciones)
		VALUES (?, ?, ?, ?, ?)`,
		v.HorarioID, v.BusID, v.Fecha, v.Activo, nullIfEmpty(v.Observaciones))
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "viaje", Msg: "el bus ya tiene un viaje para esa fecha y horario", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r ViajeRepository) Update(ctx context.Context, v models.Viaje) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE viajes SET horario = ?, bus = ?, fecha = ?, activo = ?, observaciones = ?
		WHERE id_viaje = ?`,
		v.HorarioID, v.BusID, v.Fecha, v.Activo, nullIfEmpty(v.Observaciones), v.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "viaje", Msg: "el bus ya tiene un viaje para esa fecha y horario", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "viaje"}
	}
	return nil
}

func (r ViajeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM viajes WHERE id_viaje = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "viaje"}
	}
	return nil
}

// AsientosOcupados devuelve los números de asiento ya vendidos para
// un viaje (pasajes anulados no cuentan).
func (r ViajeRepository) AsientosOcupados(ctx context.Context, viajeID int64) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT asiento_numero FROM pasajes
		WHERE viaje = ? AND estado <> 'anulado'
		ORDER BY asiento_numero`, viajeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ocupados := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		ocupados = append(ocupados, n)
	}
	return ocupados, rows.Err()
}

// Buscar lista viajes activos cuya ruta pasa por ambas localidades en
// el orden correcto (origen antes que destino), para el buscador
// público.
func (r ViajeRepository) Buscar(ctx context.Context, origenLocalidad, destinoLocalidad int64, fecha string) ([]models.Viaje, error) {
	rows, err := r.DB.QueryContext(ctx, viajeSelect+`
		JOIN detalle_rutas do_ ON do_.ruta = h.ruta
		JOIN paradas po ON po.id_parada = do_.parada AND po.localidad = ?
		JOIN detalle_rutas dd ON dd.ruta = h.ruta
		JOIN paradas pd ON pd.id_parada = dd.parada AND pd.localidad = ?
		WHERE v.fecha = ? AND v.activo = 1 AND do_.orden < dd.orden
		GROUP BY v.id_viaje
		ORDER BY h.hora_salida`,
		origenLocalidad, destinoLocalidad, fecha)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Viaje{}
	for rows.Next() {
		var v models.Viaje
		if err := scanViaje(rows, &v); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
