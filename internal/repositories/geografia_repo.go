package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

// GeografiaRepository cubre localidades y paradas; las pantallas de
// rutas siempre las cargan juntas.
type GeografiaRepository struct {
	DB *sql.DB
}

func (r GeografiaRepository) ListLocalidades(ctx context.Context) ([]models.Localidad, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_localidad, nombre, coordenadas
		FROM localidades
		ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Localidad{}
	for rows.Next() {
		var l models.Localidad
		var coord sql.NullFloat64
		if err := rows.Scan(&l.ID, &l.Nombre, &coord); err != nil {
			return nil, err
		}
		if coord.Valid {
			v := coord.Float64
			l.Coordenadas = &v
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r GeografiaRepository) GetLocalidad(ctx context.Context, id int64) (models.Localidad, error) {
	var l models.Localidad
	var coord sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, `
		SELECT id_localidad, nombre, coordenadas FROM localidades WHERE id_localidad = ?`, id).
		Scan(&l.ID, &l.Nombre, &coord)
	if err == sql.ErrNoRows {
		return l, domain.NotFoundError{Recurso: "localidad", Err: err}
	}
	if coord.Valid {
		v := coord.Float64
		l.Coordenadas = &v
	}
	return l, err
}

func (r GeografiaRepository) CreateLocalidad(ctx context.Context, l models.Localidad) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO localidades (nombre, coordenadas) VALUES (?, ?)`,
		l.Nombre, l.Coordenadas)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GeografiaRepository) UpdateLocalidad(ctx context.Context, l models.Localidad) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE localidades SET nombre = ?, coordenadas = ? WHERE id_localidad = ?`,
		l.Nombre, l.Coordenadas, l.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "localidad"}
	}
	return nil
}

func (r GeografiaRepository) DeleteLocalidad(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM localidades WHERE id_localidad = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "localidad"}
	}
	return nil
}

const paradaSelect = `
	SELECT p.id_parada, p.empresa, p.tipo_parada, p.nombre,
	       COALESCE(p.direccion,''), COALESCE(p.telefono,''),
	       p.localidad, l.nombre
	FROM paradas p
	JOIN localidades l ON l.id_localidad = p.localidad`

func (r GeografiaRepository) ListParadas(ctx context.Context) ([]models.Parada, error) {
	rows, err := r.DB.QueryContext(ctx, paradaSelect+` ORDER BY p.nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Parada{}
	for rows.Next() {
		var p models.Parada
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Tipo, &p.Nombre,
			&p.Direccion, &p.Telefono, &p.LocalidadID, &p.LocalidadNombre); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r GeografiaRepository) GetParada(ctx context.Context, id int64) (models.Parada, error) {
	var p models.Parada
	err := r.DB.QueryRowContext(ctx, paradaSelect+` WHERE p.id_parada = ?`, id).
		Scan(&p.ID, &p.EmpresaID, &p.Tipo, &p.Nombre,
			&p.Direccion, &p.Telefono, &p.LocalidadID, &p.LocalidadNombre)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Recurso: "parada", Err: err}
	}
	return p, err
}

func (r GeografiaRepository) CreateParada(ctx context.Context, p models.Parada) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO paradas (empresa, tipo_parada, nombre, direccion, telefono, localidad)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.EmpresaID, p.Tipo, p.Nombre, nullIfEmpty(p.Direccion), nullIfEmpty(p.Telefono), p.LocalidadID)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "parada", Msg: "nombre o localidad ya usados", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r GeografiaRepository) UpdateParada(ctx context.Context, p models.Parada) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE paradas
		SET empresa = ?, tipo_parada = ?, nombre = ?, direccion = ?, telefono = ?, localidad = ?
		WHERE id_parada = ?`,
		p.EmpresaID, p.Tipo, p.Nombre, nullIfEmpty(p.Direccion), nullIfEmpty(p.Telefono), p.LocalidadID, p.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "parada", Msg: "nombre o localidad ya usados", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "parada"}
	}
	return nil
}

func (r GeografiaRepository) DeleteParada(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM paradas WHERE id_parada = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "parada"}
	}
	return nil
}
