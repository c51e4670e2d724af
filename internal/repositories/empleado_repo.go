package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

type EmpleadoRepository struct {
	DB *sql.DB
}

const empleadoSelect = `
	SELECT e.id_empleado, e.usuario, e.empresa, e.cargo,
	       DATE_FORMAT(e.fecha_contratacion, '%Y-%m-%d'), u.username
	FROM empleados e
	JOIN usuarios u ON u.id_usuario = e.usuario`

func (r EmpleadoRepository) List(ctx context.Context, empresaID int64) ([]models.Empleado, error) {
	query := empleadoSelect
	args := []any{}
	if empresaID > 0 {
		query += ` WHERE e.empresa = ?`
		args = append(args, empresaID)
	}
	query += ` ORDER BY u.username`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Empleado{}
	for rows.Next() {
		var e models.Empleado
		if err := rows.Scan(&e.ID, &e.UsuarioID, &e.EmpresaID, &e.Cargo, &e.FechaContratacion, &e.Nombre); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r EmpleadoRepository) GetByID(ctx context.Context, id int64) (models.Empleado, error) {
	var e models.Empleado
	err := r.DB.QueryRowContext(ctx, empleadoSelect+` WHERE e.id_empleado = ?`, id).
		Scan(&e.ID, &e.UsuarioID, &e.EmpresaID, &e.Cargo, &e.FechaContratacion, &e.Nombre)
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Recurso: "empleado", Err: err}
	}
	return e, err
}

func (r EmpleadoRepository) Create(ctx context.Context, e models.Empleado) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO empleados (usuario, empresa, cargo, fecha_contratacion)
		VALUES (?, ?, ?, ?)`,
		e.UsuarioID, e.EmpresaID, e.Cargo, e.FechaContratacion)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "empleado", Msg: "el usuario ya está registrado como empleado", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r EmpleadoRepository) Update(ctx context.Context, e models.Empleado) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE empleados SET usuario = ?, empresa = ?, cargo = ?, fecha_contratacion = ?
		WHERE id_empleado = ?`,
		e.UsuarioID, e.EmpresaID, e.Cargo, e.FechaContratacion, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "empleado"}
	}
	return nil
}

func (r EmpleadoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM empleados WHERE id_empleado = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "empleado"}
	}
	return nil
}
