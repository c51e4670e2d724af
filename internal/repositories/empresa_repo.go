package repositories

import (
	"context"
	"database/sql"
	"errors"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// EmpresaRepository wraps DB access for the empresas table.
type EmpresaRepository struct {
	DB *sql.DB
}

// mysqlDuplicate reports the 1062 duplicate-key error.
func mysqlDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func (r EmpresaRepository) List(ctx context.Context) ([]models.Empresa, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_empresa, nombre, ruc,
		       COALESCE(telefono,''), COALESCE(email,''), COALESCE(direccion_legal,'')
		FROM empresas
		ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Empresa{}
	for rows.Next() {
		var e models.Empresa
		if err := rows.Scan(&e.ID, &e.Nombre, &e.RUC, &e.Telefono, &e.Email, &e.DireccionLegal); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r EmpresaRepository) GetByID(ctx context.Context, id int64) (models.Empresa, error) {
	var e models.Empresa
	err := r.DB.QueryRowContext(ctx, `
		SELECT id_empresa, nombre, ruc,
		       COALESCE(telefono,''), COALESCE(email,''), COALESCE(direccion_legal,'')
		FROM empresas
		WHERE id_empresa = ?`, id).
		Scan(&e.ID, &e.Nombre, &e.RUC, &e.Telefono, &e.Email, &e.DireccionLegal)
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Recurso: "empresa", Err: err}
	}
	return e, err
}

func (r EmpresaRepository) Create(ctx context.Context, e models.Empresa) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO empresas (nombre, ruc, telefono, email, direccion_legal)
		VALUES (?, ?, ?, ?, ?)`,
		e.Nombre, e.RUC, nullIfEmpty(e.Telefono), nullIfEmpty(e.Email), nullIfEmpty(e.DireccionLegal))
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "empresa", Msg: "nombre o RUC ya registrado", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r EmpresaRepository) Update(ctx context.Context, e models.Empresa) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE empresas
		SET nombre = ?, ruc = ?, telefono = ?, email = ?, direccion_legal = ?
		WHERE id_empresa = ?`,
		e.Nombre, e.RUC, nullIfEmpty(e.Telefono), nullIfEmpty(e.Email), nullIfEmpty(e.DireccionLegal), e.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "empresa", Msg: "nombre o RUC ya registrado", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "empresa"}
	}
	return nil
}

func (r EmpresaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM empresas WHERE id_empresa = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "empresa"}
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
