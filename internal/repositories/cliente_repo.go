package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/utils"
)

type ClienteRepository struct {
	DB *sql.DB
}

const clienteSelect = `
	SELECT id_cliente, ruc, COALESCE(dv,''), razon_social,
	       COALESCE(telefono,''), COALESCE(direccion,''),
	       DATE_FORMAT(fecha_registro, '%Y-%m-%d %H:%i:%s')
	FROM clientes`

func (r ClienteRepository) List(ctx context.Context, filtro string) ([]models.Cliente, error) {
	query := clienteSelect
	args := []any{}
	if filtro != "" {
		query += ` WHERE ruc LIKE ? OR razon_social LIKE ?`
		like := "%" + filtro + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY razon_social`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Cliente{}
	for rows.Next() {
		var c models.Cliente
		if err := rows.Scan(&c.ID, &c.RUC, &c.DV, &c.RazonSocial, &c.Telefono, &c.Direccion, &c.FechaRegistro); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r ClienteRepository) GetByID(ctx context.Context, id int64) (models.Cliente, error) {
	var c models.Cliente
	err := r.DB.QueryRowContext(ctx, clienteSelect+` WHERE id_cliente = ?`, id).
		Scan(&c.ID, &c.RUC, &c.DV, &c.RazonSocial, &c.Telefono, &c.Direccion, &c.FechaRegistro)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Recurso: "cliente", Err: err}
	}
	return c, err
}

// GetByRUC busca por RUC exacto, usado por la venta de pasajes para
// reutilizar clientes existentes.
func (r ClienteRepository) GetByRUC(ctx context.Context, ruc string) (models.Cliente, error) {
	var c models.Cliente
	err := r.DB.QueryRowContext(ctx, clienteSelect+` WHERE ruc = ?`, utils.NormalizeRUC(ruc)).
		Scan(&c.ID, &c.RUC, &c.DV, &c.RazonSocial, &c.Telefono, &c.Direccion, &c.FechaRegistro)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Recurso: "cliente", Err: err}
	}
	return c, err
}

func (r ClienteRepository) Create(ctx context.Context, c models.Cliente) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO clientes (ruc, dv, razon_social, telefono, direccion, fecha_registro)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		utils.NormalizeRUC(c.RUC), nullIfEmpty(c.DV), c.RazonSocial,
		nullIfEmpty(c.Telefono), nullIfEmpty(c.Direccion))
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "cliente", Msg: "ya existe un cliente con ese RUC", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r ClienteRepository) Update(ctx context.Context, c models.Cliente) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE clientes SET ruc = ?, dv = ?, razon_social = ?, telefono = ?, direccion = ?
		WHERE id_cliente = ?`,
		utils.NormalizeRUC(c.RUC), nullIfEmpty(c.DV), c.RazonSocial,
		nullIfEmpty(c.Telefono), nullIfEmpty(c.Direccion), c.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "cliente", Msg: "ya existe un cliente con ese RUC", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "cliente"}
	}
	return nil
}

func (r ClienteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM clientes WHERE id_cliente = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "cliente"}
	}
	return nil
}
