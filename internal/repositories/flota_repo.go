package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/seatmap"
)

// FlotaRepository maneja buses y sus asientos persistidos.
type FlotaRepository struct {
	DB *sql.DB
}

const busSelect = `
	SELECT b.id_bus, b.placa, COALESCE(b.marca,''), COALESCE(b.modelo,''),
	       b.capacidad, b.tipo, b.estado, b.empresa, e.nombre
	FROM buses b
	JOIN empresas e ON e.id_empresa = b.empresa`

func (r FlotaRepository) List(ctx context.Context) ([]models.Bus, error) {
	rows, err := r.DB.QueryContext(ctx, busSelect+` ORDER BY b.placa`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.Placa, &b.Marca, &b.Modelo,
			&b.Capacidad, &b.Tipo, &b.Estado, &b.EmpresaID, &b.EmpresaNombre); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r FlotaRepository) GetByID(ctx context.Context, id int64) (models.Bus, error) {
	var b models.Bus
	err := r.DB.QueryRowContext(ctx, busSelect+` WHERE b.id_bus = ?`, id).
		Scan(&b.ID, &b.Placa, &b.Marca, &b.Modelo,
			&b.Capacidad, &b.Tipo, &b.Estado, &b.EmpresaID, &b.EmpresaNombre)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Recurso: "bus", Err: err}
	}
	return b, err
}

// Create inserta el bus y siembra sus asientos derivados del layout en
// la misma transacción, para que la grilla quede consistente con la
// capacidad declarada desde el primer momento.
func (r FlotaRepository) Create(ctx context.Context, b models.Bus) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO buses (placa, marca, modelo, capacidad, tipo, estado, empresa)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.Placa, nullIfEmpty(b.Marca), nullIfEmpty(b.Modelo), b.Capacidad, b.Tipo, b.Estado, b.EmpresaID)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "bus", Msg: "placa ya registrada", Err: err}
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := r.sembrarAsientosTx(ctx, tx, id, b); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// Update actualiza el bus. Si cambia capacidad o tipo, los asientos se
// regeneran; los pasajes emitidos referencian número+viaje, no la fila
// de asiento, así que la regeneración no los toca.
func (r FlotaRepository) Update(ctx context.Context, b models.Bus) error {
	prev, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE buses
		SET placa = ?, marca = ?, modelo = ?, capacidad = ?, tipo = ?, estado = ?, empresa = ?
		WHERE id_bus = ?`,
		b.Placa, nullIfEmpty(b.Marca), nullIfEmpty(b.Modelo), b.Capacidad, b.Tipo, b.Estado, b.EmpresaID, b.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "bus", Msg: "placa ya registrada", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "bus"}
	}

	if prev.Capacidad != b.Capacidad || prev.Tipo != b.Tipo {
		if _, err := tx.ExecContext(ctx, `DELETE FROM asientos WHERE bus = ?`, b.ID); err != nil {
			return err
		}
		if err := r.sembrarAsientosTx(ctx, tx, b.ID, b); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r FlotaRepository) sembrarAsientosTx(ctx context.Context, tx *sql.Tx, busID int64, b models.Bus) error {
	layout, err := seatmap.Generar(seatmap.TipoBus(b.Tipo), b.Capacidad, 1)
	if err != nil {
		return domain.ValidationError{Campo: "tipo", Msg: err.Error(), Err: err}
	}
	for _, num := range layout.Numeros() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO asientos (bus, numero_asiento, piso) VALUES (?, ?, 1)`,
			busID, num); err != nil {
			return err
		}
	}
	return nil
}

func (r FlotaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM buses WHERE id_bus = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "bus"}
	}
	return nil
}

func (r FlotaRepository) ListAsientos(ctx context.Context, busID int64) ([]models.AsientoBus, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_asiento, bus, numero_asiento, piso, COALESCE(tipo_asiento,'')
		FROM asientos
		WHERE bus = ?
		ORDER BY numero_asiento`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.AsientoBus{}
	for rows.Next() {
		var a models.AsientoBus
		if err := rows.Scan(&a.ID, &a.BusID, &a.Numero, &a.Piso, &a.Tipo); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
