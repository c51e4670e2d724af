package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
)

func filaViaje(id, horario, bus int64, placa string, activo bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_viaje", "horario", "bus", "placa", "fecha", "activo",
		"observaciones", "ruta", "nombre", "hora_salida",
	}).AddRow(id, horario, bus, placa, "2026-09-01", activo, "", 1, "Asunción - Encarnación", "08:00")
}

func filaBus(id int64, placa string, capacidad int, tipo string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_bus", "placa", "marca", "modelo", "capacidad",
		"tipo", "estado", "empresa", "nombre",
	}).AddRow(id, placa, "Scania", "K410", capacidad, tipo, models.BusActivo, 1, "La Encarnacena")
}

func asientosConMock(t *testing.T) (AsientosService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AsientosService{
		ViajeRepo: repositories.ViajeRepository{DB: db},
		FlotaRepo: repositories.FlotaRepository{DB: db},
	}
	return svc, mock, db
}

func TestRetenerAsientoInexistente(t *testing.T) {
	svc, mock, db := asientosConMock(t)
	defer db.Close()

	mock.ExpectQuery("FROM viajes v").WithArgs(int64(10)).
		WillReturnRows(filaViaje(10, 3, 7, "ABC123", true))
	mock.ExpectQuery("FROM buses b").WithArgs(int64(7)).
		WillReturnRows(filaBus(7, "ABC123", 48, "2-2"))
	mock.ExpectQuery("SELECT asiento_numero FROM pasajes").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"asiento_numero"}))

	err := svc.Retener(context.Background(), 10, 999, 5)
	if !domain.IsValidation(err) {
		t.Fatalf("se esperaba error de validación, llegó %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestValidarAsientoPisoDos(t *testing.T) {
	svc, mock, db := asientosConMock(t)
	defer db.Close()

	// los números del piso 2 arrancan en 100 y son válidos aunque la
	// tabla asientos solo siembre el piso 1
	mock.ExpectQuery("FROM buses b").WithArgs(int64(7)).
		WillReturnRows(filaBus(7, "ABC123", 48, "2-2"))
	if err := svc.ValidarAsiento(context.Background(), 7, 101); err != nil {
		t.Fatalf("asiento 101 debe existir en el piso 2: %v", err)
	}

	mock.ExpectQuery("FROM buses b").WithArgs(int64(7)).
		WillReturnRows(filaBus(7, "ABC123", 48, "2-2"))
	if err := svc.ValidarAsiento(context.Background(), 7, 148); !domain.IsValidation(err) {
		t.Fatalf("asiento 148 no existe, se esperaba error de validación, llegó %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmitirAsientoInexistente(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := PasajesService{
		PasajeRepo:  repositories.PasajeRepository{DB: db},
		ViajeRepo:   repositories.ViajeRepository{DB: db},
		ClienteRepo: repositories.ClienteRepository{DB: db},
		Asientos: AsientosService{
			ViajeRepo: repositories.ViajeRepository{DB: db},
			FlotaRepo: repositories.FlotaRepository{DB: db},
		},
	}

	mock.ExpectQuery("FROM clientes").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_cliente", "ruc", "dv", "razon_social", "telefono", "direccion", "fecha_registro",
		}).AddRow(3, "4555666", "1", "Juan Benítez", "", "", "2026-01-15 10:00:00"))
	mock.ExpectQuery("FROM viajes v").WithArgs(int64(10)).
		WillReturnRows(filaViaje(10, 3, 7, "ABC123", true))
	mock.ExpectQuery("FROM buses b").WithArgs(int64(7)).
		WillReturnRows(filaBus(7, "ABC123", 48, "2-2"))

	// sin INSERT: la venta se rechaza antes de tocar pasajes
	_, err = svc.Emitir(context.Background(), models.Pasaje{
		ClienteID:     3,
		ViajeID:       10,
		AsientoNumero: 999,
		Piso:          1,
		Precio:        80000,
	}, 5)
	if !domain.IsValidation(err) {
		t.Fatalf("se esperaba error de validación, llegó %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
