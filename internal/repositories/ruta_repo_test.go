package repositories

import (
	"context"
	"testing"

	"tr4cking/internal/domain"
	"tr4cking/internal/rutas"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAplicarDiffOrdenDeOperaciones(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	diff := rutas.Diff{
		Eliminar: []int64{7},
		Actualizar: []rutas.Detalle{
			{ID: 3, RutaID: 1, ParadaID: 12, Orden: 1},
			{ID: 5, RutaID: 1, ParadaID: 20, Orden: 2},
		},
		Crear: []rutas.Detalle{
			{RutaID: 1, ParadaID: 31, Orden: 3},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM detalle_rutas").WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// pase por orden negativo antes del orden final
	mock.ExpectExec("UPDATE detalle_rutas SET orden").WithArgs(-1, int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE detalle_rutas SET orden").WithArgs(-2, int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE detalle_rutas SET orden").WithArgs(1, int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE detalle_rutas SET orden").WithArgs(2, int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO detalle_rutas").WithArgs(int64(1), int64(31), 3).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("SELECT id_detalle, ruta, parada, orden").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id_detalle", "ruta", "parada", "orden"}).
			AddRow(3, 1, 12, 1).
			AddRow(5, 1, 20, 2).
			AddRow(9, 1, 31, 3))
	mock.ExpectCommit()

	repo := RutaRepository{DB: db}
	result, err := repo.AplicarDiff(context.Background(), 1, diff)
	if err != nil {
		t.Fatalf("AplicarDiff error: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 detalles, got %d", len(result))
	}
	for i, det := range result {
		if det.Orden != i+1 {
			t.Fatalf("orden at %d should be %d, got %d", i, i+1, det.Orden)
		}
	}
	if result[2].ID != 9 {
		t.Fatalf("inserted detalle should carry its new id, got %d", result[2].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAplicarDiffRollbackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	diff := rutas.Diff{Eliminar: []int64{4}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM detalle_rutas").WithArgs(int64(4), int64(1)).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	repo := RutaRepository{DB: db}
	if _, err := repo.AplicarDiff(context.Background(), 1, diff); err == nil {
		t.Fatalf("expected error from failed delete")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListDetallesOrdenado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id_detalle, ruta, parada, orden").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id_detalle", "ruta", "parada", "orden"}).
			AddRow(1, 2, 10, 1).
			AddRow(2, 2, 11, 2))

	repo := RutaRepository{DB: db}
	detalles, err := repo.ListDetalles(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListDetalles error: %v", err)
	}
	if len(detalles) != 2 || detalles[0].ParadaID != 10 || detalles[1].Orden != 2 {
		t.Fatalf("unexpected detalles: %+v", detalles)
	}
}

func TestGetRutaNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id_ruta").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id_ruta", "nombre", "duracion_total", "distancia_km", "precio_base", "activo", "fecha"}))

	repo := RutaRepository{DB: db}
	if _, err := repo.GetByID(context.Background(), 99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
