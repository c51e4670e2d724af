package repositories

import (
	"context"
	"testing"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCrearPasajeAsientoLibre(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pasajes").WithArgs(int64(10), 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO pasajes").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	repo := PasajeRepository{DB: db}
	id, err := repo.Create(context.Background(), models.Pasaje{
		ClienteID:     3,
		ViajeID:       10,
		AsientoNumero: 5,
		Piso:          1,
		Precio:        80000,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCrearPasajeAsientoOcupado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pasajes").WithArgs(int64(10), 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	repo := PasajeRepository{DB: db}
	_, err = repo.Create(context.Background(), models.Pasaje{
		ClienteID:     3,
		ViajeID:       10,
		AsientoNumero: 5,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAnularPasajeInexistente(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE pasajes SET estado").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PasajeRepository{DB: db}
	if err := repo.Anular(context.Background(), 99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
