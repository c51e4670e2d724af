package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"tr4cking/internal/repositories"
)

func viajesRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	h := ViajesHandler{Repo: repositories.ViajeRepository{DB: db}}
	r := gin.New()
	r.POST("/horarios", h.CreateHorario)
	r.POST("/viajes", h.Create)
	return r, mock
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHorarioHoraInvalida(t *testing.T) {
	r, mock := viajesRouter(t)

	w := postJSON(r, "/horarios", `{"ruta":1,"hora_salida":"25:99","dias_semana":"1111100","activo":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, se esperaba 400", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no debía tocar la base: %v", err)
	}
}

func TestCreateHorarioMascaraInvalida(t *testing.T) {
	r, mock := viajesRouter(t)

	for _, mascara := range []string{"111", "1234567", "11111001"} {
		w := postJSON(r, "/horarios", `{"ruta":1,"hora_salida":"08:00","dias_semana":"`+mascara+`","activo":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("mascara %q: status %d, se esperaba 400", mascara, w.Code)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no debía tocar la base: %v", err)
	}
}

func TestCreateViajeFechaFueraDeHorario(t *testing.T) {
	r, mock := viajesRouter(t)

	// horario lunes a viernes; el 2026-09-06 es domingo
	mock.ExpectQuery("FROM horarios WHERE id_horario").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_horario", "ruta", "hora_salida", "dias_semana", "activo",
		}).AddRow(3, 1, "08:00", "1111100", true))

	w := postJSON(r, "/viajes", `{"horario":3,"bus":7,"fecha":"2026-09-06","activo":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, se esperaba 400", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
