package seatmap

import "testing"

func TestMapaEstados(t *testing.T) {
	m, err := NuevoMapa(Tipo22, 48, []int{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Seleccionar(5) {
		t.Fatal("no se pudo seleccionar asiento libre")
	}

	if got := m.Estado(3); got != Ocupado {
		t.Fatalf("asiento 3: estado=%s, se esperaba ocupado", got)
	}
	if got := m.Estado(5); got != Seleccionado {
		t.Fatalf("asiento 5: estado=%s, se esperaba seleccionado", got)
	}
	if got := m.Estado(6); got != Disponible {
		t.Fatalf("asiento 6: estado=%s, se esperaba disponible", got)
	}
}

func TestMapaAsientoOcupadoNoSeleccionable(t *testing.T) {
	m, err := NuevoMapa(Tipo22, 48, []int{7})
	if err != nil {
		t.Fatal(err)
	}
	m.Seleccionar(1)

	if m.Seleccionar(7) {
		t.Fatal("asiento ocupado aceptado como selección")
	}
	if m.Seleccion() != 1 {
		t.Fatalf("selección cambió a %d tras click en ocupado", m.Seleccion())
	}
	// repetido: sigue sin efecto
	if m.Seleccionar(7) {
		t.Fatal("segundo click en ocupado aceptado")
	}
}

func TestMapaSeleccionUnica(t *testing.T) {
	m, err := NuevoMapa(Tipo22, 48, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !m.Seleccionar(2) {
		t.Fatal("primera selección rechazada")
	}
	if !m.Seleccionar(9) {
		t.Fatal("reemplazo de selección rechazado")
	}
	if m.Seleccion() != 9 {
		t.Fatalf("selección=%d, se esperaba 9", m.Seleccion())
	}
	// re-click sobre la selección actual no cambia nada
	if m.Seleccionar(9) {
		t.Fatal("re-selección del mismo asiento reportó cambio")
	}

	m.LimpiarSeleccion()
	if m.Seleccion() != 0 {
		t.Fatalf("selección=%d tras limpiar", m.Seleccion())
	}
}

func TestMapaCambiarPiso(t *testing.T) {
	m, err := NuevoMapa(Tipo22, 48, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Piso() != 1 {
		t.Fatalf("piso inicial=%d", m.Piso())
	}

	if err := m.CambiarPiso(2); err != nil {
		t.Fatal(err)
	}
	for _, n := range m.Layout().Numeros() {
		if n < 100 {
			t.Fatalf("piso 2 con numero %d", n)
		}
	}
	// misma capacidad en ambos pisos (simplificación heredada)
	if len(m.Layout()) != 12 {
		t.Fatalf("piso 2 con %d filas, se esperaba 12", len(m.Layout()))
	}

	if err := m.CambiarPiso(5); err == nil {
		t.Fatal("piso invalido aceptado")
	}
}

func TestMapaDefaults(t *testing.T) {
	m, err := NuevoMapa("", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Tipo != Tipo22 || m.Capacidad != 48 {
		t.Fatalf("defaults tipo=%s capacidad=%d", m.Tipo, m.Capacidad)
	}
}
