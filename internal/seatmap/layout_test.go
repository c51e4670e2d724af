package seatmap

import "testing"

func TestGenerarDimensiones(t *testing.T) {
	cases := []struct {
		tipo      TipoBus
		capacidad int
		filas     int
		porFila   int
	}{
		{Tipo22, 48, 12, 4},
		{Tipo22, 10, 3, 4},
		{Tipo22, 1, 1, 4},
		{Tipo21, 45, 15, 3},
		{Tipo21, 10, 4, 3},
		{Tipo21, 1, 1, 3},
	}

	for _, tc := range cases {
		layout, err := Generar(tc.tipo, tc.capacidad, 1)
		if err != nil {
			t.Fatalf("Generar(%s,%d) error: %v", tc.tipo, tc.capacidad, err)
		}
		if len(layout) != tc.filas {
			t.Fatalf("tipo=%s cap=%d: filas=%d, se esperaba %d", tc.tipo, tc.capacidad, len(layout), tc.filas)
		}
		for i, fila := range layout {
			asientos := 0
			for _, a := range fila {
				if a != nil {
					asientos++
				}
			}
			if asientos != tc.porFila {
				t.Fatalf("tipo=%s fila=%d: %d asientos, se esperaba %d", tc.tipo, i, asientos, tc.porFila)
			}
			// fixed slot count per row: seats plus one aisle
			if len(fila) != tc.porFila+1 {
				t.Fatalf("tipo=%s fila=%d: %d slots, se esperaba %d", tc.tipo, i, len(fila), tc.porFila+1)
			}
		}
	}
}

func TestGenerarRangosPorPiso(t *testing.T) {
	piso1, err := Generar(Tipo22, 48, 1)
	if err != nil {
		t.Fatalf("piso 1: %v", err)
	}
	for _, n := range piso1.Numeros() {
		if n < 1 || n > 99 {
			t.Fatalf("piso 1 emitió numero %d fuera de [1,99]", n)
		}
	}

	piso2, err := Generar(Tipo22, 48, 2)
	if err != nil {
		t.Fatalf("piso 2: %v", err)
	}
	for _, n := range piso2.Numeros() {
		if n < 100 {
			t.Fatalf("piso 2 emitió numero %d menor a 100", n)
		}
	}
}

func TestGenerarNumeracionCreciente(t *testing.T) {
	layout, err := Generar(Tipo21, 33, 1)
	if err != nil {
		t.Fatal(err)
	}
	nums := layout.Numeros()
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[i-1]+1 {
			t.Fatalf("numeración no contigua en posición %d: %v", i, nums)
		}
	}
}

// Capacidad 10 con tipo 2-2 produce una última fila con números 11 y 12
// por encima de la capacidad declarada. Comportamiento observado de las
// pantallas de flota; se conserva tal cual.
func TestGenerarCapacidadNoDivisible(t *testing.T) {
	layout, err := Generar(Tipo22, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(layout) != 3 {
		t.Fatalf("filas=%d, se esperaba 3", len(layout))
	}

	want := [][]int{
		{1, 2, 0, 3, 4},
		{5, 6, 0, 7, 8},
		{9, 10, 0, 11, 12},
	}
	for i, fila := range layout {
		for j, a := range fila {
			if want[i][j] == 0 {
				if a != nil {
					t.Fatalf("fila %d slot %d: se esperaba pasillo, hay asiento %d", i, j, a.Numero)
				}
				continue
			}
			if a == nil {
				t.Fatalf("fila %d slot %d: se esperaba asiento %d, hay pasillo", i, j, want[i][j])
			}
			if a.Numero != want[i][j] {
				t.Fatalf("fila %d slot %d: numero=%d, se esperaba %d", i, j, a.Numero, want[i][j])
			}
			if a.Piso != 1 {
				t.Fatalf("fila %d slot %d: piso=%d", i, j, a.Piso)
			}
		}
	}
}

func TestGenerarRechazaEntradasInvalidas(t *testing.T) {
	if _, err := Generar("3-3", 40, 1); err == nil {
		t.Fatal("tipo desconocido aceptado")
	}
	if _, err := Generar(Tipo22, 0, 1); err == nil {
		t.Fatal("capacidad cero aceptada")
	}
	if _, err := Generar(Tipo22, 40, 3); err == nil {
		t.Fatal("piso 3 aceptado")
	}
}

func TestExisteNumero(t *testing.T) {
	cases := []struct {
		numero int
		existe bool
	}{
		{1, true},
		{48, true},
		{100, true},
		{147, true},
		{0, false},
		{49, false},  // piso 1 termina en 48
		{99, false},  // hueco entre pisos
		{148, false}, // piso 2 termina en 147
		{999, false},
	}
	for _, tc := range cases {
		if got := ExisteNumero(Tipo22, 48, tc.numero); got != tc.existe {
			t.Fatalf("ExisteNumero(2-2,48,%d)=%v, se esperaba %v", tc.numero, got, tc.existe)
		}
	}

	// los asientos de relleno de la última fila son reales
	if !ExisteNumero(Tipo22, 10, 12) {
		t.Fatal("el asiento 12 de un bus de capacidad 10 debe existir")
	}
	if ExisteNumero(Tipo22, 10, 13) {
		t.Fatal("el asiento 13 de un bus de capacidad 10 no debe existir")
	}
}

func TestNumerosBusCubreAmbosPisos(t *testing.T) {
	nums := NumerosBus(Tipo21, 45)
	if len(nums) != 90 {
		t.Fatalf("NumerosBus(2-1,45): %d numeros, se esperaban 90", len(nums))
	}
	if nums[0] != 1 {
		t.Fatalf("primer numero %d, se esperaba 1", nums[0])
	}
	if nums[45] != 100 {
		t.Fatalf("el piso 2 debe arrancar en 100, arranca en %d", nums[45])
	}
	if len(NumerosBus("3-3", 45)) != 0 {
		t.Fatal("tipo desconocido debe devolver lista vacía")
	}
}
