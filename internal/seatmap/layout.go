package seatmap

import "fmt"

// TipoBus identifica la distribución fija de asientos por fila.
type TipoBus string

const (
	// Tipo22 renders 4 seats per row: two, aisle, two.
	Tipo22 TipoBus = "2-2"
	// Tipo21 renders 3 seats per row: two, aisle, one.
	Tipo21 TipoBus = "2-1"
)

// pisoOffset separates second-floor numbering so the two floors never
// collide (valid for up to 99 seats per floor).
const pisoOffset = 100

// Asiento is one seat slot inside a generated layout.
type Asiento struct {
	Numero int `json:"numero"`
	Piso   int `json:"piso"`
}

// Fila is a fixed-width row; nil marks the aisle gap.
type Fila []*Asiento

// Layout is the full grid for one floor, top to bottom.
type Layout []Fila

// AsientosPorFila returns the seat count per row for the given type,
// or 0 when the type is unknown.
func AsientosPorFila(tipo TipoBus) int {
	switch tipo {
	case Tipo22:
		return 4
	case Tipo21:
		return 3
	}
	return 0
}

// Generar construye la grilla de asientos para un piso.
//
// Rows = ceil(capacidad / asientosPorFila). Numbering starts at 100 on
// floor 2 and at 1 otherwise, and increments on every non-aisle slot
// even past capacidad: a short final row still carries real numbers
// beyond the stated capacity. That slack is the observed behavior of
// the fleet configuration screens and is kept as-is; do not truncate.
func Generar(tipo TipoBus, capacidad, piso int) (Layout, error) {
	porFila := AsientosPorFila(tipo)
	if porFila == 0 {
		return nil, fmt.Errorf("tipo de bus desconocido: %q", tipo)
	}
	if capacidad <= 0 {
		return nil, fmt.Errorf("capacidad invalida: %d", capacidad)
	}
	if piso != 1 && piso != 2 {
		return nil, fmt.Errorf("piso invalido: %d", piso)
	}

	num := 1
	if piso == 2 {
		num = pisoOffset
	}

	filas := (capacidad + porFila - 1) / porFila
	layout := make(Layout, 0, filas)

	for i := 0; i < filas; i++ {
		fila := make(Fila, 0, porFila+1)
		switch tipo {
		case Tipo22:
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
			fila = append(fila, nil) // pasillo
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
		case Tipo21:
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
			fila = append(fila, nil) // pasillo
			fila = append(fila, &Asiento{Numero: num, Piso: piso})
			num++
		}
		layout = append(layout, fila)
	}

	return layout, nil
}

// NumerosBus lists every seat number a bus of the given type and
// capacity can carry, floor 1 first, then floor 2.
func NumerosBus(tipo TipoBus, capacidad int) []int {
	out := []int{}
	for piso := 1; piso <= 2; piso++ {
		layout, err := Generar(tipo, capacidad, piso)
		if err != nil {
			return out
		}
		out = append(out, layout.Numeros()...)
	}
	return out
}

// ExisteNumero reports whether numero is a real seat of the bus, on
// either floor. Slack seats past the stated capacity count as real.
func ExisteNumero(tipo TipoBus, capacidad, numero int) bool {
	for _, n := range NumerosBus(tipo, capacidad) {
		if n == numero {
			return true
		}
	}
	return false
}

// Numeros lists every seat number in the layout, left to right, top to
// bottom.
func (l Layout) Numeros() []int {
	out := []int{}
	for _, fila := range l {
		for _, a := range fila {
			if a != nil {
				out = append(out, a.Numero)
			}
		}
	}
	return out
}
