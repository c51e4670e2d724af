package seatmap

// Estado describes how a seat is presented to the operator.
type Estado string

const (
	Disponible   Estado = "disponible"
	Ocupado      Estado = "ocupado"
	Seleccionado Estado = "seleccionado"
)

// Mapa combines a generated layout with occupancy coming from sold
// tickets and a transient single selection. Occupancy wins over
// selection: an occupied seat can never become the selection.
//
// The selection policy is single-select: picking a free seat replaces
// whatever was selected before. The multi-select variant that existed
// in older booking screens was dropped on purpose.
type Mapa struct {
	Tipo      TipoBus
	Capacidad int

	piso        int
	layout      Layout
	ocupados    map[int]bool
	seleccion   int // 0 = sin selección
	haSeleccion bool
}

// NuevoMapa builds a seat map for floor 1. Defaults mirror the fleet
// screens: tipo "2-2", 48 seats.
func NuevoMapa(tipo TipoBus, capacidad int, ocupados []int) (*Mapa, error) {
	if tipo == "" {
		tipo = Tipo22
	}
	if capacidad <= 0 {
		capacidad = 48
	}
	m := &Mapa{
		Tipo:      tipo,
		Capacidad: capacidad,
		ocupados:  make(map[int]bool, len(ocupados)),
	}
	for _, n := range ocupados {
		m.ocupados[n] = true
	}
	if err := m.CambiarPiso(1); err != nil {
		return nil, err
	}
	return m, nil
}

// CambiarPiso regenerates the grid for the requested floor. Each floor
// is generated with the full bus capacity rather than a per-floor
// split; the reservation screens always worked that way and seat
// numbering keeps the floors apart.
func (m *Mapa) CambiarPiso(piso int) error {
	layout, err := Generar(m.Tipo, m.Capacidad, piso)
	if err != nil {
		return err
	}
	m.piso = piso
	m.layout = layout
	return nil
}

// Piso returns the floor currently rendered.
func (m *Mapa) Piso() int { return m.piso }

// Layout returns the grid for the current floor.
func (m *Mapa) Layout() Layout { return m.layout }

// Estado reports how the given seat number should render.
func (m *Mapa) Estado(numero int) Estado {
	if m.ocupados[numero] {
		return Ocupado
	}
	if m.haSeleccion && m.seleccion == numero {
		return Seleccionado
	}
	return Disponible
}

// Seleccionar attempts to pick a seat. Occupied seats are rejected and
// leave the current selection untouched; the bool reports whether the
// selection changed.
func (m *Mapa) Seleccionar(numero int) bool {
	if m.ocupados[numero] {
		return false
	}
	if m.haSeleccion && m.seleccion == numero {
		return false
	}
	m.seleccion = numero
	m.haSeleccion = true
	return true
}

// Seleccion returns the selected seat number, or 0 when none.
func (m *Mapa) Seleccion() int {
	if !m.haSeleccion {
		return 0
	}
	return m.seleccion
}

// LimpiarSeleccion drops the transient selection.
func (m *Mapa) LimpiarSeleccion() {
	m.seleccion = 0
	m.haSeleccion = false
}
