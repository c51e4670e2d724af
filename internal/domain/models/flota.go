package models

// Estados de bus según la pantalla de flota.
const (
	BusActivo        = "Activo"
	BusMantenimiento = "Mantenimiento"
	BusInactivo      = "Inactivo"
)

type Bus struct {
	ID            int64  `json:"id_bus"`
	Placa         string `json:"placa"`
	Marca         string `json:"marca,omitempty"`
	Modelo        string `json:"modelo,omitempty"`
	Capacidad     int    `json:"capacidad"`
	Tipo          string `json:"tipo"` // "2-2" | "2-1"
	Estado        string `json:"estado"`
	EmpresaID     int64  `json:"empresa"`
	EmpresaNombre string `json:"empresa_nombre,omitempty"`
}

// AsientoBus es la fila persistida por bus; el estado de ocupación por
// viaje se deriva de los pasajes, no de esta tabla.
type AsientoBus struct {
	ID     int64  `json:"id_asiento"`
	BusID  int64  `json:"bus"`
	Numero int    `json:"numero_asiento"`
	Piso   int    `json:"piso"`
	Tipo   string `json:"tipo_asiento,omitempty"` // Semi-cama | Cama
}
