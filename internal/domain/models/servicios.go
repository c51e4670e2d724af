package models

// Estados de un pasaje.
const (
	PasajeEmitido = "emitido"
	PasajeAnulado = "anulado"
)

// Pasaje es un boleto vendido: un asiento de un viaje asignado a un
// cliente.
type Pasaje struct {
	ID            int64  `json:"id_pasaje"`
	ClienteID     int64  `json:"cliente"`
	ViajeID       int64  `json:"viaje"`
	AsientoNumero int    `json:"numero_asiento"`
	Piso          int    `json:"piso"`
	Precio        int64  `json:"precio"`
	Estado        string `json:"estado"`
	Emitido       string `json:"fecha_emision,omitempty"`

	ClienteNombre string `json:"cliente_nombre,omitempty"`
	RutaNombre    string `json:"ruta_nombre,omitempty"`
	ViajeFecha    string `json:"viaje_fecha,omitempty"`
}

// Tipos de envío de encomienda.
const (
	EnvioSobre   = "sobre"
	EnvioPaquete = "paquete"
	EnvioAmbos   = "ambos"
)

// Encomienda es un envío de carga asociado a un viaje, distinto de un
// pasaje de pasajero.
type Encomienda struct {
	ID              int64  `json:"id_encomienda"`
	ViajeID         int64  `json:"viaje"`
	ClienteID       int64  `json:"cliente"`
	OrigenID        int64  `json:"origen"`
	DestinoID       int64  `json:"destino"`
	Flete           int64  `json:"flete"`
	Remitente       string `json:"remitente"`
	RucCI           string `json:"ruc_ci"`
	NumeroContacto  string `json:"numero_contacto"`
	TipoEnvio       string `json:"tipo_envio"`
	CantidadSobre   int    `json:"cantidad_sobre"`
	CantidadPaquete int    `json:"cantidad_paquete"`
	Descripcion     string `json:"descripcion,omitempty"`
	Creado          string `json:"fecha_creacion,omitempty"`

	OrigenNombre  string `json:"origen_nombre,omitempty"`
	DestinoNombre string `json:"destino_nombre,omitempty"`
	ClienteNombre string `json:"cliente_nombre,omitempty"`
}

// Factura agrupa pasajes y encomiendas facturadas a un cliente bajo un
// timbrado vigente.
type Factura struct {
	ID        int64  `json:"id_factura"`
	ClienteID int64  `json:"cliente"`
	Timbrado  string `json:"timbrado"`
	Numero    string `json:"numero"`
	Fecha     string `json:"fecha"`
	Total     int64  `json:"total"`
	Anulada   bool   `json:"anulada"`

	ClienteNombre string           `json:"cliente_nombre,omitempty"`
	ClienteRUC    string           `json:"cliente_ruc,omitempty"`
	Detalles      []DetalleFactura `json:"detalles,omitempty"`
}

type DetalleFactura struct {
	ID          int64  `json:"id_detalle"`
	FacturaID   int64  `json:"factura"`
	Descripcion string `json:"descripcion"`
	Cantidad    int    `json:"cantidad"`
	Monto       int64  `json:"monto"`
}
