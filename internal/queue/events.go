package queue

// Nombres de cola. La routing key es el nombre de la cola (exchange
// por defecto).
const (
	ColaPasajeEmitido        = "pasaje.emitido"
	ColaEncomiendaRegistrada = "encomienda.registrada"
)

// PasajeEmitidoEvent se publica al emitir un pasaje, para los
// consumidores de reportes y notificaciones.
type PasajeEmitidoEvent struct {
	PasajeID      int64  `json:"id_pasaje"`
	ViajeID       int64  `json:"viaje"`
	ClienteID     int64  `json:"cliente"`
	AsientoNumero int    `json:"numero_asiento"`
	Piso          int    `json:"piso"`
	Precio        int64  `json:"precio"`
	Emitido       string `json:"fecha_emision"`
}

// EncomiendaRegistradaEvent se publica al registrar una encomienda.
type EncomiendaRegistradaEvent struct {
	EncomiendaID int64  `json:"id_encomienda"`
	ViajeID      int64  `json:"viaje"`
	OrigenID     int64  `json:"origen"`
	DestinoID    int64  `json:"destino"`
	TipoEnvio    string `json:"tipo_envio"`
	Flete        int64  `json:"flete"`
	Creado       string `json:"fecha_creacion"`
}
