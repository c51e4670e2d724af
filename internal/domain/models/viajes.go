package models

type Ruta struct {
	ID            int64   `json:"id_ruta"`
	Nombre        string  `json:"nombre"`
	DuracionTotal float64 `json:"duracion_total"`
	DistanciaKm   float64 `json:"distancia_km"`
	PrecioBase    int64   `json:"precio_base"`
	Activo        bool    `json:"activo"`
	Actualizado   string  `json:"fecha_actualizacion,omitempty"`
}

// Horario es una salida recurrente de una ruta. DiasSemana es una
// máscara de 7 caracteres lunes-domingo, p.ej. "1111100".
type Horario struct {
	ID         int64  `json:"id_horario"`
	RutaID     int64  `json:"ruta"`
	HoraSalida string `json:"hora_salida"` // HH:MM
	DiasSemana string `json:"dias_semana"`
	Activo     bool   `json:"activo"`
}

// Viaje es una instancia programada: un bus asignado a un horario en
// una fecha concreta.
type Viaje struct {
	ID            int64  `json:"id_viaje"`
	HorarioID     int64  `json:"horario"`
	BusID         int64  `json:"bus"`
	BusPlaca      string `json:"bus_placa,omitempty"`
	Fecha         string `json:"fecha"` // YYYY-MM-DD
	Activo        bool   `json:"activo"`
	Observaciones string `json:"observaciones,omitempty"`

	RutaID     int64  `json:"ruta,omitempty"`
	RutaNombre string `json:"ruta_nombre,omitempty"`
	HoraSalida string `json:"hora_salida,omitempty"`
}
