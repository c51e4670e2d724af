package models

// Empresa es la compañía de transporte dueña de buses y paradas.
type Empresa struct {
	ID             int64  `json:"id_empresa"`
	Nombre         string `json:"nombre"`
	RUC            string `json:"ruc"`
	Telefono       string `json:"telefono,omitempty"`
	Email          string `json:"email,omitempty"`
	DireccionLegal string `json:"direccion_legal,omitempty"`
}

type Localidad struct {
	ID          int64    `json:"id_localidad"`
	Nombre      string   `json:"nombre"`
	Coordenadas *float64 `json:"coordenadas,omitempty"`
}

// TipoParada: A = agencia, P = parada de bus, T = terminal.
type Parada struct {
	ID              int64  `json:"id_parada"`
	EmpresaID       int64  `json:"empresa"`
	Tipo            string `json:"tipo_parada"`
	Nombre          string `json:"nombre"`
	Direccion       string `json:"direccion,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	LocalidadID     int64  `json:"localidad"`
	LocalidadNombre string `json:"localidad_nombre,omitempty"`
}
