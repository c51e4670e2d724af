package models

type Cliente struct {
	ID            int64  `json:"id_cliente"`
	RUC           string `json:"ruc"`
	DV            string `json:"dv,omitempty"`
	RazonSocial   string `json:"razon_social"`
	Telefono      string `json:"telefono,omitempty"`
	Direccion     string `json:"direccion,omitempty"`
	FechaRegistro string `json:"fecha_registro,omitempty"`
}

type Empleado struct {
	ID                int64  `json:"id_empleado"`
	UsuarioID         int64  `json:"usuario"`
	EmpresaID         int64  `json:"empresa"`
	Cargo             string `json:"cargo"`
	FechaContratacion string `json:"fecha_contratacion"` // YYYY-MM-DD
	Nombre            string `json:"nombre,omitempty"`
}

type Usuario struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}
