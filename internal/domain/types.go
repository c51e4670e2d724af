package domain

// ID is used across domain entities.
type ID int64

// Roles reconocidos por el panel. Deciden a qué shell entra el usuario
// después del login.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
	RolCliente  = "cliente"
)

// Credencial viaja con cada request autenticado. Se arma en el
// middleware a partir del token y se inyecta explícitamente; ningún
// handler lee estado global de sesión.
type Credencial struct {
	UsuarioID ID     `json:"usuarioId"`
	Rol       string `json:"rol"`
}
