package dto

// CrearUsuarioRequest alta de una cuenta de operador.
type CrearUsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CambiarPasswordRequest nueva contraseña para una cuenta.
type CambiarPasswordRequest struct {
	Password string `json:"password"`
}

// UsuarioResponse cuenta tal como la ve el administrador (sin hash).
type UsuarioResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}
