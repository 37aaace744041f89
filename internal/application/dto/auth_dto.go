package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login válido.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}
