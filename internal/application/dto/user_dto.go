package dto

// LoginRequest credenciales para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticación.
type LoginResponse struct {
	Token string `json:"token"`
	Rol   string `json:"rol"`
}

// RegisterUserRequest body para crear una cuenta de acceso (solo admin).
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// UserResponse cuenta de acceso en respuestas (sin hash).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}
