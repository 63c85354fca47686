package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=4"`
}

type CrearUsuarioRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=2"`
	Password string  `json:"password" validate:"required,min=6"`
	Telefono *string `json:"telefono"`
	RolID    string  `json:"rol_id"   validate:"required,uuid"`
}

type CambiarEstadoUsuarioRequest struct {
	EstadoID string `json:"estado_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Usuario   UsuarioResponse `json:"usuario"`
}

type UsuarioResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono *string `json:"telefono,omitempty"`
	Rol      string  `json:"rol"`
	Estado   string  `json:"estado"`
}
