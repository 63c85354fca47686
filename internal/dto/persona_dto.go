package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPersonaRequest struct {
	Nombre          string  `json:"nombre"           validate:"required,min=1"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	RFC             *string `json:"rfc"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Direccion       *string `json:"direccion"`
	CategoriaID     string  `json:"categoria_id"     validate:"required,uuid"`
}

type ActualizarPersonaRequest struct {
	Nombre          *string `json:"nombre"           validate:"omitempty,min=1"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	RFC             *string `json:"rfc"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Direccion       *string `json:"direccion"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PersonaResponse struct {
	ID              string  `json:"id"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno *string `json:"apellido_paterno,omitempty"`
	ApellidoMaterno *string `json:"apellido_materno,omitempty"`
	RFC             *string `json:"rfc,omitempty"`
	Telefono        *string `json:"telefono,omitempty"`
	Email           *string `json:"email,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
	Categoria       string  `json:"categoria"`
	Estado          string  `json:"estado"`
}
