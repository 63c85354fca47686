package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearWorkspaceRequest struct {
	Nombre     string `json:"nombre"     validate:"required,min=1"`
	Permanente bool   `json:"permanente"`
}

type ActualizarWorkspaceRequest struct {
	Nombre     *string `json:"nombre"     validate:"omitempty,min=1"`
	Permanente *bool   `json:"permanente"`
}

// AgregarProductoRequest adds (or merges into) a draft line. Quantities are
// deltas: repeating the same product accumulates onto the existing line.
type AgregarProductoRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	CantidadPz decimal.Decimal `json:"cantidad_pz"`
	CantidadKg decimal.Decimal `json:"cantidad_kg"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrdenWorkspaceResponse struct {
	ID         string          `json:"id"`
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Precio     decimal.Decimal `json:"precio"`
	CantidadPz decimal.Decimal `json:"cantidad_pz"`
	CantidadKg decimal.Decimal `json:"cantidad_kg"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type WorkspaceResponse struct {
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	Permanente bool   `json:"permanente"`
	Estado     string `json:"estado"` // disponible | ocupado | cuenta
}

type TicketWorkspaceResponse struct {
	WorkspaceID string                   `json:"workspace_id"`
	Nombre      string                   `json:"nombre"`
	Ordenes     []OrdenWorkspaceResponse `json:"ordenes"`
	Total       decimal.Decimal          `json:"total"`
}
