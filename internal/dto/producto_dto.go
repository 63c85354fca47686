package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=1"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	ProveedorID string          `json:"proveedor_id" validate:"required,uuid"`
	Precio      decimal.Decimal `json:"precio"       validate:"required"`
	Costo       decimal.Decimal `json:"costo"        validate:"required"`
}

// ActualizarProductoRequest updates descriptive fields; when Precio or Costo
// differ from the latest snapshot a new history row is appended, never an
// update in place.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=1"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	ProveedorID *string          `json:"proveedor_id" validate:"omitempty,uuid"`
	Precio      *decimal.Decimal `json:"precio"`
	Costo       *decimal.Decimal `json:"costo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID           string           `json:"id"`
	Nombre       string           `json:"nombre"`
	Categoria    string           `json:"categoria"`
	ProveedorID  string           `json:"proveedor_id"`
	Proveedor    string           `json:"proveedor"`
	Estado       string           `json:"estado"`
	PrecioActual *decimal.Decimal `json:"precio_actual,omitempty"`
	CostoActual  *decimal.Decimal `json:"costo_actual,omitempty"`
}

type HistorialPrecioResponse struct {
	ID              string          `json:"id"`
	Precio          decimal.Decimal `json:"precio"`
	FechaDeRegistro string          `json:"fecha_de_registro"`
}

type HistorialCostoResponse struct {
	ID              string          `json:"id"`
	Costo           decimal.Decimal `json:"costo"`
	FechaDeRegistro string          `json:"fecha_de_registro"`
}
