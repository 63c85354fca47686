package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarMovimientoRequest records one manual stock movement. Quantities are
// magnitudes; the movement type decides the sign (Ajuste may be negative).
type RegistrarMovimientoRequest struct {
	ProductoID       string          `json:"producto_id"        validate:"required,uuid"`
	UbicacionID      string          `json:"ubicacion_id"       validate:"required,uuid"`
	TipoMovimientoID string          `json:"tipo_movimiento_id" validate:"required,uuid"`
	CantidadPz       decimal.Decimal `json:"cantidad_pz"`
	CantidadKg       decimal.Decimal `json:"cantidad_kg"`
	ClaveMovimiento  string          `json:"clave_movimiento"   validate:"required,min=1"`
}

type ActualizarLimitesRequest struct {
	CantidadMinima decimal.Decimal `json:"cantidad_minima" validate:"min=0"`
	CantidadMaxima decimal.Decimal `json:"cantidad_maxima" validate:"min=0"`
}

type MovimientoFilter struct {
	ProductoID string `form:"producto_id" validate:"omitempty,uuid"`
	Desde      string `form:"desde"` // YYYY-MM-DD
	Hasta      string `form:"hasta"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventarioResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Ubicacion      string          `json:"ubicacion"`
	CantidadPz     decimal.Decimal `json:"cantidad_pz"`
	CantidadKg     decimal.Decimal `json:"cantidad_kg"`
	CantidadMinima decimal.Decimal `json:"cantidad_minima"`
	CantidadMaxima decimal.Decimal `json:"cantidad_maxima"`
	// Alerta is "bajo" under the minimum, "exceso" over the maximum,
	// "negativo" below zero, empty otherwise.
	Alerta string `json:"alerta,omitempty"`
}

type MovimientoResponse struct {
	ID              string          `json:"id"`
	ProductoID      string          `json:"producto_id"`
	Producto        string          `json:"producto"`
	Ubicacion       string          `json:"ubicacion"`
	Tipo            string          `json:"tipo"`
	CantidadPz      decimal.Decimal `json:"cantidad_pz"`
	CantidadKg      decimal.Decimal `json:"cantidad_kg"`
	Usuario         string          `json:"usuario"`
	ClaveMovimiento string          `json:"clave_movimiento"`
	FechaMovimiento string          `json:"fecha_movimiento"`
}

type MovimientoListResponse struct {
	Data  []MovimientoResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
