package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// FinalizarVentaRequest converts every draft line of a workspace into a sale.
// ClienteID is optional; when absent the reserved walk-in customer is used.
type FinalizarVentaRequest struct {
	MetodoPagoID string  `json:"metodo_pago_id" validate:"required,uuid"`
	ClienteID    *string `json:"cliente_id"     validate:"omitempty,uuid"`
	UbicacionID  string  `json:"ubicacion_id"   validate:"required,uuid"`
	ClaveIdem    string  `json:"clave_idem"     validate:"required,min=8"`
	// ClienteEmail: optional — when present, the ticket worker mails the PDF.
	ClienteEmail *string `json:"cliente_email"  validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Precio     decimal.Decimal `json:"precio"`
	CantidadPz decimal.Decimal `json:"cantidad_pz"`
	CantidadKg decimal.Decimal `json:"cantidad_kg"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID         string                 `json:"id"`
	ClienteID  string                 `json:"cliente_id"`
	Cliente    string                 `json:"cliente"`
	UsuarioID  string                 `json:"usuario_id"`
	MetodoPago string                 `json:"metodo_pago"`
	FechaOrden string                 `json:"fecha_orden"`
	TotalVenta decimal.Decimal        `json:"total_venta"`
	Detalles   []DetalleVentaResponse `json:"detalles"`
}
