package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleCompraRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Costo      decimal.Decimal `json:"costo"       validate:"required"`
	CantidadPz decimal.Decimal `json:"cantidad_pz"`
	CantidadKg decimal.Decimal `json:"cantidad_kg"`
}

type CrearOrdenCompraRequest struct {
	ProveedorID  string                 `json:"proveedor_id"   validate:"required,uuid"`
	MetodoPagoID string                 `json:"metodo_pago_id" validate:"required,uuid"`
	UbicacionID  string                 `json:"ubicacion_id"   validate:"required,uuid"`
	Detalles     []DetalleCompraRequest `json:"detalles"       validate:"required,min=1,dive"`
}

// RegistrarPagoRequest settles supplier debt oldest order first. ClaveIdem
// makes client retries safe: a repeated key is rejected instead of re-charged.
// With PagarTodoElTotal the monto is ignored and the full pending debt is paid.
// OrdenCompraID directs the whole payment to that single order instead of the
// oldest-first walk.
type RegistrarPagoRequest struct {
	ProveedorID      string          `json:"proveedor_id"        validate:"required,uuid"`
	OrdenCompraID    *string         `json:"orden_compra_id"     validate:"omitempty,uuid"`
	Monto            decimal.Decimal `json:"monto"`
	PagarTodoElTotal bool            `json:"pagar_todo_el_total"`
	MetodoPagoID     string          `json:"metodo_pago_id"      validate:"required,uuid"`
	ClaveIdem        string          `json:"clave_idem"          validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Costo      decimal.Decimal `json:"costo"`
	CantidadPz decimal.Decimal `json:"cantidad_pz"`
	CantidadKg decimal.Decimal `json:"cantidad_kg"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type OrdenCompraResponse struct {
	ID          string                  `json:"id"`
	ProveedorID string                  `json:"proveedor_id"`
	Proveedor   string                  `json:"proveedor"`
	FechaOrden  string                  `json:"fecha_orden"`
	TotalCompra decimal.Decimal         `json:"total_compra"`
	Estado      string                  `json:"estado"`
	MetodoPago  string                  `json:"metodo_pago"`
	Detalles    []DetalleCompraResponse `json:"detalles"`
}

type PagoProveedorResponse struct {
	ID                string          `json:"id"`
	ProveedorID       string          `json:"proveedor_id"`
	MontoPagado       decimal.Decimal `json:"monto_pagado"`
	MetodoPago        string          `json:"metodo_pago"`
	Fecha             string          `json:"fecha"`
	OrdenesLiquidadas []string        `json:"ordenes_liquidadas"`
	DeudaRestante     decimal.Decimal `json:"deuda_restante"`
}

type DeudaProveedorResponse struct {
	ProveedorID  string          `json:"proveedor_id"`
	Proveedor    string          `json:"proveedor"`
	TotalCompras decimal.Decimal `json:"total_compras"`
	TotalPagos   decimal.Decimal `json:"total_pagos"`
	Deuda        decimal.Decimal `json:"deuda"`

	// Estatus is "verde" when nothing is owed, "amarillo" otherwise.
	Estatus              string  `json:"estatus"`
	OrdenesEnDeuda       int     `json:"ordenes_en_deuda"`
	FechaOrdenMasAntigua *string `json:"fecha_orden_mas_antigua,omitempty"`
}

type EstadisticasDeudasResponse struct {
	DeudaTotal          decimal.Decimal `json:"deuda_total"`
	ProveedoresConDeuda int             `json:"proveedores_con_deuda"`

	// DeudaPromedio is rounded half-up to two decimals over suppliers with
	// outstanding debt only.
	DeudaPromedio decimal.Decimal         `json:"deuda_promedio"`
	MayorDeudor   *DeudaProveedorResponse `json:"mayor_deudor,omitempty"`
}
