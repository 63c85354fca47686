package dto

import "github.com/shopspring/decimal"

// ─── Export ─────────────────────────────────────────────────────────────────

// VentaExportRow is one sale line flattened for the prediction service. When a
// line predates cost snapshots, CostoEstimado carries precio × 0.70 and
// CostoReal is false.
type VentaExportRow struct {
	OrdenVentaID   string          `json:"orden_venta_id"`
	FechaOrden     string          `json:"fecha_orden"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Categoria      string          `json:"categoria"`
	CantidadPz     decimal.Decimal `json:"cantidad_pz"`
	CantidadKg     decimal.Decimal `json:"cantidad_kg"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	CostoEstimado  decimal.Decimal `json:"costo_estimado"`
	CostoReal      bool            `json:"costo_real"`
}

type VentaExportResponse struct {
	Generado string           `json:"generado"`
	Filas    []VentaExportRow `json:"filas"`
}

// ─── Prediction relay ────────────────────────────────────────────────────────

type PrediccionRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Horizonte  int    `json:"horizonte"   validate:"min=1,max=90"`
}

// PrediccionResponse mirrors whatever the ML service answers; the relay does
// not reinterpret it.
type PrediccionResponse struct {
	ProductoID  string            `json:"producto_id"`
	Horizonte   int               `json:"horizonte"`
	Prediccion  []decimal.Decimal `json:"prediccion"`
	GeneradoPor string            `json:"generado_por,omitempty"`
}
