package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrdenCompra is a purchase order against a supplier. TotalCompra equals the
// sum of its detalles' (costo snapshot × cantidad) at creation time and is
// immutable afterwards — supplier debt is always derived from this ledger,
// never kept as a running balance.
type OrdenCompra struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaOrden   time.Time       `gorm:"not null;index"`
	TotalCompra  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EstadoID     uuid.UUID       `gorm:"type:uuid;not null"`
	MetodoPagoID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt    time.Time

	Proveedor  *Persona             `gorm:"foreignKey:ProveedorID"`
	Estado     *Estado              `gorm:"foreignKey:EstadoID"`
	MetodoPago *MetodoPago          `gorm:"foreignKey:MetodoPagoID"`
	Detalles   []DetalleOrdenCompra `gorm:"foreignKey:OrdenCompraID"`
}

func (OrdenCompra) TableName() string { return "ordenes_de_compras" }

// DetalleOrdenCompra is one purchase order line. CantidadPz and CantidadKg are
// independent quantities; at least one must be positive.
type DetalleOrdenCompra struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenCompraID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID       uuid.UUID       `gorm:"type:uuid;not null"`
	HistorialCostoID uuid.UUID       `gorm:"type:uuid;not null"`
	CantidadPz       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadKg       decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	Producto       *Producto       `gorm:"foreignKey:ProductoID"`
	HistorialCosto *HistorialCosto `gorm:"foreignKey:HistorialCostoID"`
}

func (DetalleOrdenCompra) TableName() string { return "detalles_ordenes_de_compras" }

// HistorialCargoProveedor records one payment to a supplier against a purchase
// order. Append-only: partial payments accumulate as separate rows and the
// pending debt is always Σ compras − Σ pagos.
type HistorialCargoProveedor struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrdenCompraID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MontoPagado   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPagoID  uuid.UUID       `gorm:"type:uuid;not null"`
	Fecha         time.Time       `gorm:"not null"`

	Proveedor   *Persona     `gorm:"foreignKey:ProveedorID"`
	OrdenCompra *OrdenCompra `gorm:"foreignKey:OrdenCompraID"`
	MetodoPago  *MetodoPago  `gorm:"foreignKey:MetodoPagoID"`
}

func (HistorialCargoProveedor) TableName() string { return "historial_cargos_proveedores" }
