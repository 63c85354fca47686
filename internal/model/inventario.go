package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventario holds the current stock of one (producto, ubicacion) pair. The
// counters are only ever mutated by recording a MovimientoInventario — current
// stock is the running sum of the movement ledger, and negative values are
// allowed (a reportable condition, never silently clamped).
type Inventario struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_producto_ubicacion"`
	UbicacionID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_producto_ubicacion"`
	CantidadPz     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadKg     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadMinima decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadMaxima decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UpdatedAt      time.Time

	Producto  *Producto  `gorm:"foreignKey:ProductoID"`
	Ubicacion *Ubicacion `gorm:"foreignKey:UbicacionID"`
}

func (Inventario) TableName() string { return "inventarios" }

// MovimientoInventario is the append-only audit trail of every stock change.
// Cantidad carries the sign already applied (Entrada +, Salida −, Ajuste ±).
type MovimientoInventario struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UbicacionID      uuid.UUID       `gorm:"type:uuid;not null"`
	TipoMovimientoID uuid.UUID       `gorm:"type:uuid;not null"`
	CantidadPz       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadKg       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UsuarioID        uuid.UUID       `gorm:"type:uuid;not null"`
	ClaveMovimiento  string          `gorm:"not null;index"`
	FechaMovimiento  time.Time       `gorm:"not null;index"`

	Producto       *Producto       `gorm:"foreignKey:ProductoID"`
	Ubicacion      *Ubicacion      `gorm:"foreignKey:UbicacionID"`
	TipoMovimiento *TipoMovimiento `gorm:"foreignKey:TipoMovimientoID"`
	Usuario        *Usuario        `gorm:"foreignKey:UsuarioID"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventarios" }
