package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistorialCosto is the purchase-cost counterpart of HistorialPrecio.
// Append-only; purchase order lines pin the snapshot valid at order time.
type HistorialCosto struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Costo           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaDeRegistro time.Time       `gorm:"not null;index"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (HistorialCosto) TableName() string { return "historial_costos" }
