package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistorialPrecio is an immutable sale-price snapshot. A price change always
// appends a new row; existing rows are never updated or deleted because sale
// order lines reference them.
type HistorialPrecio struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Precio          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaDeRegistro time.Time       `gorm:"not null;index"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (HistorialPrecio) TableName() string { return "historial_precios" }
