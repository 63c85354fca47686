package model

import (
	"time"

	"github.com/google/uuid"
)

// Producto is catalog data only: its current price and cost live exclusively
// in HistorialPrecio / HistorialCosto snapshots. Order lines always reference
// a snapshot, never the live product, so historical totals never drift.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProveedorID uuid.UUID `gorm:"type:uuid;not null;index"`
	EstadoID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *CategoriaProducto `gorm:"foreignKey:CategoriaID"`
	Proveedor *Persona           `gorm:"foreignKey:ProveedorID"`
	Estado    *Estado            `gorm:"foreignKey:EstadoID"`
}
