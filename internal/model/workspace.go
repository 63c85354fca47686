package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Workspace is a cart/tab: a table, counter spot, or delivery ticket that
// accumulates draft lines before checkout. Permanente marks fixed tables that
// survive finalization; ephemeral tabs are deleted once sold.
//
// SolicitudCuenta ("bill requested") is deliberately not persisted — it is a
// transient front-of-house signal kept in memory by the workspace service.
type Workspace struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre     string    `gorm:"not null"`
	Permanente bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time

	Ordenes []OrdenWorkspace `gorm:"foreignKey:WorkspaceID"`
}

func (Workspace) TableName() string { return "workspaces" }

// Derived workspace states. Never stored; projected from line count plus the
// transient solicitud de cuenta flag.
const (
	WorkspaceDisponible = "disponible"
	WorkspaceOcupado    = "ocupado"
	WorkspaceCuenta     = "cuenta"
)

// OrdenWorkspace is one draft line. It pins the price snapshot that was
// current when the product was added; finalization copies that same snapshot
// into the sale order detail.
type OrdenWorkspace struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	HistorialPrecioID uuid.UUID       `gorm:"type:uuid;not null"`
	CantidadPz        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadKg        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CreatedAt         time.Time

	Workspace       *Workspace       `gorm:"foreignKey:WorkspaceID"`
	Producto        *Producto        `gorm:"foreignKey:ProductoID"`
	HistorialPrecio *HistorialPrecio `gorm:"foreignKey:HistorialPrecioID"`
}

func (OrdenWorkspace) TableName() string { return "ordenes_workspace" }
