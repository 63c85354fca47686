package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrdenVenta is an immutable sale order. It is produced exclusively by
// finalizing a workspace; TotalVenta equals the sum of its detalles'
// (precio snapshot × cantidad).
type OrdenVenta struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID    uuid.UUID       `gorm:"type:uuid;not null"`
	MetodoPagoID uuid.UUID       `gorm:"type:uuid;not null"`
	FechaOrden   time.Time       `gorm:"not null;index"`
	TotalVenta   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time

	Cliente    *Persona            `gorm:"foreignKey:ClienteID"`
	Usuario    *Usuario            `gorm:"foreignKey:UsuarioID"`
	MetodoPago *MetodoPago         `gorm:"foreignKey:MetodoPagoID"`
	Detalles   []DetalleOrdenVenta `gorm:"foreignKey:OrdenVentaID"`
}

func (OrdenVenta) TableName() string { return "ordenes_de_ventas" }

// DetalleOrdenVenta pins the exact price snapshot the workspace line carried —
// checkout never re-prices.
type DetalleOrdenVenta struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenVentaID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID        uuid.UUID       `gorm:"type:uuid;not null"`
	HistorialPrecioID uuid.UUID       `gorm:"type:uuid;not null"`
	CantidadPz        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CantidadKg        decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	Producto        *Producto        `gorm:"foreignKey:ProductoID"`
	HistorialPrecio *HistorialPrecio `gorm:"foreignKey:HistorialPrecioID"`
}

func (DetalleOrdenVenta) TableName() string { return "detalles_ordenes_de_ventas" }

// HistorialPagoCliente records the single full-amount payment created when a
// sale is finalized. The model deliberately has no partial-payment support.
type HistorialPagoCliente struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrdenVentaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MontoPagado  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Fecha        time.Time       `gorm:"not null"`

	Cliente    *Persona    `gorm:"foreignKey:ClienteID"`
	OrdenVenta *OrdenVenta `gorm:"foreignKey:OrdenVentaID"`
}

func (HistorialPagoCliente) TableName() string { return "historial_pagos_clientes" }
