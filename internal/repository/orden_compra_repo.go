package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// DeudaAgregada is the per-supplier debt projection: debt is never stored,
// always Σ compras − Σ pagos.
type DeudaAgregada struct {
	ProveedorID  uuid.UUID
	TotalCompras decimal.Decimal
	TotalPagos   decimal.Decimal
}

type OrdenCompraRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, oc *model.OrdenCompra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error)
	ListByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.OrdenCompra, error)
	// PendientesForUpdate locks the supplier's unsettled orders oldest first.
	// The lock holds until the surrounding payment transaction commits, so two
	// concurrent payments serialize instead of double-settling.
	PendientesForUpdate(ctx context.Context, tx *gorm.DB, proveedorID, estadoPendienteID uuid.UUID) ([]model.OrdenCompra, error)
	// PendientesTx reads the same orders oldest first without locking, for
	// debt reads that must not block concurrent payments.
	PendientesTx(ctx context.Context, tx *gorm.DB, proveedorID, estadoPendienteID uuid.UUID) ([]model.OrdenCompra, error)
	UpdateEstadoTx(ctx context.Context, tx *gorm.DB, id, estadoID uuid.UUID) error
	CreateCargoTx(ctx context.Context, tx *gorm.DB, cargo *model.HistorialCargoProveedor) error
	SumComprasTx(ctx context.Context, tx *gorm.DB, proveedorID uuid.UUID) (decimal.Decimal, error)
	SumPagosTx(ctx context.Context, tx *gorm.DB, proveedorID uuid.UUID) (decimal.Decimal, error)
	// SumPagosOrdenTx totals the cargos already applied to one order, for the
	// per-order outstanding during oldest-first allocation.
	SumPagosOrdenTx(ctx context.Context, tx *gorm.DB, ordenID uuid.UUID) (decimal.Decimal, error)
	// DeudasPorProveedor aggregates both sums for every supplier in two
	// grouped queries, for the debt report.
	DeudasPorProveedor(ctx context.Context) (map[uuid.UUID]*DeudaAgregada, error)
	ListPagos(ctx context.Context, proveedorID uuid.UUID) ([]model.HistorialCargoProveedor, error)
	DB() *gorm.DB
}

type ordenCompraRepo struct{ db *gorm.DB }

func NewOrdenCompraRepository(db *gorm.DB) OrdenCompraRepository { return &ordenCompraRepo{db: db} }

func (r *ordenCompraRepo) DB() *gorm.DB { return r.db }

func (r *ordenCompraRepo) CreateTx(ctx context.Context, tx *gorm.DB, oc *model.OrdenCompra) error {
	return tx.WithContext(ctx).Create(oc).Error
}

func (r *ordenCompraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	var oc model.OrdenCompra
	err := r.db.WithContext(ctx).
		Preload("Proveedor").Preload("Estado").Preload("MetodoPago").
		Preload("Detalles.Producto").Preload("Detalles.HistorialCosto").
		First(&oc, "id = ?", id).Error
	return &oc, err
}

func (r *ordenCompraRepo) ListByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.OrdenCompra, error) {
	var ordenes []model.OrdenCompra
	err := r.db.WithContext(ctx).
		Preload("Estado").Preload("MetodoPago").
		Preload("Detalles.Producto").Preload("Detalles.HistorialCosto").
		Where("proveedor_id = ?", proveedorID).
		Order("fecha_orden ASC").
		Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenCompraRepo) PendientesForUpdate(ctx context.Context, tx *gorm.DB, proveedorID, estadoPendienteID uuid.UUID) ([]model.OrdenCompra, error) {
	var ordenes []model.OrdenCompra
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("proveedor_id = ? AND estado_id = ?", proveedorID, estadoPendienteID).
		Order("fecha_orden ASC").
		Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenCompraRepo) PendientesTx(ctx context.Context, tx *gorm.DB, proveedorID, estadoPendienteID uuid.UUID) ([]model.OrdenCompra, error) {
	var ordenes []model.OrdenCompra
	err := tx.WithContext(ctx).
		Where("proveedor_id = ? AND estado_id = ?", proveedorID, estadoPendienteID).
		Order("fecha_orden ASC").
		Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenCompraRepo) UpdateEstadoTx(ctx context.Context, tx *gorm.DB, id, estadoID uuid.UUID) error {
	return tx.WithContext(ctx).Model(&model.OrdenCompra{}).Where("id = ?", id).Update("estado_id", estadoID).Error
}

func (r *ordenCompraRepo) CreateCargoTx(ctx context.Context, tx *gorm.DB, cargo *model.HistorialCargoProveedor) error {
	return tx.WithContext(ctx).Create(cargo).Error
}

func (r *ordenCompraRepo) SumComprasTx(ctx context.Context, tx *gorm.DB, proveedorID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := tx.WithContext(ctx).Model(&model.OrdenCompra{}).
		Select("COALESCE(SUM(total_compra), 0)").
		Where("proveedor_id = ?", proveedorID).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *ordenCompraRepo) SumPagosTx(ctx context.Context, tx *gorm.DB, proveedorID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := tx.WithContext(ctx).Model(&model.HistorialCargoProveedor{}).
		Select("COALESCE(SUM(monto_pagado), 0)").
		Where("proveedor_id = ?", proveedorID).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *ordenCompraRepo) SumPagosOrdenTx(ctx context.Context, tx *gorm.DB, ordenID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := tx.WithContext(ctx).Model(&model.HistorialCargoProveedor{}).
		Select("COALESCE(SUM(monto_pagado), 0)").
		Where("orden_compra_id = ?", ordenID).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *ordenCompraRepo) DeudasPorProveedor(ctx context.Context) (map[uuid.UUID]*DeudaAgregada, error) {
	type fila struct {
		ProveedorID uuid.UUID
		Total       decimal.Decimal
	}

	deudas := make(map[uuid.UUID]*DeudaAgregada)

	var compras []fila
	err := r.db.WithContext(ctx).Model(&model.OrdenCompra{}).
		Select("proveedor_id, COALESCE(SUM(total_compra), 0) AS total").
		Group("proveedor_id").
		Scan(&compras).Error
	if err != nil {
		return nil, err
	}
	for _, f := range compras {
		deudas[f.ProveedorID] = &DeudaAgregada{
			ProveedorID:  f.ProveedorID,
			TotalCompras: f.Total,
			TotalPagos:   decimal.Zero,
		}
	}

	var pagos []fila
	err = r.db.WithContext(ctx).Model(&model.HistorialCargoProveedor{}).
		Select("proveedor_id, COALESCE(SUM(monto_pagado), 0) AS total").
		Group("proveedor_id").
		Scan(&pagos).Error
	if err != nil {
		return nil, err
	}
	for _, f := range pagos {
		d, ok := deudas[f.ProveedorID]
		if !ok {
			d = &DeudaAgregada{ProveedorID: f.ProveedorID, TotalCompras: decimal.Zero}
			deudas[f.ProveedorID] = d
		}
		d.TotalPagos = f.Total
	}

	return deudas, nil
}

func (r *ordenCompraRepo) ListPagos(ctx context.Context, proveedorID uuid.UUID) ([]model.HistorialCargoProveedor, error) {
	var pagos []model.HistorialCargoProveedor
	err := r.db.WithContext(ctx).
		Preload("MetodoPago").
		Where("proveedor_id = ?", proveedorID).
		Order("fecha DESC").
		Find(&pagos).Error
	return pagos, err
}
