package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// MovimientoFiltro narrows the movement ledger listing.
type MovimientoFiltro struct {
	ProductoID *uuid.UUID
	Desde      *time.Time
	Hasta      *time.Time
	Page       int
	Limit      int
}

type InventarioRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inventario, error)
	FindByProductoUbicacion(ctx context.Context, productoID, ubicacionID uuid.UUID) (*model.Inventario, error)
	// FindForUpdateTx locks the stock row for the whole movement transaction
	// so concurrent movements on the same (producto, ubicacion) serialize.
	FindForUpdateTx(ctx context.Context, tx *gorm.DB, productoID, ubicacionID uuid.UUID) (*model.Inventario, error)
	CreateTx(ctx context.Context, tx *gorm.DB, inv *model.Inventario) error
	SaveTx(ctx context.Context, tx *gorm.DB, inv *model.Inventario) error
	Save(ctx context.Context, inv *model.Inventario) error
	List(ctx context.Context) ([]model.Inventario, error)
	ListByUbicacion(ctx context.Context, ubicacionID uuid.UUID) ([]model.Inventario, error)

	CreateMovimientoTx(ctx context.Context, tx *gorm.DB, m *model.MovimientoInventario) error
	ListMovimientos(ctx context.Context, filtro MovimientoFiltro) ([]model.MovimientoInventario, int64, error)
	DB() *gorm.DB
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) DB() *gorm.DB { return r.db }

func (r *inventarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Inventario, error) {
	var inv model.Inventario
	err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *inventarioRepo) FindByProductoUbicacion(ctx context.Context, productoID, ubicacionID uuid.UUID) (*model.Inventario, error) {
	var inv model.Inventario
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Ubicacion").
		Where("producto_id = ? AND ubicacion_id = ?", productoID, ubicacionID).
		First(&inv).Error
	return &inv, err
}

func (r *inventarioRepo) FindForUpdateTx(ctx context.Context, tx *gorm.DB, productoID, ubicacionID uuid.UUID) (*model.Inventario, error) {
	var inv model.Inventario
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("producto_id = ? AND ubicacion_id = ?", productoID, ubicacionID).
		First(&inv).Error
	return &inv, err
}

func (r *inventarioRepo) CreateTx(ctx context.Context, tx *gorm.DB, inv *model.Inventario) error {
	return tx.WithContext(ctx).Create(inv).Error
}

func (r *inventarioRepo) SaveTx(ctx context.Context, tx *gorm.DB, inv *model.Inventario) error {
	return tx.WithContext(ctx).Save(inv).Error
}

func (r *inventarioRepo) Save(ctx context.Context, inv *model.Inventario) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *inventarioRepo) List(ctx context.Context) ([]model.Inventario, error) {
	var invs []model.Inventario
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Ubicacion").
		Find(&invs).Error
	return invs, err
}

func (r *inventarioRepo) ListByUbicacion(ctx context.Context, ubicacionID uuid.UUID) ([]model.Inventario, error) {
	var invs []model.Inventario
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Ubicacion").
		Where("ubicacion_id = ?", ubicacionID).
		Find(&invs).Error
	return invs, err
}

func (r *inventarioRepo) CreateMovimientoTx(ctx context.Context, tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.WithContext(ctx).Create(m).Error
}

func (r *inventarioRepo) ListMovimientos(ctx context.Context, filtro MovimientoFiltro) ([]model.MovimientoInventario, int64, error) {
	var movs []model.MovimientoInventario
	var total int64
	offset := (filtro.Page - 1) * filtro.Limit

	q := r.db.Model(&model.MovimientoInventario{})
	if filtro.ProductoID != nil {
		q = q.Where("producto_id = ?", *filtro.ProductoID)
	}
	if filtro.Desde != nil {
		q = q.Where("fecha_movimiento >= ?", *filtro.Desde)
	}
	if filtro.Hasta != nil {
		q = q.Where("fecha_movimiento < ?", *filtro.Hasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Producto").Preload("Ubicacion").Preload("TipoMovimiento").Preload("Usuario").
		Order("fecha_movimiento DESC").
		Offset(offset).Limit(filtro.Limit).
		Find(&movs).Error

	return movs, total, err
}
