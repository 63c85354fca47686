package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// HistorialRepository manages the append-only price and cost snapshots. There
// are no Update methods on purpose: a change of price or cost is always a new
// row, and old rows stay referenced by past order lines.
type HistorialRepository interface {
	CreatePrecioTx(ctx context.Context, tx *gorm.DB, h *model.HistorialPrecio) error
	CreateCostoTx(ctx context.Context, tx *gorm.DB, h *model.HistorialCosto) error
	PrecioVigente(ctx context.Context, productoID uuid.UUID) (*model.HistorialPrecio, error)
	CostoVigente(ctx context.Context, productoID uuid.UUID) (*model.HistorialCosto, error)
	// CostoVigenteEn resolves the cost snapshot in force at a point in time,
	// used by the analytics export to cost historical sale lines.
	CostoVigenteEn(ctx context.Context, productoID uuid.UUID, en time.Time) (*model.HistorialCosto, error)
	ListPrecios(ctx context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error)
	ListCostos(ctx context.Context, productoID uuid.UUID) ([]model.HistorialCosto, error)
}

type historialRepo struct{ db *gorm.DB }

func NewHistorialRepository(db *gorm.DB) HistorialRepository { return &historialRepo{db: db} }

func (r *historialRepo) CreatePrecioTx(ctx context.Context, tx *gorm.DB, h *model.HistorialPrecio) error {
	return tx.WithContext(ctx).Create(h).Error
}

func (r *historialRepo) CreateCostoTx(ctx context.Context, tx *gorm.DB, h *model.HistorialCosto) error {
	return tx.WithContext(ctx).Create(h).Error
}

func (r *historialRepo) PrecioVigente(ctx context.Context, productoID uuid.UUID) (*model.HistorialPrecio, error) {
	var h model.HistorialPrecio
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("fecha_de_registro DESC").
		First(&h).Error
	return &h, err
}

func (r *historialRepo) CostoVigente(ctx context.Context, productoID uuid.UUID) (*model.HistorialCosto, error) {
	var h model.HistorialCosto
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("fecha_de_registro DESC").
		First(&h).Error
	return &h, err
}

func (r *historialRepo) CostoVigenteEn(ctx context.Context, productoID uuid.UUID, en time.Time) (*model.HistorialCosto, error) {
	var h model.HistorialCosto
	err := r.db.WithContext(ctx).
		Where("producto_id = ? AND fecha_de_registro <= ?", productoID, en).
		Order("fecha_de_registro DESC").
		First(&h).Error
	return &h, err
}

func (r *historialRepo) ListPrecios(ctx context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error) {
	var hs []model.HistorialPrecio
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("fecha_de_registro DESC").
		Find(&hs).Error
	return hs, err
}

func (r *historialRepo) ListCostos(ctx context.Context, productoID uuid.UUID) ([]model.HistorialCosto, error) {
	var hs []model.HistorialCosto
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("fecha_de_registro DESC").
		Find(&hs).Error
	return hs, err
}
