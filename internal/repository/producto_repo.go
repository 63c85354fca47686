package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

type ProductoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	UpdateEstado(ctx context.Context, id, estadoID uuid.UUID) error
	List(ctx context.Context) ([]model.Producto, error)
	ListByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Producto, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Producto) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Proveedor").Preload("Estado").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) UpdateEstado(ctx context.Context, id, estadoID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("estado_id", estadoID).Error
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Proveedor").Preload("Estado").
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Estado").
		Where("proveedor_id = ?", proveedorID).
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}
