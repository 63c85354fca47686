package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, w *model.Workspace) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error)
	// FindByIDForUpdate locks the workspace row inside tx. Finalization takes
	// this lock first so two concurrent checkouts of the same tab serialize.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Workspace, error)
	Update(ctx context.Context, w *model.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context) ([]model.Workspace, error)

	FindOrden(ctx context.Context, workspaceID, productoID uuid.UUID) (*model.OrdenWorkspace, error)
	CreateOrden(ctx context.Context, o *model.OrdenWorkspace) error
	UpdateOrden(ctx context.Context, o *model.OrdenWorkspace) error
	DeleteOrden(ctx context.Context, id uuid.UUID) error
	ListOrdenes(ctx context.Context, workspaceID uuid.UUID) ([]model.OrdenWorkspace, error)
	ListOrdenesTx(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]model.OrdenWorkspace, error)
	DeleteOrdenesTx(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) error
	// ContarOrdenes drives the derived estado (0 lines = disponible).
	ContarOrdenes(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type workspaceRepo struct{ db *gorm.DB }

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository { return &workspaceRepo{db: db} }

func (r *workspaceRepo) DB() *gorm.DB { return r.db }

func (r *workspaceRepo) Create(ctx context.Context, w *model.Workspace) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workspaceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error) {
	var w model.Workspace
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *workspaceRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Workspace, error) {
	var w model.Workspace
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&w, "id = ?", id).Error
	return &w, err
}

func (r *workspaceRepo) Update(ctx context.Context, w *model.Workspace) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *workspaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Workspace{}, "id = ?", id).Error
}

func (r *workspaceRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.Workspace{}, "id = ?", id).Error
}

func (r *workspaceRepo) List(ctx context.Context) ([]model.Workspace, error) {
	var ws []model.Workspace
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&ws).Error
	return ws, err
}

func (r *workspaceRepo) FindOrden(ctx context.Context, workspaceID, productoID uuid.UUID) (*model.OrdenWorkspace, error) {
	var o model.OrdenWorkspace
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND producto_id = ?", workspaceID, productoID).
		First(&o).Error
	return &o, err
}

func (r *workspaceRepo) CreateOrden(ctx context.Context, o *model.OrdenWorkspace) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *workspaceRepo) UpdateOrden(ctx context.Context, o *model.OrdenWorkspace) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *workspaceRepo) DeleteOrden(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.OrdenWorkspace{}, "id = ?", id).Error
}

func (r *workspaceRepo) ListOrdenes(ctx context.Context, workspaceID uuid.UUID) ([]model.OrdenWorkspace, error) {
	var ordenes []model.OrdenWorkspace
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("HistorialPrecio").
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&ordenes).Error
	return ordenes, err
}

func (r *workspaceRepo) ListOrdenesTx(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]model.OrdenWorkspace, error) {
	var ordenes []model.OrdenWorkspace
	err := tx.WithContext(ctx).
		Preload("Producto").Preload("HistorialPrecio").
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&ordenes).Error
	return ordenes, err
}

func (r *workspaceRepo) DeleteOrdenesTx(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Delete(&model.OrdenWorkspace{}).Error
}

func (r *workspaceRepo) ContarOrdenes(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenWorkspace{}).
		Where("workspace_id = ?", workspaceID).
		Count(&n).Error
	return n, err
}
