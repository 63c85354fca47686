package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// CatalogoRepository resolves the small lookup tables (estados, roles,
// categorias, metodos de pago, ubicaciones, tipos de movimientos). Seeds are
// inserted at startup; services resolve them by name once and pass ids around.
type CatalogoRepository interface {
	EstadoPorNombre(ctx context.Context, nombre string) (*model.Estado, error)
	EstadoPorID(ctx context.Context, id uuid.UUID) (*model.Estado, error)
	RolPorNombre(ctx context.Context, nombre string) (*model.Rol, error)
	RolPorID(ctx context.Context, id uuid.UUID) (*model.Rol, error)
	CategoriaPersonaPorNombre(ctx context.Context, nombre string) (*model.CategoriaPersona, error)
	CategoriaPersonaPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaPersona, error)
	CategoriaProductoPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaProducto, error)
	MetodoPagoPorID(ctx context.Context, id uuid.UUID) (*model.MetodoPago, error)
	MetodoPagoPorNombre(ctx context.Context, nombre string) (*model.MetodoPago, error)
	UbicacionPorID(ctx context.Context, id uuid.UUID) (*model.Ubicacion, error)
	TipoMovimientoPorID(ctx context.Context, id uuid.UUID) (*model.TipoMovimiento, error)
	TipoMovimientoPorNombre(ctx context.Context, nombre string) (*model.TipoMovimiento, error)
	ListUbicaciones(ctx context.Context) ([]model.Ubicacion, error)
	ListMetodosPago(ctx context.Context) ([]model.MetodoPago, error)
	ListCategoriasProducto(ctx context.Context) ([]model.CategoriaProducto, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) EstadoPorNombre(ctx context.Context, nombre string) (*model.Estado, error) {
	var e model.Estado
	err := r.db.WithContext(ctx).Where("estado = ?", nombre).First(&e).Error
	return &e, err
}

func (r *catalogoRepo) EstadoPorID(ctx context.Context, id uuid.UUID) (*model.Estado, error) {
	var e model.Estado
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *catalogoRepo) RolPorNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Where("rol = ?", nombre).First(&rol).Error
	return &rol, err
}

func (r *catalogoRepo) RolPorID(ctx context.Context, id uuid.UUID) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).First(&rol, "id = ?", id).Error
	return &rol, err
}

func (r *catalogoRepo) CategoriaPersonaPorNombre(ctx context.Context, nombre string) (*model.CategoriaPersona, error) {
	var c model.CategoriaPersona
	err := r.db.WithContext(ctx).Where("categoria = ?", nombre).First(&c).Error
	return &c, err
}

func (r *catalogoRepo) CategoriaPersonaPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaPersona, error) {
	var c model.CategoriaPersona
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *catalogoRepo) CategoriaProductoPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaProducto, error) {
	var c model.CategoriaProducto
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *catalogoRepo) MetodoPagoPorID(ctx context.Context, id uuid.UUID) (*model.MetodoPago, error) {
	var m model.MetodoPago
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *catalogoRepo) MetodoPagoPorNombre(ctx context.Context, nombre string) (*model.MetodoPago, error) {
	var m model.MetodoPago
	err := r.db.WithContext(ctx).Where("metodo_pago = ?", nombre).First(&m).Error
	return &m, err
}

func (r *catalogoRepo) UbicacionPorID(ctx context.Context, id uuid.UUID) (*model.Ubicacion, error) {
	var u model.Ubicacion
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *catalogoRepo) TipoMovimientoPorID(ctx context.Context, id uuid.UUID) (*model.TipoMovimiento, error) {
	var t model.TipoMovimiento
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *catalogoRepo) TipoMovimientoPorNombre(ctx context.Context, nombre string) (*model.TipoMovimiento, error) {
	var t model.TipoMovimiento
	err := r.db.WithContext(ctx).Where("movimiento = ?", nombre).First(&t).Error
	return &t, err
}

func (r *catalogoRepo) ListUbicaciones(ctx context.Context) ([]model.Ubicacion, error) {
	var ubicaciones []model.Ubicacion
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&ubicaciones).Error
	return ubicaciones, err
}

func (r *catalogoRepo) ListMetodosPago(ctx context.Context) ([]model.MetodoPago, error) {
	var metodos []model.MetodoPago
	err := r.db.WithContext(ctx).Order("metodo_pago ASC").Find(&metodos).Error
	return metodos, err
}

func (r *catalogoRepo) ListCategoriasProducto(ctx context.Context) ([]model.CategoriaProducto, error) {
	var categorias []model.CategoriaProducto
	err := r.db.WithContext(ctx).Order("categoria ASC").Find(&categorias).Error
	return categorias, err
}
