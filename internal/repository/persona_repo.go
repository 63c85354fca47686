package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

type PersonaRepository interface {
	Create(ctx context.Context, p *model.Persona) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Persona, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Persona, error)
	Update(ctx context.Context, p *model.Persona) error
	UpdateEstado(ctx context.Context, id, estadoID uuid.UUID) error
	ListByCategoria(ctx context.Context, categoriaID uuid.UUID) ([]model.Persona, error)
	List(ctx context.Context) ([]model.Persona, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type personaRepo struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository { return &personaRepo{db: db} }

func (r *personaRepo) DB() *gorm.DB { return r.db }

func (r *personaRepo) Create(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Estado").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *personaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&p).Error
	return &p, err
}

func (r *personaRepo) Update(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *personaRepo) UpdateEstado(ctx context.Context, id, estadoID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Persona{}).Where("id = ?", id).Update("estado_id", estadoID).Error
}

func (r *personaRepo) ListByCategoria(ctx context.Context, categoriaID uuid.UUID) ([]model.Persona, error) {
	var personas []model.Persona
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Estado").
		Where("categoria_id = ?", categoriaID).
		Order("nombre ASC").
		Find(&personas).Error
	return personas, err
}

func (r *personaRepo) List(ctx context.Context) ([]model.Persona, error) {
	var personas []model.Persona
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Estado").
		Order("nombre ASC").
		Find(&personas).Error
	return personas, err
}
