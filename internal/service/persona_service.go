package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

type PersonaService interface {
	Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PersonaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]dto.PersonaResponse, error)
	ListarClientes(ctx context.Context) ([]dto.PersonaResponse, error)
}

type personaService struct {
	repo     repository.PersonaRepository
	catalogo repository.CatalogoRepository
}

func NewPersonaService(repo repository.PersonaRepository, catalogo repository.CatalogoRepository) PersonaService {
	return &personaService{repo: repo, catalogo: catalogo}
}

func (s *personaService) Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.InvalidArgument("categoria_id inválido")
	}
	cat, err := s.catalogo.CategoriaPersonaPorID(ctx, categoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("categoría de persona no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}
	activo, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoActivo)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	p := &model.Persona{
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		RFC:             req.RFC,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Direccion:       req.Direccion,
		CategoriaID:     categoriaID,
		EstadoID:        activo.ID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Unexpected(err)
	}

	resp := personaToResponse(p)
	resp.Categoria = cat.Categoria
	resp.Estado = model.EstadoActivo
	return resp, nil
}

func (s *personaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PersonaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("persona no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}
	return personaToResponse(p), nil
}

func (s *personaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("persona no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.ApellidoPaterno != nil {
		p.ApellidoPaterno = req.ApellidoPaterno
	}
	if req.ApellidoMaterno != nil {
		p.ApellidoMaterno = req.ApellidoMaterno
	}
	if req.RFC != nil {
		p.RFC = req.RFC
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Unexpected(err)
	}
	return personaToResponse(p), nil
}

// Desactivar flips the estado; personas referenced by orders are never deleted.
func (s *personaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("persona no encontrada")
		}
		return apierror.Unexpected(err)
	}
	inactivo, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoInactivo)
	if err != nil {
		return apierror.Unexpected(err)
	}
	if err := s.repo.UpdateEstado(ctx, id, inactivo.ID); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}

func (s *personaService) Listar(ctx context.Context) ([]dto.PersonaResponse, error) {
	personas, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.PersonaResponse, 0, len(personas))
	for i := range personas {
		out = append(out, *personaToResponse(&personas[i]))
	}
	return out, nil
}

func (s *personaService) ListarClientes(ctx context.Context) ([]dto.PersonaResponse, error) {
	cat, err := s.catalogo.CategoriaPersonaPorNombre(ctx, model.CategoriaCliente)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	clientes, err := s.repo.ListByCategoria(ctx, cat.ID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.PersonaResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *personaToResponse(&clientes[i]))
	}
	return out, nil
}

func personaToResponse(p *model.Persona) *dto.PersonaResponse {
	resp := &dto.PersonaResponse{
		ID:              p.ID.String(),
		Nombre:          p.Nombre,
		ApellidoPaterno: p.ApellidoPaterno,
		ApellidoMaterno: p.ApellidoMaterno,
		RFC:             p.RFC,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Direccion:       p.Direccion,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Categoria
	}
	if p.Estado != nil {
		resp.Estado = p.Estado.Estado
	}
	return resp
}
