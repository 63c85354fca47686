package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	HistorialPrecios(ctx context.Context, id uuid.UUID) ([]dto.HistorialPrecioResponse, error)
	HistorialCostos(ctx context.Context, id uuid.UUID) ([]dto.HistorialCostoResponse, error)
}

type productoService struct {
	repo      repository.ProductoRepository
	historial repository.HistorialRepository
	catalogo  repository.CatalogoRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	historial repository.HistorialRepository,
	catalogo repository.CatalogoRepository,
) ProductoService {
	return &productoService{repo: repo, historial: historial, catalogo: catalogo}
}

// Crear registers the product and its first price and cost snapshots in one
// transaction. A product is never without a current price.
func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.InvalidArgument("categoria_id inválido")
	}
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, apierror.InvalidArgument("proveedor_id inválido")
	}
	if !req.Precio.IsPositive() {
		return nil, apierror.InvalidArgument("el precio debe ser mayor a cero")
	}
	if !req.Costo.IsPositive() {
		return nil, apierror.InvalidArgument("el costo debe ser mayor a cero")
	}

	cat, err := s.catalogo.CategoriaProductoPorID(ctx, categoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("categoría de producto no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}
	activo, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoActivo)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		CategoriaID: categoriaID,
		ProveedorID: proveedorID,
		EstadoID:    activo.ID,
	}

	ahora := time.Now()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, p); err != nil {
			return apierror.Unexpected(err)
		}
		precio := &model.HistorialPrecio{ProductoID: p.ID, Precio: req.Precio, FechaDeRegistro: ahora}
		if err := s.historial.CreatePrecioTx(ctx, tx, precio); err != nil {
			return apierror.Unexpected(err)
		}
		costo := &model.HistorialCosto{ProductoID: p.ID, Costo: req.Costo, FechaDeRegistro: ahora}
		if err := s.historial.CreateCostoTx(ctx, tx, costo); err != nil {
			return apierror.Unexpected(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := productoToResponse(p)
	resp.Categoria = cat.Categoria
	resp.Estado = model.EstadoActivo
	resp.PrecioActual = &req.Precio
	resp.CostoActual = &req.Costo
	return resp, nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	resp := productoToResponse(p)
	s.adjuntarVigentes(ctx, id, resp)
	return resp, nil
}

// Actualizar edits descriptive fields in place; a new precio or costo value
// appends a snapshot instead of overwriting history.
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.CategoriaID != nil {
		cid, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.InvalidArgument("categoria_id inválido")
		}
		if _, err := s.catalogo.CategoriaProductoPorID(ctx, cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("categoría de producto no encontrada")
			}
			return nil, apierror.Unexpected(err)
		}
		p.CategoriaID = cid
	}
	if req.ProveedorID != nil {
		pid, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, apierror.InvalidArgument("proveedor_id inválido")
		}
		p.ProveedorID = pid
	}

	ahora := time.Now()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, p); err != nil {
			return apierror.Unexpected(err)
		}
		if req.Precio != nil {
			if !req.Precio.IsPositive() {
				return apierror.InvalidArgument("el precio debe ser mayor a cero")
			}
			vigente, err := s.historial.PrecioVigente(ctx, id)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Unexpected(err)
			}
			if err != nil || !vigente.Precio.Equal(*req.Precio) {
				snap := &model.HistorialPrecio{ProductoID: id, Precio: *req.Precio, FechaDeRegistro: ahora}
				if err := s.historial.CreatePrecioTx(ctx, tx, snap); err != nil {
					return apierror.Unexpected(err)
				}
			}
		}
		if req.Costo != nil {
			if !req.Costo.IsPositive() {
				return apierror.InvalidArgument("el costo debe ser mayor a cero")
			}
			vigente, err := s.historial.CostoVigente(ctx, id)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Unexpected(err)
			}
			if err != nil || !vigente.Costo.Equal(*req.Costo) {
				snap := &model.HistorialCosto{ProductoID: id, Costo: *req.Costo, FechaDeRegistro: ahora}
				if err := s.historial.CreateCostoTx(ctx, tx, snap); err != nil {
					return apierror.Unexpected(err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := productoToResponse(p)
	s.adjuntarVigentes(ctx, id, resp)
	return resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("producto no encontrado")
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

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp := productoToResponse(&productos[i])
		s.adjuntarVigentes(ctx, productos[i].ID, resp)
		out = append(out, *resp)
	}
	return out, nil
}

func (s *productoService) HistorialPrecios(ctx context.Context, id uuid.UUID) ([]dto.HistorialPrecioResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	precios, err := s.historial.ListPrecios(ctx, id)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.HistorialPrecioResponse, 0, len(precios))
	for _, h := range precios {
		out = append(out, dto.HistorialPrecioResponse{
			ID:              h.ID.String(),
			Precio:          h.Precio,
			FechaDeRegistro: h.FechaDeRegistro.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *productoService) HistorialCostos(ctx context.Context, id uuid.UUID) ([]dto.HistorialCostoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	costos, err := s.historial.ListCostos(ctx, id)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.HistorialCostoResponse, 0, len(costos))
	for _, h := range costos {
		out = append(out, dto.HistorialCostoResponse{
			ID:              h.ID.String(),
			Costo:           h.Costo,
			FechaDeRegistro: h.FechaDeRegistro.Format(time.RFC3339),
		})
	}
	return out, nil
}

// adjuntarVigentes is best effort: products created before the first snapshot
// simply omit the current values.
func (s *productoService) adjuntarVigentes(ctx context.Context, id uuid.UUID, resp *dto.ProductoResponse) {
	if precio, err := s.historial.PrecioVigente(ctx, id); err == nil {
		resp.PrecioActual = &precio.Precio
	}
	if costo, err := s.historial.CostoVigente(ctx, id); err == nil {
		resp.CostoActual = &costo.Costo
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		ProveedorID: p.ProveedorID.String(),
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Categoria
	}
	if p.Proveedor != nil {
		resp.Proveedor = p.Proveedor.Nombre
	}
	if p.Estado != nil {
		resp.Estado = p.Estado.Estado
	}
	return resp
}
