package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

type WorkspaceService interface {
	Crear(ctx context.Context, req dto.CrearWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.WorkspaceResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]dto.WorkspaceResponse, error)

	AgregarProducto(ctx context.Context, workspaceID uuid.UUID, req dto.AgregarProductoRequest) (*dto.OrdenWorkspaceResponse, error)
	EliminarOrden(ctx context.Context, workspaceID, ordenID uuid.UUID) error
	LimpiarOrdenes(ctx context.Context, workspaceID uuid.UUID) error
	ObtenerTicket(ctx context.Context, workspaceID uuid.UUID) (*dto.TicketWorkspaceResponse, error)

	// SolicitarCuenta raises the transient "bill requested" flag; it lives in
	// memory only and resets when the process restarts or the tab empties.
	SolicitarCuenta(ctx context.Context, workspaceID uuid.UUID) error
	LimpiarSolicitud(workspaceID uuid.UUID)
}

type workspaceService struct {
	repo         repository.WorkspaceRepository
	productoRepo repository.ProductoRepository
	historial    repository.HistorialRepository

	mu          sync.RWMutex
	solicitudes map[uuid.UUID]bool
}

func NewWorkspaceService(
	repo repository.WorkspaceRepository,
	productoRepo repository.ProductoRepository,
	historial repository.HistorialRepository,
) WorkspaceService {
	return &workspaceService{
		repo:         repo,
		productoRepo: productoRepo,
		historial:    historial,
		solicitudes:  make(map[uuid.UUID]bool),
	}
}

func (s *workspaceService) Crear(ctx context.Context, req dto.CrearWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	w := &model.Workspace{Nombre: req.Nombre, Permanente: req.Permanente}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, apierror.Unexpected(err)
	}
	return &dto.WorkspaceResponse{
		ID:         w.ID.String(),
		Nombre:     w.Nombre,
		Permanente: w.Permanente,
		Estado:     model.WorkspaceDisponible,
	}, nil
}

func (s *workspaceService) Obtener(ctx context.Context, id uuid.UUID) (*dto.WorkspaceResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("workspace no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	estado, err := s.estadoDe(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.WorkspaceResponse{
		ID:         w.ID.String(),
		Nombre:     w.Nombre,
		Permanente: w.Permanente,
		Estado:     estado,
	}, nil
}

func (s *workspaceService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("workspace no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	if req.Nombre != nil {
		w.Nombre = *req.Nombre
	}
	if req.Permanente != nil {
		w.Permanente = *req.Permanente
	}
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, apierror.Unexpected(err)
	}
	estado, err := s.estadoDe(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.WorkspaceResponse{
		ID:         w.ID.String(),
		Nombre:     w.Nombre,
		Permanente: w.Permanente,
		Estado:     estado,
	}, nil
}

// Eliminar rejects while the tab holds draft lines; clear or finalize first.
func (s *workspaceService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("workspace no encontrado")
		}
		return apierror.Unexpected(err)
	}
	n, err := s.repo.ContarOrdenes(ctx, id)
	if err != nil {
		return apierror.Unexpected(err)
	}
	if n > 0 {
		return apierror.Conflict("el workspace tiene órdenes pendientes")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Unexpected(err)
	}
	s.LimpiarSolicitud(id)
	return nil
}

func (s *workspaceService) Listar(ctx context.Context) ([]dto.WorkspaceResponse, error) {
	ws, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.WorkspaceResponse, 0, len(ws))
	for i := range ws {
		estado, err := s.estadoDe(ctx, ws[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.WorkspaceResponse{
			ID:         ws[i].ID.String(),
			Nombre:     ws[i].Nombre,
			Permanente: ws[i].Permanente,
			Estado:     estado,
		})
	}
	return out, nil
}

// AgregarProducto pins the price snapshot current at add time. Re-adding the
// same product accumulates quantities onto the existing line and keeps its
// original snapshot.
func (s *workspaceService) AgregarProducto(ctx context.Context, workspaceID uuid.UUID, req dto.AgregarProductoRequest) (*dto.OrdenWorkspaceResponse, error) {
	if req.CantidadPz.IsNegative() || req.CantidadKg.IsNegative() {
		return nil, apierror.InvalidArgument("las cantidades no pueden ser negativas")
	}
	if !req.CantidadPz.IsPositive() && !req.CantidadKg.IsPositive() {
		return nil, apierror.InvalidArgument("al menos una cantidad debe ser mayor a cero")
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.InvalidArgument("producto_id inválido")
	}

	if _, err := s.repo.FindByID(ctx, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("workspace no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	if producto.Estado != nil && producto.Estado.Estado == model.EstadoInactivo {
		return nil, apierror.InvalidArgument("el producto %s está inactivo", producto.Nombre)
	}

	orden, err := s.repo.FindOrden(ctx, workspaceID, productoID)
	switch {
	case err == nil:
		orden.CantidadPz = orden.CantidadPz.Add(req.CantidadPz)
		orden.CantidadKg = orden.CantidadKg.Add(req.CantidadKg)
		if err := s.repo.UpdateOrden(ctx, orden); err != nil {
			return nil, apierror.Unexpected(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		precio, err := s.historial.PrecioVigente(ctx, productoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.InvalidArgument("el producto %s no tiene precio vigente", producto.Nombre)
			}
			return nil, apierror.Unexpected(err)
		}
		orden = &model.OrdenWorkspace{
			WorkspaceID:       workspaceID,
			ProductoID:        productoID,
			HistorialPrecioID: precio.ID,
			CantidadPz:        req.CantidadPz,
			CantidadKg:        req.CantidadKg,
			HistorialPrecio:   precio,
		}
		if err := s.repo.CreateOrden(ctx, orden); err != nil {
			return nil, apierror.Unexpected(err)
		}
	default:
		return nil, apierror.Unexpected(err)
	}

	resp := &dto.OrdenWorkspaceResponse{
		ID:         orden.ID.String(),
		ProductoID: productoID.String(),
		Producto:   producto.Nombre,
		CantidadPz: orden.CantidadPz,
		CantidadKg: orden.CantidadKg,
	}
	if orden.HistorialPrecio != nil {
		resp.Precio = orden.HistorialPrecio.Precio
		resp.Subtotal = orden.HistorialPrecio.Precio.Mul(orden.CantidadPz.Add(orden.CantidadKg))
	}
	return resp, nil
}

func (s *workspaceService) EliminarOrden(ctx context.Context, workspaceID, ordenID uuid.UUID) error {
	orden, err := s.buscarOrdenEnWorkspace(ctx, workspaceID, ordenID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteOrden(ctx, orden.ID); err != nil {
		return apierror.Unexpected(err)
	}
	s.limpiarSiVacio(ctx, workspaceID)
	return nil
}

func (s *workspaceService) LimpiarOrdenes(ctx context.Context, workspaceID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("workspace no encontrado")
		}
		return apierror.Unexpected(err)
	}
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteOrdenesTx(ctx, tx, workspaceID)
	})
	if err != nil {
		return apierror.Unexpected(err)
	}
	s.LimpiarSolicitud(workspaceID)
	return nil
}

func (s *workspaceService) ObtenerTicket(ctx context.Context, workspaceID uuid.UUID) (*dto.TicketWorkspaceResponse, error) {
	w, err := s.repo.FindByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("workspace no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	ordenes, err := s.repo.ListOrdenes(ctx, workspaceID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	ticket := &dto.TicketWorkspaceResponse{
		WorkspaceID: workspaceID.String(),
		Nombre:      w.Nombre,
		Ordenes:     make([]dto.OrdenWorkspaceResponse, 0, len(ordenes)),
	}
	total := ticket.Total
	for _, o := range ordenes {
		item := dto.OrdenWorkspaceResponse{
			ID:         o.ID.String(),
			ProductoID: o.ProductoID.String(),
			CantidadPz: o.CantidadPz,
			CantidadKg: o.CantidadKg,
		}
		if o.Producto != nil {
			item.Producto = o.Producto.Nombre
		}
		if o.HistorialPrecio != nil {
			item.Precio = o.HistorialPrecio.Precio
			item.Subtotal = o.HistorialPrecio.Precio.Mul(o.CantidadPz.Add(o.CantidadKg))
			total = total.Add(item.Subtotal)
		}
		ticket.Ordenes = append(ticket.Ordenes, item)
	}
	ticket.Total = total
	return ticket, nil
}

func (s *workspaceService) SolicitarCuenta(ctx context.Context, workspaceID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("workspace no encontrado")
		}
		return apierror.Unexpected(err)
	}
	n, err := s.repo.ContarOrdenes(ctx, workspaceID)
	if err != nil {
		return apierror.Unexpected(err)
	}
	if n == 0 {
		return apierror.Conflict("no se puede pedir la cuenta de un workspace vacío")
	}
	s.mu.Lock()
	s.solicitudes[workspaceID] = true
	s.mu.Unlock()
	return nil
}

func (s *workspaceService) LimpiarSolicitud(workspaceID uuid.UUID) {
	s.mu.Lock()
	delete(s.solicitudes, workspaceID)
	s.mu.Unlock()
}

func (s *workspaceService) estadoDe(ctx context.Context, id uuid.UUID) (string, error) {
	n, err := s.repo.ContarOrdenes(ctx, id)
	if err != nil {
		return "", apierror.Unexpected(err)
	}
	if n == 0 {
		// An empty tab cannot hold a bill request.
		s.LimpiarSolicitud(id)
		return model.WorkspaceDisponible, nil
	}
	s.mu.RLock()
	solicitada := s.solicitudes[id]
	s.mu.RUnlock()
	if solicitada {
		return model.WorkspaceCuenta, nil
	}
	return model.WorkspaceOcupado, nil
}

func (s *workspaceService) buscarOrdenEnWorkspace(ctx context.Context, workspaceID, ordenID uuid.UUID) (*model.OrdenWorkspace, error) {
	ordenes, err := s.repo.ListOrdenes(ctx, workspaceID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	for i := range ordenes {
		if ordenes[i].ID == ordenID {
			return &ordenes[i], nil
		}
	}
	return nil, apierror.NotFound("orden no encontrada en el workspace")
}

func (s *workspaceService) limpiarSiVacio(ctx context.Context, workspaceID uuid.UUID) {
	if n, err := s.repo.ContarOrdenes(ctx, workspaceID); err == nil && n == 0 {
		s.LimpiarSolicitud(workspaceID)
	}
}
