package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/worker"
)

// OperacionFinalizarVenta is the idempotency namespace for checkouts.
const OperacionFinalizarVenta = "finalizar_venta"

type VentaService interface {
	FinalizarVenta(ctx context.Context, usuarioID, workspaceID uuid.UUID, req dto.FinalizarVentaRequest) (*dto.VentaResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context, fecha string) ([]dto.VentaResponse, error)
}

type ventaService struct {
	ventaRepo      repository.OrdenVentaRepository
	wsRepo         repository.WorkspaceRepository
	personaRepo    repository.PersonaRepository
	catalogo       repository.CatalogoRepository
	idem           repository.IdempotenciaRepository
	inventario     InventarioService
	workspaces     WorkspaceService
	dispatcher     *worker.Dispatcher
	clienteDefecto string
}

func NewVentaService(
	ventaRepo repository.OrdenVentaRepository,
	wsRepo repository.WorkspaceRepository,
	personaRepo repository.PersonaRepository,
	catalogo repository.CatalogoRepository,
	idem repository.IdempotenciaRepository,
	inventario InventarioService,
	workspaces WorkspaceService,
	dispatcher *worker.Dispatcher,
	clienteDefecto string,
) VentaService {
	return &ventaService{
		ventaRepo:      ventaRepo,
		wsRepo:         wsRepo,
		personaRepo:    personaRepo,
		catalogo:       catalogo,
		idem:           idem,
		inventario:     inventario,
		workspaces:     workspaces,
		dispatcher:     dispatcher,
		clienteDefecto: clienteDefecto,
	}
}

// ── FinalizarVenta ───────────────────────────────────────────────────────────
// Converts every draft line of the workspace into an immutable sale, in one
// ACID transaction:
//  1. reserve the idempotency key (replay ⇒ Conflict)
//  2. lock the workspace FOR UPDATE; two concurrent checkouts serialize and
//     the loser finds the lines gone
//  3. total = Σ precio snapshot × (pz + kg) — checkout never re-prices
//  4. create the orden de venta with detalles, plus the single full payment
//  5. one Salida movement per line (stock may go negative, recorded as-is)
//  6. delete the draft lines; ephemeral workspaces are deleted with them
// After commit the bill-request flag clears and a ticket job is enqueued.

func (s *ventaService) FinalizarVenta(ctx context.Context, usuarioID, workspaceID uuid.UUID, req dto.FinalizarVentaRequest) (*dto.VentaResponse, error) {
	metodoPagoID, err := uuid.Parse(req.MetodoPagoID)
	if err != nil {
		return nil, apierror.InvalidArgument("metodo_pago_id inválido")
	}
	ubicacionID, err := uuid.Parse(req.UbicacionID)
	if err != nil {
		return nil, apierror.InvalidArgument("ubicacion_id inválido")
	}

	metodo, err := s.catalogo.MetodoPagoPorID(ctx, metodoPagoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("método de pago no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	if _, err := s.catalogo.UbicacionPorID(ctx, ubicacionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("ubicación no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}

	cliente, err := s.resolverCliente(ctx, req.ClienteID)
	if err != nil {
		return nil, err
	}

	if _, err := s.wsRepo.FindByID(ctx, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("workspace no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	// Pre-flight outside the TX: an empty tab is a caller mistake. Inside the
	// TX the same condition means a concurrent checkout won the race.
	pre, err := s.wsRepo.ListOrdenes(ctx, workspaceID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	if len(pre) == 0 {
		return nil, apierror.InvalidArgument("el workspace no tiene productos para finalizar")
	}

	ahora := time.Now()
	venta := &model.OrdenVenta{
		ClienteID:    cliente.ID,
		UsuarioID:    usuarioID,
		MetodoPagoID: metodoPagoID,
		FechaOrden:   ahora,
	}
	var lineas []model.OrdenWorkspace

	err = runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		if err := s.idem.ReservarTx(ctx, tx, req.ClaveIdem, OperacionFinalizarVenta); err != nil {
			if errors.Is(err, repository.ErrClaveRepetida) {
				return apierror.Conflict("venta ya finalizada con esta clave de idempotencia")
			}
			return apierror.Unexpected(err)
		}

		w, err := s.wsRepo.FindByIDForUpdate(ctx, tx, workspaceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Conflict("el workspace fue finalizado concurrentemente")
			}
			return apierror.Unexpected(err)
		}

		lineas, err = s.wsRepo.ListOrdenesTx(ctx, tx, workspaceID)
		if err != nil {
			return apierror.Unexpected(err)
		}
		if len(lineas) == 0 {
			return apierror.Conflict("el workspace fue finalizado concurrentemente")
		}

		total := decimal.Zero
		detalles := make([]model.DetalleOrdenVenta, 0, len(lineas))
		for _, l := range lineas {
			if l.HistorialPrecio == nil {
				return apierror.Unexpected(fmt.Errorf("orden workspace %s sin snapshot de precio", l.ID))
			}
			total = total.Add(l.HistorialPrecio.Precio.Mul(l.CantidadPz.Add(l.CantidadKg)))
			detalles = append(detalles, model.DetalleOrdenVenta{
				ProductoID:        l.ProductoID,
				HistorialPrecioID: l.HistorialPrecioID,
				CantidadPz:        l.CantidadPz,
				CantidadKg:        l.CantidadKg,
			})
		}

		venta.TotalVenta = total
		venta.Detalles = detalles
		if err := s.ventaRepo.CreateTx(ctx, tx, venta); err != nil {
			return apierror.Unexpected(err)
		}

		pago := &model.HistorialPagoCliente{
			ClienteID:    cliente.ID,
			OrdenVentaID: venta.ID,
			MontoPagado:  total,
			Fecha:        ahora,
		}
		if err := s.ventaRepo.CreatePagoTx(ctx, tx, pago); err != nil {
			return apierror.Unexpected(err)
		}

		clave := fmt.Sprintf("venta:%s", venta.ID)
		for _, l := range lineas {
			err := s.inventario.RegistrarMovimientoTx(ctx, tx, MovimientoParams{
				ProductoID:  l.ProductoID,
				UbicacionID: ubicacionID,
				Tipo:        model.MovimientoSalida,
				CantidadPz:  l.CantidadPz,
				CantidadKg:  l.CantidadKg,
				UsuarioID:   usuarioID,
				Clave:       clave,
				Fecha:       ahora,
			})
			if err != nil {
				return err
			}
		}

		if err := s.wsRepo.DeleteOrdenesTx(ctx, tx, workspaceID); err != nil {
			return apierror.Unexpected(err)
		}
		if !w.Permanente {
			if err := s.wsRepo.DeleteTx(ctx, tx, workspaceID); err != nil {
				return apierror.Unexpected(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.workspaces.LimpiarSolicitud(workspaceID)

	if s.dispatcher != nil {
		job := worker.TicketJobPayload{VentaID: venta.ID.String(), ClienteEmail: req.ClienteEmail}
		if err := s.dispatcher.EnqueueTicket(ctx, job); err != nil {
			log.Warn().Err(err).Str("venta_id", venta.ID.String()).Msg("no se pudo encolar el ticket")
		}
	}

	resp := &dto.VentaResponse{
		ID:         venta.ID.String(),
		ClienteID:  cliente.ID.String(),
		Cliente:    cliente.Nombre,
		UsuarioID:  usuarioID.String(),
		MetodoPago: metodo.MetodoPago,
		FechaOrden: ahora.Format(time.RFC3339),
		TotalVenta: venta.TotalVenta,
		Detalles:   make([]dto.DetalleVentaResponse, 0, len(lineas)),
	}
	for _, l := range lineas {
		item := dto.DetalleVentaResponse{
			ProductoID: l.ProductoID.String(),
			CantidadPz: l.CantidadPz,
			CantidadKg: l.CantidadKg,
		}
		if l.Producto != nil {
			item.Producto = l.Producto.Nombre
		}
		if l.HistorialPrecio != nil {
			item.Precio = l.HistorialPrecio.Precio
			item.Subtotal = l.HistorialPrecio.Precio.Mul(l.CantidadPz.Add(l.CantidadKg))
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("venta no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}
	return ventaToResponse(venta), nil
}

// ListarVentas returns the sales of one day (YYYY-MM-DD, empty = today).
func (s *ventaService) ListarVentas(ctx context.Context, fecha string) ([]dto.VentaResponse, error) {
	dia := time.Now()
	if fecha != "" {
		t, err := time.Parse("2006-01-02", fecha)
		if err != nil {
			return nil, apierror.InvalidArgument("fecha inválida, se espera YYYY-MM-DD")
		}
		dia = t
	}
	desde := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	hasta := desde.AddDate(0, 0, 1)

	ventas, err := s.ventaRepo.List(ctx, desde, hasta)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out, nil
}

func (s *ventaService) resolverCliente(ctx context.Context, clienteID *string) (*model.Persona, error) {
	if clienteID == nil || *clienteID == "" {
		cliente, err := s.personaRepo.FindByNombre(ctx, s.clienteDefecto)
		if err != nil {
			return nil, apierror.Unexpected(fmt.Errorf("cliente por defecto %q no existe: %w", s.clienteDefecto, err))
		}
		return cliente, nil
	}
	id, err := uuid.Parse(*clienteID)
	if err != nil {
		return nil, apierror.InvalidArgument("cliente_id inválido")
	}
	cliente, err := s.personaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("cliente no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	if cliente.Categoria != nil && cliente.Categoria.Categoria != model.CategoriaCliente {
		return nil, apierror.InvalidArgument("la persona %s no es un cliente", cliente.Nombre)
	}
	return cliente, nil
}

func ventaToResponse(v *model.OrdenVenta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:         v.ID.String(),
		ClienteID:  v.ClienteID.String(),
		UsuarioID:  v.UsuarioID.String(),
		FechaOrden: v.FechaOrden.Format(time.RFC3339),
		TotalVenta: v.TotalVenta,
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nombre
	}
	if v.MetodoPago != nil {
		resp.MetodoPago = v.MetodoPago.MetodoPago
	}
	resp.Detalles = make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		item := dto.DetalleVentaResponse{
			ProductoID: d.ProductoID.String(),
			CantidadPz: d.CantidadPz,
			CantidadKg: d.CantidadKg,
		}
		if d.Producto != nil {
			item.Producto = d.Producto.Nombre
		}
		if d.HistorialPrecio != nil {
			item.Precio = d.HistorialPrecio.Precio
			item.Subtotal = d.HistorialPrecio.Precio.Mul(d.CantidadPz.Add(d.CantidadKg))
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp
}
