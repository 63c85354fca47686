package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

// OperacionRegistrarPago is the idempotency namespace for supplier payments.
const OperacionRegistrarPago = "registrar_pago"

type ComprasService interface {
	CrearOrdenCompra(ctx context.Context, usuarioID uuid.UUID, req dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error)
	ObtenerOrden(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error)
	ListarOrdenesProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.OrdenCompraResponse, error)
	CalcularDeudaProveedor(ctx context.Context, proveedorID uuid.UUID) (*dto.DeudaProveedorResponse, error)
	RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoProveedorResponse, error)
	ObtenerProveedores(ctx context.Context) ([]dto.PersonaResponse, error)
	ObtenerProductosProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.ProductoResponse, error)
	ListarPagosProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.PagoProveedorResponse, error)
}

type comprasService struct {
	ordenRepo    repository.OrdenCompraRepository
	personaRepo  repository.PersonaRepository
	productoRepo repository.ProductoRepository
	historial    repository.HistorialRepository
	catalogo     repository.CatalogoRepository
	idem         repository.IdempotenciaRepository
	inventario   InventarioService
	tolerancia   decimal.Decimal
}

func NewComprasService(
	ordenRepo repository.OrdenCompraRepository,
	personaRepo repository.PersonaRepository,
	productoRepo repository.ProductoRepository,
	historial repository.HistorialRepository,
	catalogo repository.CatalogoRepository,
	idem repository.IdempotenciaRepository,
	inventario InventarioService,
	tolerancia decimal.Decimal,
) ComprasService {
	return &comprasService{
		ordenRepo:    ordenRepo,
		personaRepo:  personaRepo,
		productoRepo: productoRepo,
		historial:    historial,
		catalogo:     catalogo,
		idem:         idem,
		inventario:   inventario,
		tolerancia:   tolerancia,
	}
}

// ── CrearOrdenCompra ─────────────────────────────────────────────────────────
// One ACID transaction:
//   1. snapshot a cost row per line
//   2. create the order with its detalles, estado Pendiente
//   3. register an Entrada movement per line (stock and ledger)
// The order total is Σ costo × (pz + kg), fixed at creation.

func (s *comprasService) CrearOrdenCompra(ctx context.Context, usuarioID uuid.UUID, req dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, apierror.InvalidArgument("proveedor_id inválido")
	}
	metodoPagoID, err := uuid.Parse(req.MetodoPagoID)
	if err != nil {
		return nil, apierror.InvalidArgument("metodo_pago_id inválido")
	}
	ubicacionID, err := uuid.Parse(req.UbicacionID)
	if err != nil {
		return nil, apierror.InvalidArgument("ubicacion_id inválido")
	}
	if len(req.Detalles) == 0 {
		return nil, apierror.InvalidArgument("la orden de compra requiere al menos un detalle")
	}

	proveedor, err := s.resolverProveedor(ctx, proveedorID)
	if err != nil {
		return nil, err
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
	estadoPendiente, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoPendiente)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	// Pre-flight line validation outside the TX
	type lineaResuelta struct {
		producto *model.Producto
		costo    decimal.Decimal
		pz, kg   decimal.Decimal
	}
	lineas := make([]lineaResuelta, 0, len(req.Detalles))
	for i, d := range req.Detalles {
		if !d.Costo.IsPositive() {
			return nil, apierror.InvalidArgument("detalle %d: el costo debe ser mayor a cero", i)
		}
		if d.CantidadPz.IsNegative() || d.CantidadKg.IsNegative() {
			return nil, apierror.InvalidArgument("detalle %d: las cantidades no pueden ser negativas", i)
		}
		if !d.CantidadPz.IsPositive() && !d.CantidadKg.IsPositive() {
			return nil, apierror.InvalidArgument("detalle %d: al menos una cantidad debe ser mayor a cero", i)
		}
		pid, err := uuid.Parse(d.ProductoID)
		if err != nil {
			return nil, apierror.InvalidArgument("detalle %d: producto_id inválido", i)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("producto %s no encontrado", d.ProductoID)
			}
			return nil, apierror.Unexpected(err)
		}
		if p.ProveedorID != proveedorID {
			return nil, apierror.InvalidArgument("el producto %s no pertenece al proveedor", p.Nombre)
		}
		lineas = append(lineas, lineaResuelta{producto: p, costo: d.Costo, pz: d.CantidadPz, kg: d.CantidadKg})
	}

	ahora := time.Now()
	orden := &model.OrdenCompra{
		ProveedorID:  proveedorID,
		FechaOrden:   ahora,
		EstadoID:     estadoPendiente.ID,
		MetodoPagoID: metodoPagoID,
	}

	err = runTx(ctx, s.ordenRepo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		detalles := make([]model.DetalleOrdenCompra, 0, len(lineas))
		for _, l := range lineas {
			snap := &model.HistorialCosto{
				ProductoID:      l.producto.ID,
				Costo:           l.costo,
				FechaDeRegistro: ahora,
			}
			if err := s.historial.CreateCostoTx(ctx, tx, snap); err != nil {
				return apierror.Unexpected(err)
			}
			total = total.Add(l.costo.Mul(l.pz.Add(l.kg)))
			detalles = append(detalles, model.DetalleOrdenCompra{
				ProductoID:       l.producto.ID,
				HistorialCostoID: snap.ID,
				CantidadPz:       l.pz,
				CantidadKg:       l.kg,
			})
		}

		orden.TotalCompra = total
		orden.Detalles = detalles
		if err := s.ordenRepo.CreateTx(ctx, tx, orden); err != nil {
			return apierror.Unexpected(err)
		}

		clave := fmt.Sprintf("compra:%s", orden.ID)
		for _, l := range lineas {
			err := s.inventario.RegistrarMovimientoTx(ctx, tx, MovimientoParams{
				ProductoID:  l.producto.ID,
				UbicacionID: ubicacionID,
				Tipo:        model.MovimientoEntrada,
				CantidadPz:  l.pz,
				CantidadKg:  l.kg,
				UsuarioID:   usuarioID,
				Clave:       clave,
				Fecha:       ahora,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ordenCompraToResponse(orden)
	resp.Proveedor = proveedor.Nombre
	resp.Estado = model.EstadoPendiente
	resp.MetodoPago = metodo.MetodoPago
	for i, l := range lineas {
		resp.Detalles[i].Producto = l.producto.Nombre
		resp.Detalles[i].Costo = l.costo
		resp.Detalles[i].Subtotal = l.costo.Mul(l.pz.Add(l.kg))
	}
	return resp, nil
}

// ── RegistrarPago ────────────────────────────────────────────────────────────
// Oldest order first, one ACID transaction:
//   1. reserve the idempotency key (replay ⇒ Conflict, rollback releases it)
//   2. lock the supplier's pending orders FOR UPDATE, fecha_orden ASC
//   3. with pagarTodoElTotal the monto becomes the full pending debt; reject
//      when monto exceeds total debt plus the rounding tolerance
//   4. walk orders oldest first, one cargo row per order touched; an order
//      whose outstanding reaches zero flips to Pagado
//
// Any excess absorbed by the tolerance lands on the last cargo so that the
// sum of cargos always equals the monto the supplier actually received.
// With ordenCompraID the payment goes to that order only, guarded against
// over-paying its own saldo.

func (s *comprasService) RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoProveedorResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, apierror.InvalidArgument("proveedor_id inválido")
	}
	metodoPagoID, err := uuid.Parse(req.MetodoPagoID)
	if err != nil {
		return nil, apierror.InvalidArgument("metodo_pago_id inválido")
	}
	var ordenObjetivoID *uuid.UUID
	if req.OrdenCompraID != nil {
		id, err := uuid.Parse(*req.OrdenCompraID)
		if err != nil {
			return nil, apierror.InvalidArgument("orden_compra_id inválido")
		}
		ordenObjetivoID = &id
	}
	if !req.PagarTodoElTotal && !req.Monto.IsPositive() {
		return nil, apierror.InvalidArgument("el monto del pago debe ser mayor a cero")
	}

	if _, err := s.resolverProveedor(ctx, proveedorID); err != nil {
		return nil, err
	}
	metodo, err := s.catalogo.MetodoPagoPorID(ctx, metodoPagoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("método de pago no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	estadoPendiente, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoPendiente)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	estadoPagado, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoPagado)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	ahora := time.Now()
	resp := &dto.PagoProveedorResponse{
		ProveedorID: proveedorID.String(),
		MetodoPago:  metodo.MetodoPago,
		Fecha:       ahora.Format(time.RFC3339),
	}

	err = runTx(ctx, s.ordenRepo.DB(), func(tx *gorm.DB) error {
		if err := s.idem.ReservarTx(ctx, tx, req.ClaveIdem, OperacionRegistrarPago); err != nil {
			if errors.Is(err, repository.ErrClaveRepetida) {
				return apierror.Conflict("pago ya registrado con esta clave de idempotencia")
			}
			return apierror.Unexpected(err)
		}

		pendientes, err := s.ordenRepo.PendientesForUpdate(ctx, tx, proveedorID, estadoPendiente.ID)
		if err != nil {
			return apierror.Unexpected(err)
		}

		compras, err := s.ordenRepo.SumComprasTx(ctx, tx, proveedorID)
		if err != nil {
			return apierror.Unexpected(err)
		}
		pagos, err := s.ordenRepo.SumPagosTx(ctx, tx, proveedorID)
		if err != nil {
			return apierror.Unexpected(err)
		}
		deuda := compras.Sub(pagos)

		if ordenObjetivoID != nil {
			return s.pagarOrdenObjetivo(ctx, tx, pagoObjetivo{
				pendientes:     pendientes,
				ordenID:        *ordenObjetivoID,
				proveedorID:    proveedorID,
				metodoPagoID:   metodoPagoID,
				estadoPagadoID: estadoPagado.ID,
				deuda:          deuda,
				monto:          req.Monto,
				pagarTodo:      req.PagarTodoElTotal,
				ahora:          ahora,
			}, resp)
		}

		monto := req.Monto
		if req.PagarTodoElTotal {
			// El monto se deriva de la deuda vigente dentro del lock, nunca
			// de una cifra que el cliente calculó antes.
			monto = deuda
			if !monto.IsPositive() {
				return apierror.InvalidArgument("el proveedor no tiene deuda pendiente")
			}
		}
		if monto.GreaterThan(deuda.Add(s.tolerancia)) {
			return apierror.Conflict("el pago de %s excede la deuda pendiente de %s", monto, deuda)
		}

		type cargoPlan struct {
			cargo   *model.HistorialCargoProveedor
			liquida bool
		}
		var planes []cargoPlan
		restante := monto
		for i := range pendientes {
			if !restante.IsPositive() {
				break
			}
			orden := &pendientes[i]
			pagado, err := s.ordenRepo.SumPagosOrdenTx(ctx, tx, orden.ID)
			if err != nil {
				return apierror.Unexpected(err)
			}
			saldo := orden.TotalCompra.Sub(pagado)
			if !saldo.IsPositive() {
				// Already covered by prior cargos but never flipped; repair.
				if err := s.ordenRepo.UpdateEstadoTx(ctx, tx, orden.ID, estadoPagado.ID); err != nil {
					return apierror.Unexpected(err)
				}
				continue
			}
			aplicar := decimal.Min(restante, saldo)
			planes = append(planes, cargoPlan{
				cargo: &model.HistorialCargoProveedor{
					ProveedorID:   proveedorID,
					OrdenCompraID: orden.ID,
					MontoPagado:   aplicar,
					MetodoPagoID:  metodoPagoID,
					Fecha:         ahora,
				},
				liquida: aplicar.Equal(saldo),
			})
			restante = restante.Sub(aplicar)
		}
		if restante.IsPositive() {
			// El excedente que la tolerancia absorbió se asienta en el último
			// cargo: la suma de cargos siempre cuadra con el monto recibido.
			if len(planes) == 0 {
				return apierror.Conflict("no hay orden pendiente a la cual aplicar el pago de %s", monto)
			}
			ultimo := planes[len(planes)-1].cargo
			ultimo.MontoPagado = ultimo.MontoPagado.Add(restante)
		}
		for _, p := range planes {
			if err := s.ordenRepo.CreateCargoTx(ctx, tx, p.cargo); err != nil {
				return apierror.Unexpected(err)
			}
			if p.liquida {
				if err := s.ordenRepo.UpdateEstadoTx(ctx, tx, p.cargo.OrdenCompraID, estadoPagado.ID); err != nil {
					return apierror.Unexpected(err)
				}
				resp.OrdenesLiquidadas = append(resp.OrdenesLiquidadas, p.cargo.OrdenCompraID.String())
			}
		}

		resp.MontoPagado = monto
		resp.DeudaRestante = deuda.Sub(monto)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

type pagoObjetivo struct {
	pendientes     []model.OrdenCompra
	ordenID        uuid.UUID
	proveedorID    uuid.UUID
	metodoPagoID   uuid.UUID
	estadoPagadoID uuid.UUID
	deuda          decimal.Decimal
	monto          decimal.Decimal
	pagarTodo      bool
	ahora          time.Time
}

// pagarOrdenObjetivo applies the payment to one named order. The order must be
// among the supplier's locked pendientes; the monto is checked against that
// order's own saldo, not against the total debt.
func (s *comprasService) pagarOrdenObjetivo(ctx context.Context, tx *gorm.DB, p pagoObjetivo, resp *dto.PagoProveedorResponse) error {
	var objetivo *model.OrdenCompra
	for i := range p.pendientes {
		if p.pendientes[i].ID == p.ordenID {
			objetivo = &p.pendientes[i]
			break
		}
	}
	if objetivo == nil {
		orden, err := s.ordenRepo.FindByID(ctx, p.ordenID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("orden de compra no encontrada")
			}
			return apierror.Unexpected(err)
		}
		if orden.ProveedorID != p.proveedorID {
			return apierror.InvalidArgument("la orden de compra no pertenece al proveedor")
		}
		return apierror.Conflict("la orden de compra ya está saldada")
	}

	pagado, err := s.ordenRepo.SumPagosOrdenTx(ctx, tx, p.ordenID)
	if err != nil {
		return apierror.Unexpected(err)
	}
	saldo := objetivo.TotalCompra.Sub(pagado)
	monto := p.monto
	if p.pagarTodo {
		monto = saldo
		if !monto.IsPositive() {
			return apierror.InvalidArgument("la orden de compra no tiene saldo pendiente")
		}
	}
	if monto.GreaterThan(saldo.Add(s.tolerancia)) {
		return apierror.Conflict("el pago de %s excede el saldo de %s de la orden", monto, saldo)
	}

	cargo := &model.HistorialCargoProveedor{
		ProveedorID:   p.proveedorID,
		OrdenCompraID: p.ordenID,
		MontoPagado:   monto,
		MetodoPagoID:  p.metodoPagoID,
		Fecha:         p.ahora,
	}
	if err := s.ordenRepo.CreateCargoTx(ctx, tx, cargo); err != nil {
		return apierror.Unexpected(err)
	}
	if monto.GreaterThanOrEqual(saldo) {
		if err := s.ordenRepo.UpdateEstadoTx(ctx, tx, p.ordenID, p.estadoPagadoID); err != nil {
			return apierror.Unexpected(err)
		}
		resp.OrdenesLiquidadas = append(resp.OrdenesLiquidadas, p.ordenID.String())
	}
	resp.MontoPagado = monto
	resp.DeudaRestante = p.deuda.Sub(monto)
	return nil
}

// CalcularDeudaProveedor reads both ledgers and the pending orders inside one
// transaction so the caller never sees compras without their pagos.
func (s *comprasService) CalcularDeudaProveedor(ctx context.Context, proveedorID uuid.UUID) (*dto.DeudaProveedorResponse, error) {
	proveedor, err := s.resolverProveedor(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	estadoPendiente, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoPendiente)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	resp := &dto.DeudaProveedorResponse{
		ProveedorID: proveedorID.String(),
		Proveedor:   proveedor.Nombre,
	}
	err = runTx(ctx, s.ordenRepo.DB(), func(tx *gorm.DB) error {
		compras, err := s.ordenRepo.SumComprasTx(ctx, tx, proveedorID)
		if err != nil {
			return apierror.Unexpected(err)
		}
		pagos, err := s.ordenRepo.SumPagosTx(ctx, tx, proveedorID)
		if err != nil {
			return apierror.Unexpected(err)
		}
		pendientes, err := s.ordenRepo.PendientesTx(ctx, tx, proveedorID, estadoPendiente.ID)
		if err != nil {
			return apierror.Unexpected(err)
		}

		resp.TotalCompras = compras
		resp.TotalPagos = pagos
		resp.Deuda = compras.Sub(pagos)
		resp.OrdenesEnDeuda = len(pendientes)
		if len(pendientes) > 0 {
			fecha := pendientes[0].FechaOrden.Format(time.RFC3339)
			resp.FechaOrdenMasAntigua = &fecha
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.Estatus = "amarillo"
	if !resp.Deuda.IsPositive() {
		resp.Estatus = "verde"
	}
	return resp, nil
}

func (s *comprasService) ObtenerOrden(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error) {
	orden, err := s.ordenRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("orden de compra no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}
	return ordenCompraToResponse(orden), nil
}

func (s *comprasService) ListarOrdenesProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.OrdenCompraResponse, error) {
	if _, err := s.resolverProveedor(ctx, proveedorID); err != nil {
		return nil, err
	}
	ordenes, err := s.ordenRepo.ListByProveedor(ctx, proveedorID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.OrdenCompraResponse, 0, len(ordenes))
	for i := range ordenes {
		out = append(out, *ordenCompraToResponse(&ordenes[i]))
	}
	return out, nil
}

func (s *comprasService) ObtenerProveedores(ctx context.Context) ([]dto.PersonaResponse, error) {
	cat, err := s.catalogo.CategoriaPersonaPorNombre(ctx, model.CategoriaProveedor)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	proveedores, err := s.personaRepo.ListByCategoria(ctx, cat.ID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.PersonaResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *personaToResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *comprasService) ObtenerProductosProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.ProductoResponse, error) {
	if _, err := s.resolverProveedor(ctx, proveedorID); err != nil {
		return nil, err
	}
	productos, err := s.productoRepo.ListByProveedor(ctx, proveedorID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *comprasService) ListarPagosProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.PagoProveedorResponse, error) {
	if _, err := s.resolverProveedor(ctx, proveedorID); err != nil {
		return nil, err
	}
	pagos, err := s.ordenRepo.ListPagos(ctx, proveedorID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.PagoProveedorResponse, 0, len(pagos))
	for _, p := range pagos {
		item := dto.PagoProveedorResponse{
			ID:          p.ID.String(),
			ProveedorID: p.ProveedorID.String(),
			MontoPagado: p.MontoPagado,
			Fecha:       p.Fecha.Format(time.RFC3339),
		}
		if p.MetodoPago != nil {
			item.MetodoPago = p.MetodoPago.MetodoPago
		}
		out = append(out, item)
	}
	return out, nil
}

// resolverProveedor loads the persona and verifies it is an active supplier.
func (s *comprasService) resolverProveedor(ctx context.Context, id uuid.UUID) (*model.Persona, error) {
	p, err := s.personaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("proveedor no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	if p.Categoria == nil || p.Categoria.Categoria != model.CategoriaProveedor {
		return nil, apierror.InvalidArgument("la persona %s no es un proveedor", p.Nombre)
	}
	if p.Estado != nil && p.Estado.Estado == model.EstadoInactivo {
		return nil, apierror.InvalidArgument("el proveedor %s está inactivo", p.Nombre)
	}
	return p, nil
}

func ordenCompraToResponse(oc *model.OrdenCompra) *dto.OrdenCompraResponse {
	resp := &dto.OrdenCompraResponse{
		ID:          oc.ID.String(),
		ProveedorID: oc.ProveedorID.String(),
		FechaOrden:  oc.FechaOrden.Format(time.RFC3339),
		TotalCompra: oc.TotalCompra,
	}
	if oc.Proveedor != nil {
		resp.Proveedor = oc.Proveedor.Nombre
	}
	if oc.Estado != nil {
		resp.Estado = oc.Estado.Estado
	}
	if oc.MetodoPago != nil {
		resp.MetodoPago = oc.MetodoPago.MetodoPago
	}
	resp.Detalles = make([]dto.DetalleCompraResponse, 0, len(oc.Detalles))
	for _, d := range oc.Detalles {
		item := dto.DetalleCompraResponse{
			ProductoID: d.ProductoID.String(),
			CantidadPz: d.CantidadPz,
			CantidadKg: d.CantidadKg,
		}
		if d.Producto != nil {
			item.Producto = d.Producto.Nombre
		}
		if d.HistorialCosto != nil {
			item.Costo = d.HistorialCosto.Costo
			item.Subtotal = d.HistorialCosto.Costo.Mul(d.CantidadPz.Add(d.CantidadKg))
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp
}
