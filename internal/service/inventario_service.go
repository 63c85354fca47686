package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

// MovimientoParams is the internal request used when another service records a
// stock movement inside its own transaction (compras, ventas). Quantities are
// magnitudes; the type name decides the sign, except Ajuste which passes its
// sign through.
type MovimientoParams struct {
	ProductoID  uuid.UUID
	UbicacionID uuid.UUID
	Tipo        string // model.MovimientoEntrada | MovimientoSalida | MovimientoAjuste
	CantidadPz  decimal.Decimal
	CantidadKg  decimal.Decimal
	UsuarioID   uuid.UUID
	Clave       string
	Fecha       time.Time
}

type InventarioService interface {
	RegistrarMovimiento(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error)
	// RegistrarMovimientoTx applies one movement inside the caller's
	// transaction: locks the stock row, applies the signed delta with no
	// clamping, and appends the ledger entry.
	RegistrarMovimientoTx(ctx context.Context, tx *gorm.DB, p MovimientoParams) error
	ListInventarios(ctx context.Context) ([]dto.InventarioResponse, error)
	ListMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error)
	ActualizarLimites(ctx context.Context, inventarioID uuid.UUID, req dto.ActualizarLimitesRequest) error
}

type inventarioService struct {
	repo     repository.InventarioRepository
	catalogo repository.CatalogoRepository
}

func NewInventarioService(repo repository.InventarioRepository, catalogo repository.CatalogoRepository) InventarioService {
	return &inventarioService{repo: repo, catalogo: catalogo}
}

func (s *inventarioService) RegistrarMovimiento(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.InvalidArgument("producto_id inválido")
	}
	ubicacionID, err := uuid.Parse(req.UbicacionID)
	if err != nil {
		return nil, apierror.InvalidArgument("ubicacion_id inválido")
	}
	tipoID, err := uuid.Parse(req.TipoMovimientoID)
	if err != nil {
		return nil, apierror.InvalidArgument("tipo_movimiento_id inválido")
	}

	tipo, err := s.catalogo.TipoMovimientoPorID(ctx, tipoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("tipo de movimiento no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	switch tipo.Movimiento {
	case model.MovimientoEntrada, model.MovimientoSalida:
		if req.CantidadPz.IsNegative() || req.CantidadKg.IsNegative() {
			return nil, apierror.InvalidArgument("las cantidades de %s no pueden ser negativas", tipo.Movimiento)
		}
		if !req.CantidadPz.IsPositive() && !req.CantidadKg.IsPositive() {
			return nil, apierror.InvalidArgument("al menos una cantidad debe ser mayor a cero")
		}
	case model.MovimientoAjuste:
		if req.CantidadPz.IsZero() && req.CantidadKg.IsZero() {
			return nil, apierror.InvalidArgument("un ajuste requiere una cantidad distinta de cero")
		}
	default:
		return nil, apierror.InvalidArgument("tipo de movimiento desconocido: %s", tipo.Movimiento)
	}

	p := MovimientoParams{
		ProductoID:  productoID,
		UbicacionID: ubicacionID,
		Tipo:        tipo.Movimiento,
		CantidadPz:  req.CantidadPz,
		CantidadKg:  req.CantidadKg,
		UsuarioID:   usuarioID,
		Clave:       req.ClaveMovimiento,
		Fecha:       time.Now(),
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.RegistrarMovimientoTx(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}

	pz, kg := p.CantidadPz, p.CantidadKg
	if p.Tipo == model.MovimientoSalida {
		pz, kg = pz.Neg(), kg.Neg()
	}
	return &dto.MovimientoResponse{
		ProductoID:      productoID.String(),
		Tipo:            tipo.Movimiento,
		CantidadPz:      pz,
		CantidadKg:      kg,
		ClaveMovimiento: p.Clave,
		FechaMovimiento: p.Fecha.Format(time.RFC3339),
	}, nil
}

func (s *inventarioService) RegistrarMovimientoTx(ctx context.Context, tx *gorm.DB, p MovimientoParams) error {
	deltaPz, deltaKg := p.CantidadPz, p.CantidadKg
	if p.Tipo == model.MovimientoSalida {
		deltaPz, deltaKg = deltaPz.Neg(), deltaKg.Neg()
	}

	inv, err := s.repo.FindForUpdateTx(ctx, tx, p.ProductoID, p.UbicacionID)
	switch {
	case err == nil:
		// The running counters follow the ledger truthfully: a sale that
		// exceeds recorded stock drives them negative and stays visible as a
		// discrepancy instead of being silently absorbed.
		inv.CantidadPz = inv.CantidadPz.Add(deltaPz)
		inv.CantidadKg = inv.CantidadKg.Add(deltaKg)
		if err := s.repo.SaveTx(ctx, tx, inv); err != nil {
			return apierror.Unexpected(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		inv = &model.Inventario{
			ProductoID:     p.ProductoID,
			UbicacionID:    p.UbicacionID,
			CantidadPz:     deltaPz,
			CantidadKg:     deltaKg,
			CantidadMinima: decimal.Zero,
			CantidadMaxima: decimal.Zero,
		}
		if err := s.repo.CreateTx(ctx, tx, inv); err != nil {
			return apierror.Unexpected(err)
		}
	default:
		return apierror.Unexpected(err)
	}

	tipo, err := s.catalogo.TipoMovimientoPorNombre(ctx, p.Tipo)
	if err != nil {
		return apierror.Unexpected(err)
	}

	mov := &model.MovimientoInventario{
		ProductoID:       p.ProductoID,
		UbicacionID:      p.UbicacionID,
		TipoMovimientoID: tipo.ID,
		CantidadPz:       deltaPz,
		CantidadKg:       deltaKg,
		UsuarioID:        p.UsuarioID,
		ClaveMovimiento:  p.Clave,
		FechaMovimiento:  p.Fecha,
	}
	if err := s.repo.CreateMovimientoTx(ctx, tx, mov); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}

func (s *inventarioService) ListInventarios(ctx context.Context) ([]dto.InventarioResponse, error) {
	invs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	out := make([]dto.InventarioResponse, 0, len(invs))
	for _, inv := range invs {
		resp := dto.InventarioResponse{
			ID:             inv.ID.String(),
			ProductoID:     inv.ProductoID.String(),
			CantidadPz:     inv.CantidadPz,
			CantidadKg:     inv.CantidadKg,
			CantidadMinima: inv.CantidadMinima,
			CantidadMaxima: inv.CantidadMaxima,
			Alerta:         alertaInventario(&inv),
		}
		if inv.Producto != nil {
			resp.Producto = inv.Producto.Nombre
		}
		if inv.Ubicacion != nil {
			resp.Ubicacion = inv.Ubicacion.Nombre
		}
		out = append(out, resp)
	}
	return out, nil
}

// alertaInventario projects the stock alert. Negative wins over the min/max
// thresholds because it signals a ledger discrepancy, not just low stock.
func alertaInventario(inv *model.Inventario) string {
	total := inv.CantidadPz.Add(inv.CantidadKg)
	switch {
	case total.IsNegative():
		return "negativo"
	case inv.CantidadMinima.IsPositive() && total.LessThan(inv.CantidadMinima):
		return "bajo"
	case inv.CantidadMaxima.IsPositive() && total.GreaterThan(inv.CantidadMaxima):
		return "exceso"
	}
	return ""
}

func (s *inventarioService) ListMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	filtro := repository.MovimientoFiltro{Page: filter.Page, Limit: filter.Limit}
	if filtro.Page < 1 {
		filtro.Page = 1
	}
	if filtro.Limit < 1 {
		filtro.Limit = 50
	}
	if filter.ProductoID != "" {
		id, err := uuid.Parse(filter.ProductoID)
		if err != nil {
			return nil, apierror.InvalidArgument("producto_id inválido")
		}
		filtro.ProductoID = &id
	}
	if filter.Desde != "" {
		t, err := time.Parse("2006-01-02", filter.Desde)
		if err != nil {
			return nil, apierror.InvalidArgument("fecha desde inválida, se espera YYYY-MM-DD")
		}
		filtro.Desde = &t
	}
	if filter.Hasta != "" {
		t, err := time.Parse("2006-01-02", filter.Hasta)
		if err != nil {
			return nil, apierror.InvalidArgument("fecha hasta inválida, se espera YYYY-MM-DD")
		}
		h := t.AddDate(0, 0, 1) // inclusive end date
		filtro.Hasta = &h
	}

	movs, total, err := s.repo.ListMovimientos(ctx, filtro)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	data := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		resp := dto.MovimientoResponse{
			ID:              m.ID.String(),
			ProductoID:      m.ProductoID.String(),
			CantidadPz:      m.CantidadPz,
			CantidadKg:      m.CantidadKg,
			ClaveMovimiento: m.ClaveMovimiento,
			FechaMovimiento: m.FechaMovimiento.Format(time.RFC3339),
		}
		if m.Producto != nil {
			resp.Producto = m.Producto.Nombre
		}
		if m.Ubicacion != nil {
			resp.Ubicacion = m.Ubicacion.Nombre
		}
		if m.TipoMovimiento != nil {
			resp.Tipo = m.TipoMovimiento.Movimiento
		}
		if m.Usuario != nil {
			resp.Usuario = m.Usuario.Nombre
		}
		data = append(data, resp)
	}

	return &dto.MovimientoListResponse{
		Data:  data,
		Total: total,
		Page:  filtro.Page,
		Limit: filtro.Limit,
	}, nil
}

func (s *inventarioService) ActualizarLimites(ctx context.Context, inventarioID uuid.UUID, req dto.ActualizarLimitesRequest) error {
	if req.CantidadMaxima.IsPositive() && req.CantidadMinima.GreaterThan(req.CantidadMaxima) {
		return apierror.InvalidArgument("cantidad_minima no puede superar cantidad_maxima")
	}
	inv, err := s.repo.FindByID(ctx, inventarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("inventario no encontrado")
		}
		return apierror.Unexpected(err)
	}
	inv.CantidadMinima = req.CantidadMinima
	inv.CantidadMaxima = req.CantidadMaxima
	if err := s.repo.Save(ctx, inv); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}
