package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

// DeudasService projects the supplier debt report from the purchase and
// payment ledgers. Debt is always derived, never stored.
type DeudasService interface {
	ReporteDeudas(ctx context.Context) ([]dto.DeudaProveedorResponse, error)
	Estadisticas(ctx context.Context) (*dto.EstadisticasDeudasResponse, error)
}

type deudasService struct {
	ordenRepo   repository.OrdenCompraRepository
	personaRepo repository.PersonaRepository
	catalogo    repository.CatalogoRepository
}

func NewDeudasService(
	ordenRepo repository.OrdenCompraRepository,
	personaRepo repository.PersonaRepository,
	catalogo repository.CatalogoRepository,
) DeudasService {
	return &deudasService{ordenRepo: ordenRepo, personaRepo: personaRepo, catalogo: catalogo}
}

// ReporteDeudas lists every supplier that has purchase history, including the
// fully settled ones (deuda cero), sorted by debt descending.
func (s *deudasService) ReporteDeudas(ctx context.Context) ([]dto.DeudaProveedorResponse, error) {
	agregadas, err := s.ordenRepo.DeudasPorProveedor(ctx)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	cat, err := s.catalogo.CategoriaPersonaPorNombre(ctx, model.CategoriaProveedor)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	proveedores, err := s.personaRepo.ListByCategoria(ctx, cat.ID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	nombres := make(map[string]string, len(proveedores))
	for _, p := range proveedores {
		nombres[p.ID.String()] = p.Nombre
	}

	out := make([]dto.DeudaProveedorResponse, 0, len(agregadas))
	for _, d := range agregadas {
		id := d.ProveedorID.String()
		fila := dto.DeudaProveedorResponse{
			ProveedorID:  id,
			Proveedor:    nombres[id],
			TotalCompras: d.TotalCompras,
			TotalPagos:   d.TotalPagos,
			Deuda:        d.TotalCompras.Sub(d.TotalPagos),
			Estatus:      "verde",
		}
		if fila.Deuda.IsPositive() {
			fila.Estatus = "amarillo"
		}
		out = append(out, fila)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Deuda.Equal(out[j].Deuda) {
			return out[i].Deuda.GreaterThan(out[j].Deuda)
		}
		return out[i].Proveedor < out[j].Proveedor
	})
	return out, nil
}

// Estadisticas aggregates the report: total outstanding debt, how many
// suppliers still owe, the average over those (half-up, two decimals), and the
// largest debtor.
func (s *deudasService) Estadisticas(ctx context.Context) (*dto.EstadisticasDeudasResponse, error) {
	reporte, err := s.ReporteDeudas(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstadisticasDeudasResponse{
		DeudaTotal:    decimal.Zero,
		DeudaPromedio: decimal.Zero,
	}
	for i := range reporte {
		d := &reporte[i]
		if !d.Deuda.IsPositive() {
			continue
		}
		resp.DeudaTotal = resp.DeudaTotal.Add(d.Deuda)
		resp.ProveedoresConDeuda++
		if resp.MayorDeudor == nil || d.Deuda.GreaterThan(resp.MayorDeudor.Deuda) {
			resp.MayorDeudor = d
		}
	}
	if resp.ProveedoresConDeuda > 0 {
		resp.DeudaPromedio = resp.DeudaTotal.
			Div(decimal.NewFromInt(int64(resp.ProveedoresConDeuda))).
			Round(2)
	}
	return resp, nil
}
