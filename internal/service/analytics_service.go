package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/infra"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/worker"
)

// factorCostoEstimado approximates the cost of sale lines that predate the
// first cost snapshot: 70% of the pinned sale price.
var factorCostoEstimado = decimal.New(70, -2)

type AnalyticsService interface {
	// ExportarVentas flattens the sale lines of [desde, hasta) with their
	// price and cost snapshots for the prediction service.
	ExportarVentas(ctx context.Context, desde, hasta time.Time) (*dto.VentaExportResponse, error)
	// ProgramarExport enqueues an async export job for the range.
	ProgramarExport(ctx context.Context, desde, hasta string) error
	// Predecir relays a prediction request to the ML service verbatim.
	Predecir(ctx context.Context, req dto.PrediccionRequest) (json.RawMessage, error)
}

type analyticsService struct {
	ventaRepo  repository.OrdenVentaRepository
	ml         *infra.MLClient
	dispatcher *worker.Dispatcher
}

func NewAnalyticsService(
	ventaRepo repository.OrdenVentaRepository,
	ml *infra.MLClient,
	dispatcher *worker.Dispatcher,
) AnalyticsService {
	return &analyticsService{ventaRepo: ventaRepo, ml: ml, dispatcher: dispatcher}
}

func (s *analyticsService) ExportarVentas(ctx context.Context, desde, hasta time.Time) (*dto.VentaExportResponse, error) {
	if !hasta.After(desde) {
		return nil, apierror.InvalidArgument("el rango de exportación está vacío")
	}

	filas, err := s.ventaRepo.ExportFilas(ctx, desde, hasta)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	resp := &dto.VentaExportResponse{
		Generado: time.Now().Format(time.RFC3339),
		Filas:    make([]dto.VentaExportRow, 0, len(filas)),
	}
	for _, f := range filas {
		row := dto.VentaExportRow{
			OrdenVentaID:   f.OrdenVentaID.String(),
			FechaOrden:     f.FechaOrden.Format(time.RFC3339),
			ProductoID:     f.ProductoID.String(),
			Producto:       f.Producto,
			Categoria:      f.Categoria,
			CantidadPz:     f.CantidadPz,
			CantidadKg:     f.CantidadKg,
			PrecioUnitario: f.Precio,
		}
		if f.Costo.Valid {
			row.CostoEstimado = f.Costo.Decimal
			row.CostoReal = true
		} else {
			row.CostoEstimado = f.Precio.Mul(factorCostoEstimado).Round(2)
		}
		resp.Filas = append(resp.Filas, row)
	}
	return resp, nil
}

func (s *analyticsService) ProgramarExport(ctx context.Context, desde, hasta string) error {
	d, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return apierror.InvalidArgument("fecha desde inválida, se espera YYYY-MM-DD")
	}
	h, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return apierror.InvalidArgument("fecha hasta inválida, se espera YYYY-MM-DD")
	}
	if h.Before(d) {
		return apierror.InvalidArgument("el rango de exportación está vacío")
	}
	job := worker.ExportJobPayload{Desde: desde, Hasta: hasta}
	if err := s.dispatcher.EnqueueExport(ctx, job); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}

func (s *analyticsService) Predecir(ctx context.Context, req dto.PrediccionRequest) (json.RawMessage, error) {
	if _, err := uuid.Parse(req.ProductoID); err != nil {
		return nil, apierror.InvalidArgument("producto_id inválido")
	}
	if req.Horizonte <= 0 {
		req.Horizonte = 7
	}

	raw, err := s.ml.Predecir(ctx, req)
	if err != nil {
		if errors.Is(err, infra.ErrCircuitOpen) {
			return nil, apierror.Conflict("el servicio de predicciones no está disponible")
		}
		return nil, apierror.Unexpected(err)
	}
	return raw, nil
}
