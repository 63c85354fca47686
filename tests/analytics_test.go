package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

func buildAnalyticsSvc() (service.AnalyticsService, *stubOrdenVentaRepo) {
	repo := newStubOrdenVentaRepo()
	return service.NewAnalyticsService(repo, nil, nil), repo
}

func TestExportarVentasEstimaCostosFaltantes(t *testing.T) {
	svc, repo := buildAnalyticsSvc()
	ctx := context.Background()

	fecha := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	conCosto := repository.VentaExportFila{
		OrdenVentaID: uuid.New(),
		FechaOrden:   fecha,
		ProductoID:   uuid.New(),
		Producto:     "Café molido",
		Categoria:    "Abarrotes",
		CantidadPz:   dec("2"),
		Precio:       dec("120"),
		Costo:        decimal.NewNullDecimal(dec("84.50")),
	}
	sinCosto := repository.VentaExportFila{
		OrdenVentaID: uuid.New(),
		FechaOrden:   fecha.Add(time.Hour),
		ProductoID:   uuid.New(),
		Producto:     "Pan dulce",
		Categoria:    "Panadería",
		CantidadPz:   dec("6"),
		Precio:       dec("12.33"),
	}
	repo.filas = []repository.VentaExportFila{conCosto, sinCosto}

	out, err := svc.ExportarVentas(ctx, fecha.AddDate(0, 0, -1), fecha.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, out.Filas, 2)

	assert.True(t, out.Filas[0].CostoEstimado.Equal(dec("84.50")))
	assert.True(t, out.Filas[0].CostoReal)

	// líneas sin snapshot de costo: 70% del precio, dos decimales
	// 12.33 × 0.70 = 8.631 → 8.63
	assert.True(t, out.Filas[1].CostoEstimado.Equal(dec("8.63")), "estimado %s", out.Filas[1].CostoEstimado)
	assert.False(t, out.Filas[1].CostoReal)
}

func TestExportarVentasRespetaElRango(t *testing.T) {
	svc, repo := buildAnalyticsSvc()
	ctx := context.Background()

	desde := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 0, 7)
	repo.filas = []repository.VentaExportFila{
		{OrdenVentaID: uuid.New(), FechaOrden: desde, ProductoID: uuid.New(), Precio: dec("10")},
		{OrdenVentaID: uuid.New(), FechaOrden: hasta, ProductoID: uuid.New(), Precio: dec("10")}, // fuera: fin exclusivo
		{OrdenVentaID: uuid.New(), FechaOrden: desde.AddDate(0, 0, -1), ProductoID: uuid.New(), Precio: dec("10")},
	}

	out, err := svc.ExportarVentas(ctx, desde, hasta)
	require.NoError(t, err)
	assert.Len(t, out.Filas, 1)

	_, err = svc.ExportarVentas(ctx, hasta, desde)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))
}

func TestProgramarExportValidaFechas(t *testing.T) {
	svc, _ := buildAnalyticsSvc()
	ctx := context.Background()

	err := svc.ProgramarExport(ctx, "no-es-fecha", "2026-06-30")
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))

	err = svc.ProgramarExport(ctx, "2026-06-30", "2026-06-01")
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))
}
