package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type inventarioFixture struct {
	svc  service.InventarioService
	cat  *stubCatalogo
	repo *stubInventarioRepo
}

func buildInventarioSvc() *inventarioFixture {
	f := &inventarioFixture{
		cat:  newStubCatalogo(),
		repo: newStubInventarioRepo(),
	}
	f.svc = service.NewInventarioService(f.repo, f.cat)
	return f
}

func (f *inventarioFixture) movimiento(tipo string, productoID uuid.UUID, pz, kg string) dto.RegistrarMovimientoRequest {
	return dto.RegistrarMovimientoRequest{
		ProductoID:       productoID.String(),
		UbicacionID:      f.cat.ubicacion.ID.String(),
		TipoMovimientoID: f.cat.tipos[tipo].ID.String(),
		CantidadPz:       dec(pz),
		CantidadKg:       dec(kg),
		ClaveMovimiento:  "manual-" + uuid.NewString()[:8],
	}
}

func TestMovimientosAplicanSignoPorTipo(t *testing.T) {
	f := buildInventarioSvc()
	ctx := context.Background()
	usuario := uuid.New()
	producto := uuid.New()

	// Entrada crea el renglón de stock
	resp, err := f.svc.RegistrarMovimiento(ctx, usuario, f.movimiento(model.MovimientoEntrada, producto, "10", "0"))
	require.NoError(t, err)
	assert.True(t, resp.CantidadPz.Equal(dec("10")))

	// Salida resta; la magnitud llega positiva y el tipo pone el signo
	resp, err = f.svc.RegistrarMovimiento(ctx, usuario, f.movimiento(model.MovimientoSalida, producto, "4", "0"))
	require.NoError(t, err)
	assert.True(t, resp.CantidadPz.Equal(dec("-4")))

	// Ajuste pasa su signo tal cual
	resp, err = f.svc.RegistrarMovimiento(ctx, usuario, f.movimiento(model.MovimientoAjuste, producto, "-1.5", "0"))
	require.NoError(t, err)
	assert.True(t, resp.CantidadPz.Equal(dec("-1.5")))

	inv, err := f.repo.FindByProductoUbicacion(ctx, producto, f.cat.ubicacion.ID)
	require.NoError(t, err)
	assert.True(t, inv.CantidadPz.Equal(dec("4.5")), "stock %s", inv.CantidadPz)

	// ledger: one signed entry per movement
	require.Len(t, f.repo.movimientos, 3)
	assert.True(t, f.repo.movimientos[0].CantidadPz.Equal(dec("10")))
	assert.True(t, f.repo.movimientos[1].CantidadPz.Equal(dec("-4")))
	assert.True(t, f.repo.movimientos[2].CantidadPz.Equal(dec("-1.5")))
}

func TestSalidaPuedeDejarStockNegativo(t *testing.T) {
	f := buildInventarioSvc()
	ctx := context.Background()
	producto := uuid.New()

	_, err := f.svc.RegistrarMovimiento(ctx, uuid.New(), f.movimiento(model.MovimientoEntrada, producto, "2", "0"))
	require.NoError(t, err)
	_, err = f.svc.RegistrarMovimiento(ctx, uuid.New(), f.movimiento(model.MovimientoSalida, producto, "5", "0"))
	require.NoError(t, err)

	inv, err := f.repo.FindByProductoUbicacion(ctx, producto, f.cat.ubicacion.ID)
	require.NoError(t, err)
	assert.True(t, inv.CantidadPz.Equal(dec("-3")), "sin recorte a cero: %s", inv.CantidadPz)
}

func TestMovimientosInvalidos(t *testing.T) {
	f := buildInventarioSvc()
	ctx := context.Background()
	producto := uuid.New()

	casos := []struct {
		nombre string
		req    dto.RegistrarMovimientoRequest
	}{
		{"entrada negativa", f.movimiento(model.MovimientoEntrada, producto, "-1", "0")},
		{"salida negativa", f.movimiento(model.MovimientoSalida, producto, "0", "-2")},
		{"entrada en cero", f.movimiento(model.MovimientoEntrada, producto, "0", "0")},
		{"ajuste en cero", f.movimiento(model.MovimientoAjuste, producto, "0", "0")},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := f.svc.RegistrarMovimiento(ctx, uuid.New(), c.req)
			require.Error(t, err)
			assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument), "got: %v", err)
		})
	}
	assert.Empty(t, f.repo.movimientos)
}

func TestAlertasDeInventario(t *testing.T) {
	f := buildInventarioSvc()
	ctx := context.Background()

	seed := func(pz, min, max string) uuid.UUID {
		inv := &model.Inventario{
			ID:             uuid.New(),
			ProductoID:     uuid.New(),
			UbicacionID:    f.cat.ubicacion.ID,
			CantidadPz:     dec(pz),
			CantidadKg:     decimal.Zero,
			CantidadMinima: dec(min),
			CantidadMaxima: dec(max),
		}
		f.repo.inventarios[inv.ID] = inv
		return inv.ID
	}

	bajo := seed("2", "5", "50")
	exceso := seed("80", "5", "50")
	negativo := seed("-1", "5", "50")
	normal := seed("20", "5", "50")
	sinLimites := seed("0", "0", "0")

	out, err := f.svc.ListInventarios(ctx)
	require.NoError(t, err)

	alertas := make(map[string]string, len(out))
	for _, inv := range out {
		alertas[inv.ID] = inv.Alerta
	}
	assert.Equal(t, "bajo", alertas[bajo.String()])
	assert.Equal(t, "exceso", alertas[exceso.String()])
	assert.Equal(t, "negativo", alertas[negativo.String()])
	assert.Equal(t, "", alertas[normal.String()])
	assert.Equal(t, "", alertas[sinLimites.String()])
}

func TestActualizarLimites(t *testing.T) {
	f := buildInventarioSvc()
	ctx := context.Background()

	inv := &model.Inventario{
		ID:          uuid.New(),
		ProductoID:  uuid.New(),
		UbicacionID: f.cat.ubicacion.ID,
		CantidadPz:  dec("10"),
	}
	f.repo.inventarios[inv.ID] = inv

	err := f.svc.ActualizarLimites(ctx, inv.ID, dto.ActualizarLimitesRequest{
		CantidadMinima: dec("5"),
		CantidadMaxima: dec("100"),
	})
	require.NoError(t, err)
	assert.True(t, inv.CantidadMinima.Equal(dec("5")))
	assert.True(t, inv.CantidadMaxima.Equal(dec("100")))

	err = f.svc.ActualizarLimites(ctx, inv.ID, dto.ActualizarLimitesRequest{
		CantidadMinima: dec("30"),
		CantidadMaxima: dec("10"),
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))

	err = f.svc.ActualizarLimites(ctx, uuid.New(), dto.ActualizarLimitesRequest{})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestListMovimientosFiltraYPagina(t *testing.T) {
	f := buildInventarioSvc()
	ctx := context.Background()
	usuario := uuid.New()
	producto := uuid.New()
	otro := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := f.svc.RegistrarMovimiento(ctx, usuario, f.movimiento(model.MovimientoEntrada, producto, "1", "0"))
		require.NoError(t, err)
	}
	_, err := f.svc.RegistrarMovimiento(ctx, usuario, f.movimiento(model.MovimientoEntrada, otro, "1", "0"))
	require.NoError(t, err)

	out, err := f.svc.ListMovimientos(ctx, dto.MovimientoFilter{ProductoID: producto.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	assert.Len(t, out.Data, 3)

	out, err = f.svc.ListMovimientos(ctx, dto.MovimientoFilter{ProductoID: producto.String(), Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	assert.Len(t, out.Data, 1)

	_, err = f.svc.ListMovimientos(ctx, dto.MovimientoFilter{Desde: "no-es-fecha"})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))
}
