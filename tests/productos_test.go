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

type productoFixture struct {
	svc       service.ProductoService
	cat       *stubCatalogo
	personas  *stubPersonaRepo
	repo      *stubProductoRepo
	historial *stubHistorialRepo
}

func buildProductoSvc() *productoFixture {
	f := &productoFixture{
		cat:       newStubCatalogo(),
		personas:  newStubPersonaRepo(),
		repo:      newStubProductoRepo(),
		historial: newStubHistorialRepo(),
	}
	f.svc = service.NewProductoService(f.repo, f.historial, f.cat)
	return f
}

func (f *productoFixture) crear(t *testing.T, nombre, precio, costo string) *dto.ProductoResponse {
	t.Helper()
	proveedor := seedProveedor(f.personas, f.cat, "Proveedor de "+nombre)
	resp, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      nombre,
		CategoriaID: f.cat.catProducto.ID.String(),
		ProveedorID: proveedor.ID.String(),
		Precio:      dec(precio),
		Costo:       dec(costo),
	})
	require.NoError(t, err)
	return resp
}

func TestCrearProductoConSnapshotsIniciales(t *testing.T) {
	f := buildProductoSvc()

	resp := f.crear(t, "Queso Oaxaca", "120", "85")

	assert.Equal(t, model.EstadoActivo, resp.Estado)
	require.NotNil(t, resp.PrecioActual)
	assert.True(t, resp.PrecioActual.Equal(dec("120")))
	require.NotNil(t, resp.CostoActual)
	assert.True(t, resp.CostoActual.Equal(dec("85")))

	// un snapshot de cada historial desde el primer día
	require.Len(t, f.historial.precios, 1)
	require.Len(t, f.historial.costos, 1)
}

func TestCrearProductoRechazaValoresNoPositivos(t *testing.T) {
	f := buildProductoSvc()
	proveedor := seedProveedor(f.personas, f.cat, "Proveedor X")

	base := dto.CrearProductoRequest{
		Nombre:      "Inválido",
		CategoriaID: f.cat.catProducto.ID.String(),
		ProveedorID: proveedor.ID.String(),
	}

	req := base
	req.Precio = decimal.Zero
	req.Costo = dec("10")
	_, err := f.svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))

	req = base
	req.Precio = dec("10")
	req.Costo = dec("-5")
	_, err = f.svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))
}

func TestActualizarPrecioAgregaSnapshot(t *testing.T) {
	f := buildProductoSvc()
	ctx := context.Background()
	creado := f.crear(t, "Crema", "50", "30")
	id := uuid.MustParse(creado.ID)

	nuevo := dec("55")
	resp, err := f.svc.Actualizar(ctx, id, dto.ActualizarProductoRequest{Precio: &nuevo})
	require.NoError(t, err)
	require.NotNil(t, resp.PrecioActual)
	assert.True(t, resp.PrecioActual.Equal(dec("55")))

	// la historia conserva ambos valores en orden
	precios, err := f.svc.HistorialPrecios(ctx, id)
	require.NoError(t, err)
	require.Len(t, precios, 2)
	assert.True(t, precios[0].Precio.Equal(dec("50")))
	assert.True(t, precios[1].Precio.Equal(dec("55")))

	// el costo no cambió, su historial tampoco
	costos, err := f.svc.HistorialCostos(ctx, id)
	require.NoError(t, err)
	require.Len(t, costos, 1)
}

func TestActualizarConMismoValorNoDuplicaSnapshot(t *testing.T) {
	f := buildProductoSvc()
	ctx := context.Background()
	creado := f.crear(t, "Mantequilla", "45", "28")
	id := uuid.MustParse(creado.ID)

	mismo := dec("45.00")
	_, err := f.svc.Actualizar(ctx, id, dto.ActualizarProductoRequest{Precio: &mismo})
	require.NoError(t, err)

	precios, err := f.svc.HistorialPrecios(ctx, id)
	require.NoError(t, err)
	assert.Len(t, precios, 1, "un precio idéntico no agrega renglón")
}

func TestDesactivarProducto(t *testing.T) {
	f := buildProductoSvc()
	ctx := context.Background()
	creado := f.crear(t, "Yogurt", "25", "15")
	id := uuid.MustParse(creado.ID)

	require.NoError(t, f.svc.Desactivar(ctx, id))

	p, err := f.repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, f.cat.estados[model.EstadoInactivo].ID, p.EstadoID)

	// the price history survives deactivation
	precios, err := f.svc.HistorialPrecios(ctx, id)
	require.NoError(t, err)
	assert.Len(t, precios, 1)
}
