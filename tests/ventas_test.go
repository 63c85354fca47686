package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

const clienteMostrador = "Público General"

type ventaFixture struct {
	svc        service.VentaService
	workspaces service.WorkspaceService
	cat        *stubCatalogo
	personas   *stubPersonaRepo
	productos  *stubProductoRepo
	historial  *stubHistorialRepo
	ventas     *stubOrdenVentaRepo
	wsRepo     *stubWorkspaceRepo
	inventario *stubInventarioRepo
	idem       *stubIdemRepo
}

func buildVentaSvc() *ventaFixture {
	f := &ventaFixture{
		cat:        newStubCatalogo(),
		personas:   newStubPersonaRepo(),
		productos:  newStubProductoRepo(),
		historial:  newStubHistorialRepo(),
		ventas:     newStubOrdenVentaRepo(),
		wsRepo:     newStubWorkspaceRepo(),
		inventario: newStubInventarioRepo(),
		idem:       newStubIdemRepo(),
	}
	seedCliente(f.personas, f.cat, clienteMostrador)
	invSvc := service.NewInventarioService(f.inventario, f.cat)
	f.workspaces = service.NewWorkspaceService(f.wsRepo, f.productos, f.historial)
	f.svc = service.NewVentaService(
		f.ventas, f.wsRepo, f.personas, f.cat,
		f.idem, invSvc, f.workspaces, nil, clienteMostrador,
	)
	return f
}

// prepararMesa creates a workspace with one draft line already priced.
func prepararMesa(t *testing.T, f *ventaFixture, permanente bool) (uuid.UUID, *model.Producto) {
	t.Helper()
	ctx := context.Background()

	ws, err := f.workspaces.Crear(ctx, dto.CrearWorkspaceRequest{Nombre: "Mesa 1", Permanente: permanente})
	require.NoError(t, err)
	wsID := uuid.MustParse(ws.ID)

	proveedor := seedProveedor(f.personas, f.cat, "Proveedor Casa")
	producto := seedProducto(f.productos, f.cat, proveedor.ID, "Taco de pastor")
	seedPrecio(f.historial, producto.ID, "30", time.Now().Add(-time.Hour))

	_, err = f.workspaces.AgregarProducto(ctx, wsID, dto.AgregarProductoRequest{
		ProductoID: producto.ID.String(),
		CantidadPz: dec("3"),
	})
	require.NoError(t, err)
	return wsID, producto
}

func finalizarReq(f *ventaFixture, clave string) dto.FinalizarVentaRequest {
	return dto.FinalizarVentaRequest{
		MetodoPagoID: f.cat.metodos[model.MetodoPagoEfectivo].ID.String(),
		UbicacionID:  f.cat.ubicacion.ID.String(),
		ClaveIdem:    clave,
	}
}

func TestFinalizarVentaUsaPrecioCongelado(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, producto := prepararMesa(t, f, false)

	// the price changes after the product was added; checkout must not re-price
	seedPrecio(f.historial, producto.ID, "45", time.Now())

	resp, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, finalizarReq(f, "venta-mesa1-0001"))
	require.NoError(t, err)

	assert.True(t, resp.TotalVenta.Equal(dec("90")), "total %s", resp.TotalVenta)
	require.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Detalles[0].Precio.Equal(dec("30")))
	assert.Equal(t, clienteMostrador, resp.Cliente)

	// the sale persisted with its detail pinned to the original snapshot
	require.Len(t, f.ventas.ventas, 1)
	for _, v := range f.ventas.ventas {
		require.Len(t, v.Detalles, 1)
		assert.Equal(t, f.historial.precios[0].ID, v.Detalles[0].HistorialPrecioID)
	}

	// full payment recorded in one exhibition
	require.Len(t, f.ventas.pagos, 1)
	assert.True(t, f.ventas.pagos[0].MontoPagado.Equal(dec("90")))
}

func TestFinalizarVentaDescuentaInventarioSinLimite(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, producto := prepararMesa(t, f, false)

	// only 1 pz on hand, the tab sells 3: stock goes negative and stays visible
	inv := &model.Inventario{
		ID:          uuid.New(),
		ProductoID:  producto.ID,
		UbicacionID: f.cat.ubicacion.ID,
		CantidadPz:  dec("1"),
	}
	f.inventario.inventarios[inv.ID] = inv

	_, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, finalizarReq(f, "venta-mesa1-0002"))
	require.NoError(t, err)

	assert.True(t, inv.CantidadPz.Equal(dec("-2")), "stock %s", inv.CantidadPz)

	require.Len(t, f.inventario.movimientos, 1)
	mov := f.inventario.movimientos[0]
	assert.True(t, mov.CantidadPz.Equal(dec("-3")))
	assert.Contains(t, mov.ClaveMovimiento, "venta:")
}

func TestFinalizarVentaEliminaWorkspaceEfimero(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, _ := prepararMesa(t, f, false)

	_, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, finalizarReq(f, "venta-mesa1-0003"))
	require.NoError(t, err)

	_, err = f.wsRepo.FindByID(ctx, wsID)
	require.Error(t, err)
	assert.Empty(t, f.wsRepo.ordenes)
}

func TestFinalizarVentaConservaWorkspacePermanente(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, _ := prepararMesa(t, f, true)

	_, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, finalizarReq(f, "venta-mesa1-0004"))
	require.NoError(t, err)

	// the table survives, emptied and back to disponible
	ws, err := f.workspaces.Obtener(ctx, wsID)
	require.NoError(t, err)
	assert.Equal(t, model.WorkspaceDisponible, ws.Estado)
	assert.Empty(t, f.wsRepo.ordenes)
}

func TestFinalizarVentaWorkspaceVacio(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()

	ws, err := f.workspaces.Crear(ctx, dto.CrearWorkspaceRequest{Nombre: "Mesa vacía"})
	require.NoError(t, err)

	_, err = f.svc.FinalizarVenta(ctx, uuid.New(), uuid.MustParse(ws.ID), finalizarReq(f, "venta-vacia-0001"))
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument), "got: %v", err)
	assert.Empty(t, f.ventas.ventas)
}

func TestFinalizarVentaClaveIdempotenciaRepetida(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, producto := prepararMesa(t, f, true)

	req := finalizarReq(f, "venta-repetida-001")
	_, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, req)
	require.NoError(t, err)

	// refill the tab and retry with the same key
	_, err = f.workspaces.AgregarProducto(ctx, wsID, dto.AgregarProductoRequest{
		ProductoID: producto.ID.String(),
		CantidadPz: dec("1"),
	})
	require.NoError(t, err)

	_, err = f.svc.FinalizarVenta(ctx, uuid.New(), wsID, req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindConflict), "got: %v", err)
	require.Len(t, f.ventas.ventas, 1)
}

func TestFinalizarVentaClienteExplicito(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, _ := prepararMesa(t, f, false)
	cliente := seedCliente(f.personas, f.cat, "María López")

	req := finalizarReq(f, "venta-maria-0001")
	clienteID := cliente.ID.String()
	req.ClienteID = &clienteID

	resp, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, req)
	require.NoError(t, err)
	assert.Equal(t, "María López", resp.Cliente)
	require.Len(t, f.ventas.pagos, 1)
	assert.Equal(t, cliente.ID, f.ventas.pagos[0].ClienteID)
}

func TestFinalizarVentaRechazaProveedorComoCliente(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()
	wsID, _ := prepararMesa(t, f, false)
	proveedor := seedProveedor(f.personas, f.cat, "Proveedor Equivocado")

	req := finalizarReq(f, "venta-mala-0001")
	proveedorID := proveedor.ID.String()
	req.ClienteID = &proveedorID

	_, err := f.svc.FinalizarVenta(ctx, uuid.New(), wsID, req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))
}

func TestListarVentasFiltraPorDia(t *testing.T) {
	f := buildVentaSvc()
	ctx := context.Background()

	hoy := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	ayer := hoy.AddDate(0, 0, -1)
	for _, fecha := range []time.Time{hoy, hoy.Add(time.Hour), ayer} {
		v := &model.OrdenVenta{
			ID:         uuid.New(),
			ClienteID:  uuid.New(),
			UsuarioID:  uuid.New(),
			FechaOrden: fecha,
			TotalVenta: dec("100"),
		}
		f.ventas.ventas[v.ID] = v
	}

	out, err := f.svc.ListarVentas(ctx, "2026-08-30")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = f.svc.ListarVentas(ctx, "30/08/2026")
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalidArgument))
}
