package tests

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories. Transactions degrade to direct calls: the stubs
// return nil from DB() and the services run their closures against a nil tx.

// stubCatalogo pre-seeds every lookup table with fixed ids.
type stubCatalogo struct {
	estados     map[string]*model.Estado
	roles       map[string]*model.Rol
	catPersonas map[string]*model.CategoriaPersona
	catProducto *model.CategoriaProducto
	metodos     map[string]*model.MetodoPago
	ubicacion   *model.Ubicacion
	tipos       map[string]*model.TipoMovimiento
}

func newStubCatalogo() *stubCatalogo {
	c := &stubCatalogo{
		estados:     map[string]*model.Estado{},
		roles:       map[string]*model.Rol{},
		catPersonas: map[string]*model.CategoriaPersona{},
		metodos:     map[string]*model.MetodoPago{},
		tipos:       map[string]*model.TipoMovimiento{},
	}
	for _, e := range []string{model.EstadoActivo, model.EstadoInactivo, model.EstadoPendiente, model.EstadoPagado} {
		c.estados[e] = &model.Estado{ID: uuid.New(), Estado: e}
	}
	for _, r := range []string{model.RolAdministrador, model.RolEmpleado} {
		c.roles[r] = &model.Rol{ID: uuid.New(), Rol: r}
	}
	for _, cp := range []string{model.CategoriaCliente, model.CategoriaProveedor} {
		c.catPersonas[cp] = &model.CategoriaPersona{ID: uuid.New(), Categoria: cp}
	}
	c.catProducto = &model.CategoriaProducto{ID: uuid.New(), Categoria: "Abarrotes"}
	for _, m := range []string{model.MetodoPagoEfectivo, "Tarjeta"} {
		c.metodos[m] = &model.MetodoPago{ID: uuid.New(), MetodoPago: m}
	}
	c.ubicacion = &model.Ubicacion{ID: uuid.New(), Nombre: "Bodega Central"}
	for _, t := range []string{model.MovimientoEntrada, model.MovimientoSalida, model.MovimientoAjuste} {
		c.tipos[t] = &model.TipoMovimiento{ID: uuid.New(), Movimiento: t}
	}
	return c
}

func (c *stubCatalogo) EstadoPorNombre(_ context.Context, nombre string) (*model.Estado, error) {
	if e, ok := c.estados[nombre]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) EstadoPorID(_ context.Context, id uuid.UUID) (*model.Estado, error) {
	for _, e := range c.estados {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) RolPorNombre(_ context.Context, nombre string) (*model.Rol, error) {
	if r, ok := c.roles[nombre]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) RolPorID(_ context.Context, id uuid.UUID) (*model.Rol, error) {
	for _, r := range c.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) CategoriaPersonaPorNombre(_ context.Context, nombre string) (*model.CategoriaPersona, error) {
	if cp, ok := c.catPersonas[nombre]; ok {
		return cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) CategoriaPersonaPorID(_ context.Context, id uuid.UUID) (*model.CategoriaPersona, error) {
	for _, cp := range c.catPersonas {
		if cp.ID == id {
			return cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) CategoriaProductoPorID(_ context.Context, id uuid.UUID) (*model.CategoriaProducto, error) {
	if c.catProducto.ID == id {
		return c.catProducto, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) MetodoPagoPorID(_ context.Context, id uuid.UUID) (*model.MetodoPago, error) {
	for _, m := range c.metodos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) MetodoPagoPorNombre(_ context.Context, nombre string) (*model.MetodoPago, error) {
	if m, ok := c.metodos[nombre]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) UbicacionPorID(_ context.Context, id uuid.UUID) (*model.Ubicacion, error) {
	if c.ubicacion.ID == id {
		return c.ubicacion, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) TipoMovimientoPorID(_ context.Context, id uuid.UUID) (*model.TipoMovimiento, error) {
	for _, t := range c.tipos {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) TipoMovimientoPorNombre(_ context.Context, nombre string) (*model.TipoMovimiento, error) {
	if t, ok := c.tipos[nombre]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *stubCatalogo) ListUbicaciones(_ context.Context) ([]model.Ubicacion, error) {
	return []model.Ubicacion{*c.ubicacion}, nil
}

func (c *stubCatalogo) ListMetodosPago(_ context.Context) ([]model.MetodoPago, error) {
	out := make([]model.MetodoPago, 0, len(c.metodos))
	for _, m := range c.metodos {
		out = append(out, *m)
	}
	return out, nil
}

func (c *stubCatalogo) ListCategoriasProducto(_ context.Context) ([]model.CategoriaProducto, error) {
	return []model.CategoriaProducto{*c.catProducto}, nil
}

var _ repository.CatalogoRepository = (*stubCatalogo)(nil)

// stubPersonaRepo holds personas in memory.
type stubPersonaRepo struct {
	personas map[uuid.UUID]*model.Persona
}

func newStubPersonaRepo() *stubPersonaRepo {
	return &stubPersonaRepo{personas: make(map[uuid.UUID]*model.Persona)}
}

func (r *stubPersonaRepo) Create(_ context.Context, p *model.Persona) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.personas[p.ID] = p
	return nil
}

func (r *stubPersonaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Persona, error) {
	p, ok := r.personas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPersonaRepo) FindByNombre(_ context.Context, nombre string) (*model.Persona, error) {
	for _, p := range r.personas {
		if p.Nombre == nombre {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPersonaRepo) Update(_ context.Context, p *model.Persona) error {
	r.personas[p.ID] = p
	return nil
}

func (r *stubPersonaRepo) UpdateEstado(_ context.Context, id, estadoID uuid.UUID) error {
	p, ok := r.personas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.EstadoID = estadoID
	return nil
}

func (r *stubPersonaRepo) ListByCategoria(_ context.Context, categoriaID uuid.UUID) ([]model.Persona, error) {
	var out []model.Persona
	for _, p := range r.personas {
		if p.CategoriaID == categoriaID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPersonaRepo) List(_ context.Context) ([]model.Persona, error) {
	var out []model.Persona
	for _, p := range r.personas {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPersonaRepo) DB() *gorm.DB { return nil }

var _ repository.PersonaRepository = (*stubPersonaRepo)(nil)

// stubProductoRepo holds productos in memory.
type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) UpdateEstado(_ context.Context, id, estadoID uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.EstadoID = estadoID
	return nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) ListByProveedor(_ context.Context, proveedorID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.ProveedorID == proveedorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubHistorialRepo keeps the append-only snapshot histories.
type stubHistorialRepo struct {
	precios []*model.HistorialPrecio
	costos  []*model.HistorialCosto
}

func newStubHistorialRepo() *stubHistorialRepo { return &stubHistorialRepo{} }

func (r *stubHistorialRepo) CreatePrecioTx(_ context.Context, _ *gorm.DB, h *model.HistorialPrecio) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.precios = append(r.precios, h)
	return nil
}

func (r *stubHistorialRepo) CreateCostoTx(_ context.Context, _ *gorm.DB, h *model.HistorialCosto) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.costos = append(r.costos, h)
	return nil
}

func (r *stubHistorialRepo) PrecioVigente(_ context.Context, productoID uuid.UUID) (*model.HistorialPrecio, error) {
	for i := len(r.precios) - 1; i >= 0; i-- {
		if r.precios[i].ProductoID == productoID {
			return r.precios[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubHistorialRepo) CostoVigente(_ context.Context, productoID uuid.UUID) (*model.HistorialCosto, error) {
	for i := len(r.costos) - 1; i >= 0; i-- {
		if r.costos[i].ProductoID == productoID {
			return r.costos[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubHistorialRepo) CostoVigenteEn(_ context.Context, productoID uuid.UUID, en time.Time) (*model.HistorialCosto, error) {
	for i := len(r.costos) - 1; i >= 0; i-- {
		if r.costos[i].ProductoID == productoID && !r.costos[i].FechaDeRegistro.After(en) {
			return r.costos[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubHistorialRepo) ListPrecios(_ context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error) {
	var out []model.HistorialPrecio
	for _, h := range r.precios {
		if h.ProductoID == productoID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHistorialRepo) ListCostos(_ context.Context, productoID uuid.UUID) ([]model.HistorialCosto, error) {
	var out []model.HistorialCosto
	for _, h := range r.costos {
		if h.ProductoID == productoID {
			out = append(out, *h)
		}
	}
	return out, nil
}

var _ repository.HistorialRepository = (*stubHistorialRepo)(nil)

// stubInventarioRepo keeps stock rows plus the movement ledger.
type stubInventarioRepo struct {
	inventarios map[uuid.UUID]*model.Inventario
	movimientos []model.MovimientoInventario
}

func newStubInventarioRepo() *stubInventarioRepo {
	return &stubInventarioRepo{inventarios: make(map[uuid.UUID]*model.Inventario)}
}

func (r *stubInventarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Inventario, error) {
	inv, ok := r.inventarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInventarioRepo) FindByProductoUbicacion(_ context.Context, productoID, ubicacionID uuid.UUID) (*model.Inventario, error) {
	for _, inv := range r.inventarios {
		if inv.ProductoID == productoID && inv.UbicacionID == ubicacionID {
			return inv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventarioRepo) FindForUpdateTx(ctx context.Context, _ *gorm.DB, productoID, ubicacionID uuid.UUID) (*model.Inventario, error) {
	return r.FindByProductoUbicacion(ctx, productoID, ubicacionID)
}

func (r *stubInventarioRepo) CreateTx(_ context.Context, _ *gorm.DB, inv *model.Inventario) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	r.inventarios[inv.ID] = inv
	return nil
}

func (r *stubInventarioRepo) SaveTx(_ context.Context, _ *gorm.DB, inv *model.Inventario) error {
	r.inventarios[inv.ID] = inv
	return nil
}

func (r *stubInventarioRepo) Save(_ context.Context, inv *model.Inventario) error {
	r.inventarios[inv.ID] = inv
	return nil
}

func (r *stubInventarioRepo) List(_ context.Context) ([]model.Inventario, error) {
	var out []model.Inventario
	for _, inv := range r.inventarios {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInventarioRepo) ListByUbicacion(_ context.Context, ubicacionID uuid.UUID) ([]model.Inventario, error) {
	var out []model.Inventario
	for _, inv := range r.inventarios {
		if inv.UbicacionID == ubicacionID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInventarioRepo) CreateMovimientoTx(_ context.Context, _ *gorm.DB, m *model.MovimientoInventario) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubInventarioRepo) ListMovimientos(_ context.Context, filtro repository.MovimientoFiltro) ([]model.MovimientoInventario, int64, error) {
	var filtered []model.MovimientoInventario
	for _, m := range r.movimientos {
		if filtro.ProductoID != nil && m.ProductoID != *filtro.ProductoID {
			continue
		}
		if filtro.Desde != nil && m.FechaMovimiento.Before(*filtro.Desde) {
			continue
		}
		if filtro.Hasta != nil && !m.FechaMovimiento.Before(*filtro.Hasta) {
			continue
		}
		filtered = append(filtered, m)
	}
	total := int64(len(filtered))
	start := (filtro.Page - 1) * filtro.Limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + filtro.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (r *stubInventarioRepo) DB() *gorm.DB { return nil }

var _ repository.InventarioRepository = (*stubInventarioRepo)(nil)

// stubIdemRepo rejects repeated (clave, operacion) pairs.
type stubIdemRepo struct {
	claves map[string]bool
}

func newStubIdemRepo() *stubIdemRepo { return &stubIdemRepo{claves: make(map[string]bool)} }

func (r *stubIdemRepo) ReservarTx(_ context.Context, _ *gorm.DB, clave, operacion string) error {
	k := clave + "|" + operacion
	if r.claves[k] {
		return repository.ErrClaveRepetida
	}
	r.claves[k] = true
	return nil
}

var _ repository.IdempotenciaRepository = (*stubIdemRepo)(nil)

// stubWorkspaceRepo holds workspaces and their draft lines.
type stubWorkspaceRepo struct {
	workspaces map[uuid.UUID]*model.Workspace
	ordenes    map[uuid.UUID]*model.OrdenWorkspace
}

func newStubWorkspaceRepo() *stubWorkspaceRepo {
	return &stubWorkspaceRepo{
		workspaces: make(map[uuid.UUID]*model.Workspace),
		ordenes:    make(map[uuid.UUID]*model.OrdenWorkspace),
	}
}

func (r *stubWorkspaceRepo) Create(_ context.Context, w *model.Workspace) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	r.workspaces[w.ID] = w
	return nil
}

func (r *stubWorkspaceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Workspace, error) {
	w, ok := r.workspaces[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubWorkspaceRepo) FindByIDForUpdate(ctx context.Context, _ *gorm.DB, id uuid.UUID) (*model.Workspace, error) {
	return r.FindByID(ctx, id)
}

func (r *stubWorkspaceRepo) Update(_ context.Context, w *model.Workspace) error {
	r.workspaces[w.ID] = w
	return nil
}

func (r *stubWorkspaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.workspaces, id)
	return nil
}

func (r *stubWorkspaceRepo) DeleteTx(ctx context.Context, _ *gorm.DB, id uuid.UUID) error {
	return r.Delete(ctx, id)
}

func (r *stubWorkspaceRepo) List(_ context.Context) ([]model.Workspace, error) {
	var out []model.Workspace
	for _, w := range r.workspaces {
		out = append(out, *w)
	}
	return out, nil
}

func (r *stubWorkspaceRepo) FindOrden(_ context.Context, workspaceID, productoID uuid.UUID) (*model.OrdenWorkspace, error) {
	for _, o := range r.ordenes {
		if o.WorkspaceID == workspaceID && o.ProductoID == productoID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWorkspaceRepo) CreateOrden(_ context.Context, o *model.OrdenWorkspace) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = time.Now()
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubWorkspaceRepo) UpdateOrden(_ context.Context, o *model.OrdenWorkspace) error {
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubWorkspaceRepo) DeleteOrden(_ context.Context, id uuid.UUID) error {
	delete(r.ordenes, id)
	return nil
}

func (r *stubWorkspaceRepo) ListOrdenes(_ context.Context, workspaceID uuid.UUID) ([]model.OrdenWorkspace, error) {
	var out []model.OrdenWorkspace
	for _, o := range r.ordenes {
		if o.WorkspaceID == workspaceID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubWorkspaceRepo) ListOrdenesTx(ctx context.Context, _ *gorm.DB, workspaceID uuid.UUID) ([]model.OrdenWorkspace, error) {
	return r.ListOrdenes(ctx, workspaceID)
}

func (r *stubWorkspaceRepo) DeleteOrdenesTx(_ context.Context, _ *gorm.DB, workspaceID uuid.UUID) error {
	for id, o := range r.ordenes {
		if o.WorkspaceID == workspaceID {
			delete(r.ordenes, id)
		}
	}
	return nil
}

func (r *stubWorkspaceRepo) ContarOrdenes(_ context.Context, workspaceID uuid.UUID) (int64, error) {
	var n int64
	for _, o := range r.ordenes {
		if o.WorkspaceID == workspaceID {
			n++
		}
	}
	return n, nil
}

func (r *stubWorkspaceRepo) DB() *gorm.DB { return nil }

var _ repository.WorkspaceRepository = (*stubWorkspaceRepo)(nil)

// stubOrdenCompraRepo keeps purchase orders and supplier cargos.
type stubOrdenCompraRepo struct {
	ordenes map[uuid.UUID]*model.OrdenCompra
	cargos  []model.HistorialCargoProveedor
}

func newStubOrdenCompraRepo() *stubOrdenCompraRepo {
	return &stubOrdenCompraRepo{ordenes: make(map[uuid.UUID]*model.OrdenCompra)}
}

func (r *stubOrdenCompraRepo) CreateTx(_ context.Context, _ *gorm.DB, oc *model.OrdenCompra) error {
	if oc.ID == uuid.Nil {
		oc.ID = uuid.New()
	}
	r.ordenes[oc.ID] = oc
	return nil
}

func (r *stubOrdenCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	oc, ok := r.ordenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return oc, nil
}

func (r *stubOrdenCompraRepo) ListByProveedor(_ context.Context, proveedorID uuid.UUID) ([]model.OrdenCompra, error) {
	var out []model.OrdenCompra
	for _, oc := range r.ordenes {
		if oc.ProveedorID == proveedorID {
			out = append(out, *oc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaOrden.Before(out[j].FechaOrden) })
	return out, nil
}

func (r *stubOrdenCompraRepo) PendientesForUpdate(_ context.Context, _ *gorm.DB, proveedorID, estadoPendienteID uuid.UUID) ([]model.OrdenCompra, error) {
	var out []model.OrdenCompra
	for _, oc := range r.ordenes {
		if oc.ProveedorID == proveedorID && oc.EstadoID == estadoPendienteID {
			out = append(out, *oc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaOrden.Before(out[j].FechaOrden) })
	return out, nil
}

func (r *stubOrdenCompraRepo) PendientesTx(ctx context.Context, tx *gorm.DB, proveedorID, estadoPendienteID uuid.UUID) ([]model.OrdenCompra, error) {
	return r.PendientesForUpdate(ctx, tx, proveedorID, estadoPendienteID)
}

func (r *stubOrdenCompraRepo) UpdateEstadoTx(_ context.Context, _ *gorm.DB, id, estadoID uuid.UUID) error {
	oc, ok := r.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	oc.EstadoID = estadoID
	return nil
}

func (r *stubOrdenCompraRepo) CreateCargoTx(_ context.Context, _ *gorm.DB, cargo *model.HistorialCargoProveedor) error {
	if cargo.ID == uuid.Nil {
		cargo.ID = uuid.New()
	}
	r.cargos = append(r.cargos, *cargo)
	return nil
}

func (r *stubOrdenCompraRepo) SumComprasTx(_ context.Context, _ *gorm.DB, proveedorID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, oc := range r.ordenes {
		if oc.ProveedorID == proveedorID {
			total = total.Add(oc.TotalCompra)
		}
	}
	return total, nil
}

func (r *stubOrdenCompraRepo) SumPagosTx(_ context.Context, _ *gorm.DB, proveedorID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range r.cargos {
		if c.ProveedorID == proveedorID {
			total = total.Add(c.MontoPagado)
		}
	}
	return total, nil
}

func (r *stubOrdenCompraRepo) SumPagosOrdenTx(_ context.Context, _ *gorm.DB, ordenID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range r.cargos {
		if c.OrdenCompraID == ordenID {
			total = total.Add(c.MontoPagado)
		}
	}
	return total, nil
}

func (r *stubOrdenCompraRepo) DeudasPorProveedor(_ context.Context) (map[uuid.UUID]*repository.DeudaAgregada, error) {
	out := make(map[uuid.UUID]*repository.DeudaAgregada)
	for _, oc := range r.ordenes {
		d, ok := out[oc.ProveedorID]
		if !ok {
			d = &repository.DeudaAgregada{ProveedorID: oc.ProveedorID}
			out[oc.ProveedorID] = d
		}
		d.TotalCompras = d.TotalCompras.Add(oc.TotalCompra)
	}
	for _, c := range r.cargos {
		d, ok := out[c.ProveedorID]
		if !ok {
			d = &repository.DeudaAgregada{ProveedorID: c.ProveedorID}
			out[c.ProveedorID] = d
		}
		d.TotalPagos = d.TotalPagos.Add(c.MontoPagado)
	}
	return out, nil
}

func (r *stubOrdenCompraRepo) ListPagos(_ context.Context, proveedorID uuid.UUID) ([]model.HistorialCargoProveedor, error) {
	var out []model.HistorialCargoProveedor
	for _, c := range r.cargos {
		if c.ProveedorID == proveedorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubOrdenCompraRepo) DB() *gorm.DB { return nil }

var _ repository.OrdenCompraRepository = (*stubOrdenCompraRepo)(nil)

// stubOrdenVentaRepo keeps finalized sales and client payments.
type stubOrdenVentaRepo struct {
	ventas map[uuid.UUID]*model.OrdenVenta
	pagos  []model.HistorialPagoCliente
	filas  []repository.VentaExportFila
}

func newStubOrdenVentaRepo() *stubOrdenVentaRepo {
	return &stubOrdenVentaRepo{ventas: make(map[uuid.UUID]*model.OrdenVenta)}
}

func (r *stubOrdenVentaRepo) CreateTx(_ context.Context, _ *gorm.DB, ov *model.OrdenVenta) error {
	if ov.ID == uuid.Nil {
		ov.ID = uuid.New()
	}
	r.ventas[ov.ID] = ov
	return nil
}

func (r *stubOrdenVentaRepo) CreatePagoTx(_ context.Context, _ *gorm.DB, pago *model.HistorialPagoCliente) error {
	if pago.ID == uuid.Nil {
		pago.ID = uuid.New()
	}
	r.pagos = append(r.pagos, *pago)
	return nil
}

func (r *stubOrdenVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrdenVenta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubOrdenVentaRepo) List(_ context.Context, desde, hasta time.Time) ([]model.OrdenVenta, error) {
	var out []model.OrdenVenta
	for _, v := range r.ventas {
		if !v.FechaOrden.Before(desde) && v.FechaOrden.Before(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubOrdenVentaRepo) ExportFilas(_ context.Context, desde, hasta time.Time) ([]repository.VentaExportFila, error) {
	var out []repository.VentaExportFila
	for _, f := range r.filas {
		if !f.FechaOrden.Before(desde) && f.FechaOrden.Before(hasta) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *stubOrdenVentaRepo) DB() *gorm.DB { return nil }

var _ repository.OrdenVentaRepository = (*stubOrdenVentaRepo)(nil)

// stubUsuarioRepo holds system users.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByNombre(_ context.Context, nombre string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Nombre == nombre {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) UpdateEstado(_ context.Context, id, estadoID uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.EstadoID = estadoID
	return nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProveedor(repo *stubPersonaRepo, cat *stubCatalogo, nombre string) *model.Persona {
	p := &model.Persona{
		ID:          uuid.New(),
		Nombre:      nombre,
		CategoriaID: cat.catPersonas[model.CategoriaProveedor].ID,
		EstadoID:    cat.estados[model.EstadoActivo].ID,
		Categoria:   cat.catPersonas[model.CategoriaProveedor],
		Estado:      cat.estados[model.EstadoActivo],
	}
	repo.personas[p.ID] = p
	return p
}

func seedCliente(repo *stubPersonaRepo, cat *stubCatalogo, nombre string) *model.Persona {
	p := &model.Persona{
		ID:          uuid.New(),
		Nombre:      nombre,
		CategoriaID: cat.catPersonas[model.CategoriaCliente].ID,
		EstadoID:    cat.estados[model.EstadoActivo].ID,
		Categoria:   cat.catPersonas[model.CategoriaCliente],
		Estado:      cat.estados[model.EstadoActivo],
	}
	repo.personas[p.ID] = p
	return p
}

func seedProducto(repo *stubProductoRepo, cat *stubCatalogo, proveedorID uuid.UUID, nombre string) *model.Producto {
	p := &model.Producto{
		ID:          uuid.New(),
		Nombre:      nombre,
		CategoriaID: cat.catProducto.ID,
		ProveedorID: proveedorID,
		EstadoID:    cat.estados[model.EstadoActivo].ID,
		Categoria:   cat.catProducto,
		Estado:      cat.estados[model.EstadoActivo],
	}
	repo.productos[p.ID] = p
	return p
}

func seedPrecio(repo *stubHistorialRepo, productoID uuid.UUID, precio string, fecha time.Time) *model.HistorialPrecio {
	h := &model.HistorialPrecio{
		ID:              uuid.New(),
		ProductoID:      productoID,
		Precio:          decimal.RequireFromString(precio),
		FechaDeRegistro: fecha,
	}
	repo.precios = append(repo.precios, h)
	return h
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
