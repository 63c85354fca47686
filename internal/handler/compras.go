package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type ComprasHandler struct{ svc service.ComprasService }

func NewComprasHandler(svc service.ComprasService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// CrearOrden godoc
// @Summary      Registrar orden de compra
// @Description  Crea la orden con snapshots de costo por línea, suma la deuda
// @Description  del proveedor y registra las entradas de inventario.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearOrdenCompraRequest true "Detalle de la compra"
// @Success      201  {object} dto.OrdenCompraResponse
// @Failure      422  {object} apierror.APIError
// @Router       /api/compras [post]
func (h *ComprasHandler) CrearOrden(c *gin.Context) {
	var req dto.CrearOrdenCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearOrdenCompra(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerOrden godoc
// @Summary      Obtener orden de compra
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la orden"
// @Success      200  {object} dto.OrdenCompraResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/compras/{id} [get]
func (h *ComprasHandler) ObtenerOrden(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerOrden(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarOrdenesProveedor godoc
// @Summary      Órdenes de compra de un proveedor
// @Description  Ordenadas de la más antigua a la más reciente.
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200  {array} dto.OrdenCompraResponse
// @Router       /api/proveedores/{id}/compras [get]
func (h *ComprasHandler) ListarOrdenesProveedor(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarOrdenesProveedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deuda godoc
// @Summary      Deuda actual de un proveedor
// @Description  Deuda = Σ compras − Σ pagos, derivada siempre del ledger.
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200  {object} dto.DeudaProveedorResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/proveedores/{id}/deuda [get]
func (h *ComprasHandler) Deuda(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.CalcularDeudaProveedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarPago godoc
// @Summary      Registrar pago a proveedor
// @Description  Liquida deuda de la orden más antigua a la más reciente bajo
// @Description  bloqueo. Con pagar_todo_el_total el monto se deriva de la deuda
// @Description  vigente; con orden_compra_id el pago se aplica solo a esa
// @Description  orden. Rechaza pagos mayores a la deuda y reintentos con la
// @Description  misma clave de idempotencia.
// @Failure      404  {object} apierror.APIError
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarPagoRequest true "Datos del pago"
// @Success      201  {object} dto.PagoProveedorResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/pagos [post]
func (h *ComprasHandler) RegistrarPago(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPagosProveedor godoc
// @Summary      Pagos registrados a un proveedor
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200  {array} dto.PagoProveedorResponse
// @Router       /api/proveedores/{id}/pagos [get]
func (h *ComprasHandler) ListarPagosProveedor(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPagosProveedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarProveedores godoc
// @Summary      Listar proveedores activos
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.PersonaResponse
// @Router       /api/proveedores [get]
func (h *ComprasHandler) ListarProveedores(c *gin.Context) {
	resp, err := h.svc.ObtenerProveedores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosProveedor godoc
// @Summary      Productos asociados a un proveedor
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200  {array} dto.ProductoResponse
// @Router       /api/proveedores/{id}/productos [get]
func (h *ComprasHandler) ProductosProveedor(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerProductosProveedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
