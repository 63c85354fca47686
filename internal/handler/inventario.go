package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento manual de inventario
// @Description  Entrada, Salida o Ajuste. El stock resultante se registra tal
// @Description  cual, incluso negativo: el ledger refleja la realidad, no la
// @Description  recorta.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarMovimientoRequest true "Datos del movimiento"
// @Success      201  {object} dto.MovimientoResponse
// @Failure      422  {object} apierror.APIError
// @Router       /api/inventarios/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar inventarios con alertas
// @Description  Alerta "bajo" bajo el mínimo, "exceso" sobre el máximo,
// @Description  "negativo" bajo cero.
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.InventarioResponse
// @Router       /api/inventarios [get]
func (h *InventarioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListInventarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimientos godoc
// @Summary      Consultar el ledger de movimientos
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        producto_id query string false "Filtrar por producto"
// @Param        desde       query string false "Fecha YYYY-MM-DD"
// @Param        hasta       query string false "Fecha YYYY-MM-DD"
// @Param        page        query int    false "Página (default 1)"
// @Param        limit       query int    false "Registros por página (default 50)"
// @Success      200  {object} dto.MovimientoListResponse
// @Router       /api/inventarios/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtro invalido"))
		return
	}
	resp, err := h.svc.ListMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarLimites godoc
// @Summary      Actualizar mínimo y máximo de un inventario
// @Tags         inventario
// @Accept       json
// @Security     BearerAuth
// @Param        id   path string true "UUID del inventario"
// @Param        body body dto.ActualizarLimitesRequest true "Límites"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /api/inventarios/{id}/limites [put]
func (h *InventarioHandler) ActualizarLimites(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarLimitesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarLimites(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
