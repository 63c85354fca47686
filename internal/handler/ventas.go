package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Finalizar godoc
// @Summary      Finalizar venta de un workspace
// @Description  Convierte todas las líneas borrador en una venta ACID con los
// @Description  precios fijados al momento de agregar cada producto: nunca se
// @Description  recalculan al cobrar. Descuenta inventario, registra el pago y
// @Description  despacha el ticket PDF asíncrono.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del workspace"
// @Param        body body dto.FinalizarVentaRequest true "Método de pago y cliente"
// @Success      201  {object} dto.VentaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/workspaces/{id}/finalizar [post]
func (h *VentasHandler) Finalizar(c *gin.Context) {
	workspaceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FinalizarVenta(c.Request.Context(), currentUserID(c), workspaceID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/ventas/{id} [get]
func (h *VentasHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar ventas de un día
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200  {array} dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", fecha); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha invalida, se espera YYYY-MM-DD"))
		return
	}
	resp, err := h.svc.ListarVentas(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
