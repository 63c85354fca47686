package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type DeudasHandler struct{ svc service.DeudasService }

func NewDeudasHandler(svc service.DeudasService) *DeudasHandler {
	return &DeudasHandler{svc: svc}
}

// Reporte godoc
// @Summary      Reporte de deudas por proveedor
// @Description  Incluye proveedores saldados (deuda cero); ordenado por deuda
// @Description  descendente.
// @Tags         deudas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.DeudaProveedorResponse
// @Router       /api/deudas [get]
func (h *DeudasHandler) Reporte(c *gin.Context) {
	resp, err := h.svc.ReporteDeudas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estadisticas godoc
// @Summary      Estadísticas agregadas de deudas
// @Description  Deuda total, número de proveedores con deuda, promedio y mayor
// @Description  deudor. El promedio considera sólo deudas positivas.
// @Tags         deudas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.EstadisticasDeudasResponse
// @Router       /api/deudas/estadisticas [get]
func (h *DeudasHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
