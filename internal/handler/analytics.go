package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type AnalyticsHandler struct{ svc service.AnalyticsService }

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Exportar godoc
// @Summary      Exportar ventas para el servicio de predicción
// @Description  Aplana las líneas de venta del rango con sus snapshots de
// @Description  precio y costo. Las líneas sin snapshot de costo llevan un
// @Description  estimado del 70% del precio.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string true "Fecha YYYY-MM-DD"
// @Param        hasta query string true "Fecha YYYY-MM-DD (inclusive)"
// @Success      200  {object} dto.VentaExportResponse
// @Failure      422  {object} apierror.APIError
// @Router       /api/analytics/export [get]
func (h *AnalyticsHandler) Exportar(c *gin.Context) {
	desde, err := time.Parse("2006-01-02", c.Query("desde"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha desde invalida, se espera YYYY-MM-DD"))
		return
	}
	hasta, err := time.Parse("2006-01-02", c.Query("hasta"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha hasta invalida, se espera YYYY-MM-DD"))
		return
	}
	resp, err := h.svc.ExportarVentas(c.Request.Context(), desde, hasta.AddDate(0, 0, 1))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProgramarExport godoc
// @Summary      Encolar export asíncrono hacia el servicio de predicción
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string true "Fecha YYYY-MM-DD"
// @Param        hasta query string true "Fecha YYYY-MM-DD (inclusive)"
// @Success      202  {object} map[string]string
// @Failure      422  {object} apierror.APIError
// @Router       /api/analytics/export [post]
func (h *AnalyticsHandler) ProgramarExport(c *gin.Context) {
	if err := h.svc.ProgramarExport(c.Request.Context(), c.Query("desde"), c.Query("hasta")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "encolado"})
}

// Predecir godoc
// @Summary      Solicitar predicción de demanda
// @Description  Relay al servicio de ML protegido por circuit breaker; la
// @Description  respuesta se devuelve sin reinterpretar.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PrediccionRequest true "Producto y horizonte"
// @Success      200  {object} dto.PrediccionResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/predicciones [post]
func (h *AnalyticsHandler) Predecir(c *gin.Context) {
	var req dto.PrediccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	raw, err := h.svc.Predecir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
