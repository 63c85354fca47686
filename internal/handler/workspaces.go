package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type WorkspacesHandler struct{ svc service.WorkspaceService }

func NewWorkspacesHandler(svc service.WorkspaceService) *WorkspacesHandler {
	return &WorkspacesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear workspace
// @Description  Un workspace es una cuenta abierta (mesa o pedido). Los
// @Description  permanentes sobreviven a la venta; los efímeros se eliminan al
// @Description  finalizar.
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearWorkspaceRequest true "Datos del workspace"
// @Success      201  {object} dto.WorkspaceResponse
// @Router       /api/workspaces [post]
func (h *WorkspacesHandler) Crear(c *gin.Context) {
	var req dto.CrearWorkspaceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary      Obtener workspace con su estado derivado
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del workspace"
// @Success      200  {object} dto.WorkspaceResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/workspaces/{id} [get]
func (h *WorkspacesHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Renombrar workspace o cambiar su permanencia
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del workspace"
// @Param        body body dto.ActualizarWorkspaceRequest true "Campos a actualizar"
// @Success      200  {object} dto.WorkspaceResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/workspaces/{id} [put]
func (h *WorkspacesHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarWorkspaceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar workspace
// @Description  Rechazado con 409 si el workspace aún tiene líneas borrador.
// @Tags         workspaces
// @Security     BearerAuth
// @Param        id path string true "UUID del workspace"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /api/workspaces/{id} [delete]
func (h *WorkspacesHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Listar godoc
// @Summary      Listar workspaces con estados derivados
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.WorkspaceResponse
// @Router       /api/workspaces [get]
func (h *WorkspacesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarProducto godoc
// @Summary      Agregar producto al workspace
// @Description  Las cantidades son deltas: repetir el producto acumula sobre la
// @Description  línea existente conservando el precio fijado la primera vez.
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del workspace"
// @Param        body body dto.AgregarProductoRequest true "Producto y cantidades"
// @Success      200  {object} dto.OrdenWorkspaceResponse
// @Failure      422  {object} apierror.APIError
// @Router       /api/workspaces/{id}/productos [post]
func (h *WorkspacesHandler) AgregarProducto(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarProducto(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarOrden godoc
// @Summary      Quitar una línea borrador del workspace
// @Tags         workspaces
// @Security     BearerAuth
// @Param        id       path string true "UUID del workspace"
// @Param        orden_id path string true "UUID de la línea"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /api/workspaces/{id}/ordenes/{orden_id} [delete]
func (h *WorkspacesHandler) EliminarOrden(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	ordenID, ok := pathUUID(c, "orden_id")
	if !ok {
		return
	}
	if err := h.svc.EliminarOrden(c.Request.Context(), id, ordenID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LimpiarOrdenes godoc
// @Summary      Vaciar todas las líneas borrador del workspace
// @Tags         workspaces
// @Security     BearerAuth
// @Param        id path string true "UUID del workspace"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /api/workspaces/{id}/ordenes [delete]
func (h *WorkspacesHandler) LimpiarOrdenes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.LimpiarOrdenes(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Ticket godoc
// @Summary      Previsualizar la cuenta del workspace
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del workspace"
// @Success      200  {object} dto.TicketWorkspaceResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/workspaces/{id}/ticket [get]
func (h *WorkspacesHandler) Ticket(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerTicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SolicitarCuenta godoc
// @Summary      Marcar el workspace como "cuenta solicitada"
// @Description  Señal efímera en memoria; se pierde al reiniciar el proceso.
// @Tags         workspaces
// @Security     BearerAuth
// @Param        id path string true "UUID del workspace"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /api/workspaces/{id}/solicitar-cuenta [post]
func (h *WorkspacesHandler) SolicitarCuenta(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.SolicitarCuenta(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
