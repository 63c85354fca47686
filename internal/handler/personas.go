package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type PersonasHandler struct{ svc service.PersonaService }

func NewPersonasHandler(svc service.PersonaService) *PersonasHandler {
	return &PersonasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear persona (cliente o proveedor)
// @Tags         personas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPersonaRequest true "Datos de la persona"
// @Success      201  {object} dto.PersonaResponse
// @Failure      422  {object} apierror.APIError
// @Router       /api/personas [post]
func (h *PersonasHandler) Crear(c *gin.Context) {
	var req dto.CrearPersonaRequest
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
// @Summary      Obtener persona por ID
// @Tags         personas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la persona"
// @Success      200  {object} dto.PersonaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/personas/{id} [get]
func (h *PersonasHandler) Obtener(c *gin.Context) {
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
// @Summary      Actualizar datos de una persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la persona"
// @Param        body body dto.ActualizarPersonaRequest true "Campos a actualizar"
// @Success      200  {object} dto.PersonaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/personas/{id} [put]
func (h *PersonasHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPersonaRequest
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

// Desactivar godoc
// @Summary      Desactivar persona (borrado lógico)
// @Tags         personas
// @Security     BearerAuth
// @Param        id path string true "UUID de la persona"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /api/personas/{id} [delete]
func (h *PersonasHandler) Desactivar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Listar godoc
// @Summary      Listar todas las personas
// @Tags         personas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.PersonaResponse
// @Router       /api/personas [get]
func (h *PersonasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarClientes godoc
// @Summary      Listar clientes activos
// @Tags         personas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.PersonaResponse
// @Router       /api/personas/clientes [get]
func (h *PersonasHandler) ListarClientes(c *gin.Context) {
	resp, err := h.svc.ListarClientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
