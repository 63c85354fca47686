package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

// CatalogosHandler serves the small seed catalogs the frontend needs to fill
// its selectors. Reads straight from the repository; no service layer needed.
type CatalogosHandler struct{ repo repository.CatalogoRepository }

func NewCatalogosHandler(repo repository.CatalogoRepository) *CatalogosHandler {
	return &CatalogosHandler{repo: repo}
}

// Ubicaciones godoc
// @Summary      Listar ubicaciones
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Ubicacion
// @Router       /api/catalogos/ubicaciones [get]
func (h *CatalogosHandler) Ubicaciones(c *gin.Context) {
	out, err := h.repo.ListUbicaciones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// MetodosPago godoc
// @Summary      Listar métodos de pago
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.MetodoPago
// @Router       /api/catalogos/metodos-pago [get]
func (h *CatalogosHandler) MetodosPago(c *gin.Context) {
	out, err := h.repo.ListMetodosPago(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CategoriasProducto godoc
// @Summary      Listar categorías de producto
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.CategoriaProducto
// @Router       /api/catalogos/categorias-producto [get]
func (h *CatalogosHandler) CategoriasProducto(c *gin.Context) {
	out, err := h.repo.ListCategoriasProducto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
