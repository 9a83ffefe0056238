// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anvogue/anvogue-admin/internal/services"
	"github.com/anvogue/anvogue-admin/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Categories())
}

// GET /api/collections
func (h *CatalogHandler) GetCollections(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Collections())
}
