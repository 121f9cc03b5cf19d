package handler

import (
	"humanness-tasks/internal/service"
	"humanness-tasks/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service service.CatalogServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service service.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListProducts godoc
// @Summary      List catalog products
// @Description  Retrieve every product of the reading catalog in catalog order
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=models.ProductListResponse}
// @Failure      503  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	result, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
