package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arta-api/internal/dto"
	"arta-api/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) GetProductMappings(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.catalogService.FindProductMappings(ctx)
	if err != nil {
		return internalError(c, "failed to read product mappings from the store", err)
	}

	return c.JSON(http.StatusOK, dto.ListProductMappingsResponse{
		Success:   true,
		TableName: result.TableName,
		Count:     result.Count,
		Items:     result.Items,
	})
}

func (h *CatalogHandler) GetRegions(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.catalogService.FindRegions(ctx)
	if err != nil {
		return internalError(c, "failed to read regions from the store", err)
	}

	return c.JSON(http.StatusOK, dto.ListRegionsResponse{
		Success:   true,
		TableName: result.TableName,
		Count:     result.Count,
		Items:     result.Items,
	})
}
