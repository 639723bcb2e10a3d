package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/response"
	"voicefront/internal/handler/httperr"
	"voicefront/internal/usecase/queries"
)

type CatalogHandler struct {
	catalog *queries.CatalogQuery
}

func NewCatalogHandler(catalog *queries.CatalogQuery) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListItems godoc
//
//	@Summary	List bookable items
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	response.Voice
//	@Failure	503	{object}	response.Voice
//	@Router		/api/items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ItemsList(items))
}
