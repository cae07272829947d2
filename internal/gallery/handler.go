package gallery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tacotango/pkg/catalog"
	"tacotango/pkg/models"
)

type Handler struct {
	Cache *catalog.Cache
}

func NewHandler(cache *catalog.Cache) *Handler {
	return &Handler{Cache: cache}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list) // GET /gallery
}

func (h *Handler) list(c *gin.Context) {
	snap := h.Cache.EnsureFresh(c.Request.Context(), models.CollectionGalleryItems)
	if snap.Status == catalog.StatusError && len(snap.Items) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "gallery unavailable"})
		return
	}

	key := c.DefaultQuery("category", catalog.FilterAll)
	visible := catalog.ApplyFilter(snap.Items, "category", key)

	c.JSON(http.StatusOK, gin.H{
		"status": snap.Status,
		"items":  models.GalleryItemsFromItems(visible),
	})
}
