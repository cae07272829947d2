package offers

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
	rg.GET("", h.list) // GET /offers
}

func (h *Handler) list(c *gin.Context) {
	snap := h.Cache.EnsureFresh(c.Request.Context(), models.CollectionOffers)
	if snap.Status == catalog.StatusError && len(snap.Items) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "offers unavailable"})
		return
	}

	key := c.DefaultQuery("status", models.OfferStatusActive)
	visible := catalog.ApplyFilter(snap.Items, "status", key)

	c.JSON(http.StatusOK, gin.H{
		"status": snap.Status,
		"items":  models.OffersFromItems(visible),
	})
}
