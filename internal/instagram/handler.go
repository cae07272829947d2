package instagram

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
	rg.GET("", h.list) // GET /instagram
}

func (h *Handler) list(c *gin.Context) {
	snap := h.Cache.EnsureFresh(c.Request.Context(), models.CollectionInstagramPosts)
	if snap.Status == catalog.StatusError && len(snap.Items) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "instagram feed unavailable"})
		return
	}

	posts := models.InstagramPostsFromItems(snap.Items)
	if c.Query("featured") == "1" {
		featured := make([]models.InstagramPost, 0, len(posts))
		for _, p := range posts {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}
		posts = featured
	}

	c.JSON(http.StatusOK, gin.H{
		"status": snap.Status,
		"items":  posts,
	})
}
