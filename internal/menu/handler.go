package menu

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
	rg.GET("", h.list) // GET /menu
}

// list serves the public menu: every category plus the available items,
// optionally narrowed to one category. ?category=all (or absent) means no
// filtering; matching is exact, the same equality the datastore applies.
func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	cats := h.Cache.EnsureFresh(ctx, models.CollectionMenuCategories)
	items := h.Cache.EnsureFresh(ctx, models.CollectionMenuItems)

	if items.Status == catalog.StatusError && len(items.Items) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu unavailable"})
		return
	}

	key := c.DefaultQuery("category", catalog.FilterAll)
	visible := catalog.ApplyFilter(items.Items, "category_id", key)

	out := make([]models.MenuItem, 0, len(visible))
	for _, it := range visible {
		m := models.MenuItemFromItem(it)
		if !m.IsAvailable {
			continue
		}
		out = append(out, m)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     items.Status,
		"categories": models.MenuCategoriesFromItems(cats.Items),
		"items":      out,
	})
}
