package testimonials

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tacotango/pkg/catalog"
	"tacotango/pkg/models"
)

type Handler struct {
	Cache       *catalog.Cache
	Coordinator *catalog.Coordinator
}

func NewHandler(cache *catalog.Cache, coordinator *catalog.Coordinator) *Handler {
	return &Handler{Cache: cache, Coordinator: coordinator}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)    // GET /testimonials
	rg.POST("", h.submit) // POST /testimonials
}

// Only approved testimonials are public; moderation happens in the admin
// panel through the generic collection endpoints.
func (h *Handler) list(c *gin.Context) {
	snap := h.Cache.EnsureFresh(c.Request.Context(), models.CollectionTestimonials)
	if snap.Status == catalog.StatusError && len(snap.Items) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "testimonials unavailable"})
		return
	}

	visible := catalog.ApplyFilter(snap.Items, "status", models.TestimonialStatusApproved)

	c.JSON(http.StatusOK, gin.H{
		"status": snap.Status,
		"items":  models.TestimonialsFromItems(visible),
	})
}

type submitReq struct {
	AuthorName string `json:"author_name"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be 1-5"})
		return
	}
	if len(req.Quote) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote must be at most 500 chars"})
		return
	}

	created, err := h.Coordinator.Submit(c.Request.Context(), models.CollectionTestimonials, catalog.Mutation{
		Kind: catalog.MutationCreate,
		Fields: map[string]any{
			"author_name": strings.TrimSpace(req.AuthorName),
			"quote":       strings.TrimSpace(req.Quote),
			"rating":      req.Rating,
			"status":      models.TestimonialStatusPending,
		},
	})
	if err != nil {
		var validation *catalog.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "datastore unavailable, please retry"})
		return
	}

	c.JSON(http.StatusCreated, models.TestimonialFromItem(created))
}
