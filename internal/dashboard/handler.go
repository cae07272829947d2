package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tacotango/pkg/catalog"
	"tacotango/pkg/models"
)

type Handler struct {
	Projector *catalog.Projector
}

func NewHandler(projector *catalog.Projector) *Handler {
	return &Handler{Projector: projector}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.overview)
}

// overview mirrors the admin landing page: a handful of counts recomputed
// on every request, nothing cached.
func (h *Handler) overview(c *gin.Context) {
	counts, err := h.Projector.Counts(c.Request.Context(),
		catalog.CountQuery{Key: "menu_items", Collection: models.CollectionMenuItems},
		catalog.CountQuery{Key: "gallery_items", Collection: models.CollectionGalleryItems},
		catalog.CountQuery{Key: "bookings_total", Collection: models.CollectionBookings},
		catalog.CountQuery{
			Key:        "bookings_pending",
			Collection: models.CollectionBookings,
			Equals:     map[string]string{"status": models.BookingStatusPending},
		},
		catalog.CountQuery{Key: "instagram_posts", Collection: models.CollectionInstagramPosts},
		catalog.CountQuery{
			Key:        "events_upcoming",
			Collection: models.CollectionEvents,
			Equals:     map[string]string{"status": models.EventStatusUpcoming},
		},
		catalog.CountQuery{
			Key:        "testimonials_pending",
			Collection: models.CollectionTestimonials,
			Equals:     map[string]string{"status": models.TestimonialStatusPending},
		},
		catalog.CountQuery{Key: "subscribers", Collection: models.CollectionSubscribers},
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "counts unavailable"})
		return
	}

	c.JSON(http.StatusOK, counts)
}
