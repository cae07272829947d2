package bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tacotango/internal/notify"
	"tacotango/pkg/catalog"
	"tacotango/pkg/models"
)

// Notifier is satisfied by the UDP staff-notification server; nil disables
// pushes (the booking is still stored).
type Notifier interface {
	BroadcastNewBooking(msg notify.NewBookingMessage)
}

type Handler struct {
	Cache       *catalog.Cache
	Coordinator *catalog.Coordinator
	Notifier    Notifier
}

func NewHandler(cache *catalog.Cache, coordinator *catalog.Coordinator, notifier Notifier) *Handler {
	return &Handler{Cache: cache, Coordinator: coordinator, Notifier: notifier}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create) // POST /bookings
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.list)
	rg.PATCH("/bookings/:id/status", h.updateStatus)
}

type createReq struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	BookingDate     string `json:"booking_date"`
	BookingTime     string `json:"booking_time"`
	GuestsCount     int    `json:"guests_count"`
	SpecialRequests string `json:"special_requests"`
}

// create handles the public booking form. Every booking starts out
// pending; status is never accepted from the visitor.
func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}
	if req.GuestsCount <= 0 {
		req.GuestsCount = 1
	}
	if req.GuestsCount > 20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "for parties over 20, please call us"})
		return
	}

	created, err := h.Coordinator.Submit(c.Request.Context(), models.CollectionBookings, catalog.Mutation{
		Kind: catalog.MutationCreate,
		Fields: map[string]any{
			"customer_name":    strings.TrimSpace(req.CustomerName),
			"customer_email":   strings.TrimSpace(strings.ToLower(req.CustomerEmail)),
			"customer_phone":   strings.TrimSpace(req.CustomerPhone),
			"booking_date":     strings.TrimSpace(req.BookingDate),
			"booking_time":     strings.TrimSpace(req.BookingTime),
			"guests_count":     req.GuestsCount,
			"special_requests": strings.TrimSpace(req.SpecialRequests),
			"status":           models.BookingStatusPending,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	booking := models.BookingFromItem(created)
	if h.Notifier != nil {
		h.Notifier.BroadcastNewBooking(notify.NewBookingMessage{
			BookingID:    booking.ID,
			CustomerName: booking.CustomerName,
			BookingDate:  booking.BookingDate,
			BookingTime:  booking.BookingTime,
			GuestsCount:  booking.GuestsCount,
		})
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) list(c *gin.Context) {
	snap := h.Cache.EnsureFresh(c.Request.Context(), models.CollectionBookings)
	if snap.Status == catalog.StatusError && len(snap.Items) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "bookings unavailable"})
		return
	}

	key := c.DefaultQuery("status", catalog.FilterAll)
	visible := catalog.ApplyFilter(snap.Items, "status", key)

	c.JSON(http.StatusOK, gin.H{
		"status": snap.Status,
		"items":  models.BookingsFromItems(visible),
	})
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	status := models.NormalizeBookingStatus(req.Status)
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "status must be one of: pending, confirmed, cancelled, completed",
		})
		return
	}

	_, err := h.Coordinator.Submit(c.Request.Context(), models.CollectionBookings, catalog.Mutation{
		Kind:   catalog.MutationUpdate,
		ID:     c.Param("id"),
		Fields: map[string]any{"status": status},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// respondError maps the catalog error taxonomy onto HTTP codes so the
// admin UI can tell "item no longer exists" from a transport failure.
func respondError(c *gin.Context, err error) {
	var validation *catalog.ValidationError
	var notFound *catalog.NotFoundError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item no longer exists"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "datastore unavailable, please retry"})
	}
}
