package newsletter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tacotango/pkg/catalog"
	"tacotango/pkg/models"
)

type Handler struct {
	Coordinator *catalog.Coordinator
}

func NewHandler(coordinator *catalog.Coordinator) *Handler {
	return &Handler{Coordinator: coordinator}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subscribe", h.subscribe) // POST /newsletter/subscribe
}

type subscribeReq struct {
	Email string `json:"email"`
}

func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !strings.Contains(email, "@") || len(email) > 255 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	_, err := h.Coordinator.Submit(c.Request.Context(), models.CollectionSubscribers, catalog.Mutation{
		Kind:   catalog.MutationCreate,
		Fields: map[string]any{"email": email},
	})
	if err != nil {
		var validation *catalog.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		// The unique index makes a repeat signup fail; treat it as
		// already subscribed rather than an error the visitor can act on.
		c.JSON(http.StatusOK, gin.H{"status": "already subscribed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "subscribed"})
}
