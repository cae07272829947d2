package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tacotango/pkg/catalog"
)

// Handler is the generic collection manager behind the admin panel. Every
// manager screen (menu, gallery, events, offers, instagram, testimonials)
// is the same flow: list a snapshot, filter it, mutate through the
// coordinator, re-render from the refreshed snapshot.
type Handler struct {
	Cache       *catalog.Cache
	Coordinator *catalog.Coordinator
	Registry    catalog.Registry
}

func NewHandler(cache *catalog.Cache, coordinator *catalog.Coordinator, registry catalog.Registry) *Handler {
	return &Handler{Cache: cache, Coordinator: coordinator, Registry: registry}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/collections", h.collections)
	rg.GET("/collections/:collection", h.list)
	rg.POST("/collections/:collection", h.create)
	rg.PUT("/collections/:collection/:id", h.update)
	rg.DELETE("/collections/:collection/:id", h.remove)
}

type collectionInfo struct {
	Name        string   `json:"name"`
	Fields      []string `json:"fields"`
	Required    []string `json:"required"`
	FilterField string   `json:"filter_field,omitempty"`
}

// collections describes the registry so the panel can build its manager
// screens without hard-coding field lists.
func (h *Handler) collections(c *gin.Context) {
	out := make([]collectionInfo, 0, len(h.Registry))
	for _, spec := range h.Registry {
		out = append(out, collectionInfo{
			Name:        spec.Name,
			Fields:      spec.Fields,
			Required:    spec.Required,
			FilterField: spec.FilterField,
		})
	}
	c.JSON(http.StatusOK, gin.H{"collections": out})
}

func (h *Handler) list(c *gin.Context) {
	collection := c.Param("collection")
	spec, ok := h.Registry.Lookup(collection)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
		return
	}

	ctx := c.Request.Context()
	if c.Query("fresh") == "1" {
		_ = h.Cache.Refresh(ctx, collection) // failure lands in the snapshot
	}
	snap := h.Cache.EnsureFresh(ctx, collection)

	key := c.DefaultQuery("filter", catalog.FilterAll)
	visible := catalog.ApplyFilter(snap.Items, spec.FilterField, key)

	c.JSON(http.StatusOK, gin.H{
		"collection": collection,
		"status":     snap.Status,
		"error":      snap.Err,
		"items":      visible,
	})
}

func (h *Handler) create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	created, err := h.Coordinator.Submit(c.Request.Context(), c.Param("collection"), catalog.Mutation{
		Kind:   catalog.MutationCreate,
		Fields: fields,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	_, err := h.Coordinator.Submit(c.Request.Context(), c.Param("collection"), catalog.Mutation{
		Kind:   catalog.MutationUpdate,
		ID:     c.Param("id"),
		Fields: fields,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) remove(c *gin.Context) {
	_, err := h.Coordinator.Submit(c.Request.Context(), c.Param("collection"), catalog.Mutation{
		Kind: catalog.MutationDelete,
		ID:   c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

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
