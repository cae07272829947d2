package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacotango/internal/store"
	"tacotango/pkg/catalog"
	"tacotango/pkg/database"
	"tacotango/pkg/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *catalog.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	// in-memory sqlite exists per connection; keep the pool at one
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.MigrateFrom(db, "../../docs/schema.sql"))

	registry := models.Collections()
	gateway := store.New(db, registry)
	cache := catalog.NewCache(gateway, registry)
	coordinator := catalog.NewCoordinator(gateway, cache, registry)

	router := gin.New()
	h := NewHandler(cache, coordinator, registry)
	h.RegisterRoutes(router.Group("/admin"))
	return router, cache
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type listResp struct {
	Collection string         `json:"collection"`
	Status     string         `json:"status"`
	Items      []catalog.Item `json:"items"`
}

func TestAdminCreateThenList(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/collections/gallery_items", map[string]any{
		"title":     "Patio at dusk",
		"image_url": "https://cdn.example/patio.jpg",
		"category":  "ambience",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created catalog.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	w = doJSON(t, router, http.MethodGet, "/admin/collections/gallery_items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(catalog.StatusReady), resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, created.ID, resp.Items[0].ID)
}

func TestAdminListFilter(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, it := range []map[string]any{
		{"title": "Counter", "image_url": "u", "category": "ambience"},
		{"title": "Tacos", "image_url": "u", "category": "food"},
		{"title": "Mural", "image_url": "u", "category": "ambience"},
	} {
		w := doJSON(t, router, http.MethodPost, "/admin/collections/gallery_items", it)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/admin/collections/gallery_items?filter=ambience", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	for _, it := range resp.Items {
		assert.Equal(t, "ambience", it.Field("category"))
	}
}

func TestAdminUpdateAndDelete(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/collections/offers", map[string]any{
		"title": "2-for-1 tacos",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created catalog.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/admin/collections/offers/%s", created.ID), map[string]any{
		"status": "expired",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/admin/collections/offers/%s", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/admin/collections/offers", nil)
	var resp listResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestAdminErrorCodes(t *testing.T) {
	router, _ := newTestRouter(t)

	// validation: missing required field, 400
	w := doJSON(t, router, http.MethodPost, "/admin/collections/offers", map[string]any{"code": "TANGO"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// not found target, 404
	w = doJSON(t, router, http.MethodPut, "/admin/collections/offers/missing-id", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// unknown collection, 404 on list
	w = doJSON(t, router, http.MethodGet, "/admin/collections/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminListAfterMutationSeesFreshSnapshot(t *testing.T) {
	router, cache := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/collections/instagram_posts", map[string]any{
		"post_url": "https://instagram.com/p/abc", "image_url": "https://cdn/x.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The coordinator refreshed before responding; no extra fetch needed.
	snap := cache.Get(models.CollectionInstagramPosts)
	assert.Equal(t, catalog.StatusReady, snap.Status)
	assert.Len(t, snap.Items, 1)
}
