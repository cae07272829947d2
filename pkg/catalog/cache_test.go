package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStartsIdle(t *testing.T) {
	cache := NewCache(newFakeGateway(), testRegistry())

	snap := cache.Get("menu_items")

	assert.Equal(t, StatusIdle, snap.Status)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Err)
}

func TestRefreshStoresGatewayResponse(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"), menuItem(2, "snacks"), menuItem(3, "beverages"))
	cache := NewCache(gw, testRegistry())

	require.NoError(t, cache.Refresh(context.Background(), "menu_items"))

	snap := cache.Get("menu_items")
	assert.Equal(t, StatusReady, snap.Status)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, "1", snap.Items[0].ID)
	assert.Equal(t, "2", snap.Items[1].ID)
	assert.Equal(t, "3", snap.Items[2].ID)

	// spec.md scenario: refresh then filter must keep relative order.
	visible := ApplyFilter(snap.Items, "category", "beverages")
	require.Len(t, visible, 2)
	assert.Equal(t, "1", visible[0].ID)
	assert.Equal(t, "3", visible[1].ID)
}

func TestRefreshFailureOnEmptyCacheStaysEmpty(t *testing.T) {
	gw := newFakeGateway()
	gw.listErr = errBoom
	cache := NewCache(gw, testRegistry())

	err := cache.Refresh(context.Background(), "gallery_items")

	require.Error(t, err)
	var transport *TransportError
	require.ErrorAs(t, err, &transport)

	snap := cache.Get("gallery_items")
	assert.Equal(t, StatusError, snap.Status)
	assert.Empty(t, snap.Items)
	assert.NotEmpty(t, snap.Err)
}

func TestRefreshFailureRetainsPreviousItems(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"))
	cache := NewCache(gw, testRegistry())
	require.NoError(t, cache.Refresh(context.Background(), "menu_items"))

	gw.listErr = errBoom
	require.Error(t, cache.Refresh(context.Background(), "menu_items"))

	snap := cache.Get("menu_items")
	assert.Equal(t, StatusError, snap.Status)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "1", snap.Items[0].ID)
}

func TestRefreshRecoversFromError(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"))
	cache := NewCache(gw, testRegistry())

	gw.listErr = errBoom
	require.Error(t, cache.Refresh(context.Background(), "menu_items"))
	gw.listErr = nil
	require.NoError(t, cache.Refresh(context.Background(), "menu_items"))

	assert.Equal(t, StatusReady, cache.Get("menu_items").Status)
}

func TestRefreshUnknownCollection(t *testing.T) {
	cache := NewCache(newFakeGateway(), testRegistry())

	err := cache.Refresh(context.Background(), "nope")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestGetDuringRefreshReportsLoading(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"))
	cache := NewCache(gw, testRegistry())

	var during Snapshot
	gw.beforeList = func() {
		during = cache.Get("menu_items")
	}
	require.NoError(t, cache.Refresh(context.Background(), "menu_items"))

	assert.Equal(t, StatusLoading, during.Status)
	assert.Equal(t, StatusReady, cache.Get("menu_items").Status)
}

func TestEnsureFreshFetchesOnceThenServesSnapshot(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"))
	cache := NewCache(gw, testRegistry())

	first := cache.EnsureFresh(context.Background(), "menu_items")
	second := cache.EnsureFresh(context.Background(), "menu_items")

	assert.Equal(t, StatusReady, first.Status)
	assert.Equal(t, StatusReady, second.Status)
	assert.Equal(t, 1, gw.listCalls)
}
