package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinator(gw *fakeGateway) (*Coordinator, *Cache) {
	cache := NewCache(gw, testRegistry())
	return NewCoordinator(gw, cache, testRegistry()), cache
}

func TestSubmitCreateRefreshesCacheBeforeReturning(t *testing.T) {
	gw := newFakeGateway()
	co, cache := newCoordinator(gw)

	created, err := co.Submit(context.Background(), "menu_items", Mutation{
		Kind:   MutationCreate,
		Fields: map[string]any{"name": "Masala Chai", "category": "beverages"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	snap := cache.Get("menu_items")
	assert.Equal(t, StatusReady, snap.Status)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, created.ID, snap.Items[0].ID)
}

func TestSubmitDeleteRemovesItem(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"), menuItem(2, "snacks"), menuItem(3, "beverages"))
	co, cache := newCoordinator(gw)
	require.NoError(t, cache.Refresh(context.Background(), "menu_items"))

	_, err := co.Submit(context.Background(), "menu_items", Mutation{Kind: MutationDelete, ID: "2"})

	require.NoError(t, err)
	snap := cache.Get("menu_items")
	require.Len(t, snap.Items, 2)
	for _, it := range snap.Items {
		assert.NotEqual(t, "2", it.ID)
	}
}

func TestSubmitValidationErrorSkipsGateway(t *testing.T) {
	gw := newFakeGateway()
	co, _ := newCoordinator(gw)

	cases := []struct {
		name string
		m    Mutation
	}{
		{"create missing required", Mutation{Kind: MutationCreate, Fields: map[string]any{"name": "x"}}},
		{"create blank required", Mutation{Kind: MutationCreate, Fields: map[string]any{"name": "x", "category": "  "}}},
		{"update without id", Mutation{Kind: MutationUpdate, Fields: map[string]any{"name": "x"}}},
		{"update without fields", Mutation{Kind: MutationUpdate, ID: "1"}},
		{"delete without id", Mutation{Kind: MutationDelete}},
		{"unknown field", Mutation{Kind: MutationUpdate, ID: "1", Fields: map[string]any{"bogus": 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := co.Submit(context.Background(), "menu_items", tc.m)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}

	assert.Equal(t, 0, gw.writes(), "validation failures must not reach the gateway")
	assert.Equal(t, 0, gw.listCalls, "validation failures must not trigger a refresh")
}

func TestSubmitNotFoundLeavesCacheUntouched(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("offers", Item{ID: "o1", Fields: map[string]any{"title": "2-for-1", "status": "active"}})
	co, cache := newCoordinator(gw)
	require.NoError(t, cache.Refresh(context.Background(), "offers"))
	before := cache.Get("offers")

	_, err := co.Submit(context.Background(), "offers", Mutation{
		Kind:   MutationUpdate,
		ID:     "missing-id",
		Fields: map[string]any{"title": "renamed"},
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	after := cache.Get("offers")
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Items, after.Items)
}

func TestSubmitTransportFailureLeavesCacheUntouched(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"))
	co, cache := newCoordinator(gw)
	require.NoError(t, cache.Refresh(context.Background(), "menu_items"))

	gw.callErr = &TransportError{Op: "insert menu_items", Err: errBoom}
	_, err := co.Submit(context.Background(), "menu_items", Mutation{
		Kind:   MutationCreate,
		Fields: map[string]any{"name": "Nachos", "category": "snacks"},
	})

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	require.Len(t, cache.Get("menu_items").Items, 1)
}

func TestSubmitSerializesPerCollection(t *testing.T) {
	gw := newFakeGateway()
	co, _ := newCoordinator(gw)

	// The hook runs inside the refresh triggered by each mutation. If a
	// second Submit could start before the first finished its refresh, the
	// write counter observed here would skip values.
	var mu sync.Mutex
	var observed []int
	gw.beforeList = func() {
		mu.Lock()
		observed = append(observed, gw.writes())
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := co.Submit(context.Background(), "menu_items", Mutation{
				Kind:   MutationCreate,
				Fields: map[string]any{"name": "Taco", "category": "snacks"},
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, observed, 4)
	for i, n := range observed {
		assert.Equal(t, i+1, n, "refresh %d must run before write %d starts", i, i+2)
	}
}

func TestSubmitEmitsEventAfterCommit(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("gallery_items", Item{ID: "g1", Fields: map[string]any{"title": "Patio", "image_url": "x", "category": "ambience"}})
	co, cache := newCoordinator(gw)
	require.NoError(t, cache.Refresh(context.Background(), "gallery_items"))

	var events []Event
	co.OnEvent(func(e Event) { events = append(events, e) })

	_, err := co.Submit(context.Background(), "gallery_items", Mutation{Kind: MutationDelete, ID: "g1"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "catalog.deleted", events[0].Type)
	assert.Equal(t, "gallery_items", events[0].Collection)
	assert.Equal(t, "g1", events[0].ID)
}

func TestSubmitFailureEmitsNoEvent(t *testing.T) {
	gw := newFakeGateway()
	co, _ := newCoordinator(gw)

	var events []Event
	co.OnEvent(func(e Event) { events = append(events, e) })

	_, err := co.Submit(context.Background(), "gallery_items", Mutation{Kind: MutationDelete, ID: "missing"})
	require.Error(t, err)
	assert.Empty(t, events)
}
