package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectorCounts(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"), menuItem(2, "snacks"), menuItem(3, "beverages"))
	gw.seed("offers",
		Item{ID: "o1", Fields: map[string]any{"title": "a", "status": "active"}},
		Item{ID: "o2", Fields: map[string]any{"title": "b", "status": "expired"}},
	)
	p := NewProjector(gw)

	counts, err := p.Counts(context.Background(),
		CountQuery{Key: "menu_items", Collection: "menu_items"},
		CountQuery{Key: "beverages", Collection: "menu_items", Equals: map[string]string{"category": "beverages"}},
		CountQuery{Key: "active_offers", Collection: "offers", Equals: map[string]string{"status": "active"}},
	)

	require.NoError(t, err)
	assert.Equal(t, 3, counts["menu_items"])
	assert.Equal(t, 2, counts["beverages"])
	assert.Equal(t, 1, counts["active_offers"])
}

func TestProjectorRecomputesEachCall(t *testing.T) {
	gw := newFakeGateway()
	gw.seed("menu_items", menuItem(1, "beverages"))
	p := NewProjector(gw)

	first, err := p.Counts(context.Background(), CountQuery{Key: "n", Collection: "menu_items"})
	require.NoError(t, err)
	gw.seed("menu_items", menuItem(2, "snacks"))
	second, err := p.Counts(context.Background(), CountQuery{Key: "n", Collection: "menu_items"})
	require.NoError(t, err)

	assert.Equal(t, 1, first["n"])
	assert.Equal(t, 2, second["n"])
	assert.Equal(t, 2, gw.countCalls)
}

func TestProjectorPropagatesGatewayError(t *testing.T) {
	gw := newFakeGateway()
	gw.listErr = errBoom
	p := NewProjector(gw)

	_, err := p.Counts(context.Background(), CountQuery{Key: "n", Collection: "menu_items"})

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}
