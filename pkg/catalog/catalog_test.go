package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// fakeGateway is an in-memory Gateway with scriptable failures and call
// counters, shared by the tests in this package.
type fakeGateway struct {
	mu      sync.Mutex
	rows    map[string][]Item
	nextID  int
	listErr error
	callErr error // returned by the next Insert/Update/Delete

	listCalls   int
	insertCalls int
	updateCalls int
	deleteCalls int
	countCalls  int

	// beforeList, when set, runs inside List before the rows are read.
	beforeList func()
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{rows: make(map[string][]Item)}
}

func (g *fakeGateway) seed(collection string, items ...Item) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rows[collection] = append(g.rows[collection], items...)
}

func (g *fakeGateway) List(ctx context.Context, collection string, q Query) ([]Item, error) {
	g.mu.Lock()
	g.listCalls++
	hook := g.beforeList
	g.mu.Unlock()
	if hook != nil {
		hook()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listErr != nil {
		return nil, &TransportError{Op: "list " + collection, Err: g.listErr}
	}
	src := g.rows[collection]
	out := make([]Item, 0, len(src))
	for _, it := range src {
		if matches(it, q.Equals) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (g *fakeGateway) Insert(ctx context.Context, collection string, fields map[string]any) (Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.insertCalls++
	if g.callErr != nil {
		return Item{}, g.callErr
	}
	g.nextID++
	it := Item{
		ID:        "gen-" + strconv.Itoa(g.nextID),
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	g.rows[collection] = append([]Item{it}, g.rows[collection]...)
	return it, nil
}

func (g *fakeGateway) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	if g.callErr != nil {
		return g.callErr
	}
	for i, it := range g.rows[collection] {
		if it.ID == id {
			merged := make(map[string]any, len(it.Fields)+len(fields))
			for k, v := range it.Fields {
				merged[k] = v
			}
			for k, v := range fields {
				merged[k] = v
			}
			g.rows[collection][i].Fields = merged
			return nil
		}
	}
	return &NotFoundError{Collection: collection, ID: id}
}

func (g *fakeGateway) Delete(ctx context.Context, collection, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls++
	if g.callErr != nil {
		return g.callErr
	}
	for i, it := range g.rows[collection] {
		if it.ID == id {
			g.rows[collection] = append(g.rows[collection][:i], g.rows[collection][i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Collection: collection, ID: id}
}

func (g *fakeGateway) Count(ctx context.Context, collection string, q Query) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.countCalls++
	if g.listErr != nil {
		return 0, &TransportError{Op: "count " + collection, Err: g.listErr}
	}
	n := 0
	for _, it := range g.rows[collection] {
		if matches(it, q.Equals) {
			n++
		}
	}
	return n, nil
}

func matches(it Item, equals map[string]string) bool {
	for f, v := range equals {
		if it.Field(f) != v {
			return false
		}
	}
	return true
}

func (g *fakeGateway) writes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.insertCalls + g.updateCalls + g.deleteCalls
}

var errBoom = errors.New("connection refused")

func testRegistry() Registry {
	return Registry{
		"menu_items": {
			Name:        "menu_items",
			Fields:      []string{"name", "category", "price"},
			Required:    []string{"name", "category"},
			FilterField: "category",
			OrderBy:     "created_at",
		},
		"gallery_items": {
			Name:        "gallery_items",
			Fields:      []string{"title", "image_url", "category"},
			Required:    []string{"title", "image_url"},
			FilterField: "category",
			OrderBy:     "created_at",
		},
		"offers": {
			Name:        "offers",
			Fields:      []string{"title", "status"},
			Required:    []string{"title"},
			FilterField: "status",
			OrderBy:     "created_at",
		},
	}
}

func menuItem(n int, category string) Item {
	return Item{
		ID:        strconv.Itoa(n),
		Fields:    map[string]any{"name": fmt.Sprintf("item-%d", n), "category": category},
		CreatedAt: time.Now().UTC(),
	}
}
