package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Mutation is one pending create/update/delete against a collection.
type Mutation struct {
	Kind   MutationKind
	ID     string
	Fields map[string]any
}

// Event is emitted after a mutation commits and the cache has been
// refreshed. Consumers (the realtime hub) use it to tell connected admin
// views to refetch.
type Event struct {
	Type       string    `json:"type"` // "catalog.created" etc.
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// Coordinator is the only writer against the gateway. Mutations for the
// same collection are strictly serialized: the second one does not start
// its gateway call until the first has resolved, including its cache
// refresh. Across collections there is no ordering guarantee.
type Coordinator struct {
	gateway  Gateway
	cache    *Cache
	registry Registry
	listener func(Event)

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCoordinator(gateway Gateway, cache *Cache, registry Registry) *Coordinator {
	return &Coordinator{
		gateway:  gateway,
		cache:    cache,
		registry: registry,
		locks:    make(map[string]*sync.Mutex),
	}
}

// OnEvent registers a single listener for committed mutations. Call before
// the coordinator starts taking traffic.
func (co *Coordinator) OnEvent(fn func(Event)) {
	co.listener = fn
}

func (co *Coordinator) lockFor(collection string) *sync.Mutex {
	co.mu.Lock()
	defer co.mu.Unlock()
	l, ok := co.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		co.locks[collection] = l
	}
	return l
}

// Submit validates, applies and reconciles one mutation. On success the
// collection's cache has already been refreshed by the time Submit returns,
// so a caller reacting to success sees fresh data. On failure the cache is
// untouched and the typed error is returned as-is. No retry, no
// deduplication: an identical resubmission is a brand-new request.
func (co *Coordinator) Submit(ctx context.Context, collection string, m Mutation) (Item, error) {
	spec, ok := co.registry.Lookup(collection)
	if !ok {
		return Item{}, &ValidationError{Field: "collection", Reason: fmt.Sprintf("unknown collection %q", collection)}
	}
	if err := validate(spec, m); err != nil {
		return Item{}, err
	}

	l := co.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	var created Item
	var err error
	switch m.Kind {
	case MutationCreate:
		created, err = co.gateway.Insert(ctx, collection, m.Fields)
	case MutationUpdate:
		err = co.gateway.Update(ctx, collection, m.ID, m.Fields)
	case MutationDelete:
		err = co.gateway.Delete(ctx, collection, m.ID)
	}
	if err != nil {
		return Item{}, err
	}

	// Mutation committed; refresh before reporting success. A failed
	// refresh is recorded in the snapshot, not treated as a failed
	// mutation.
	_ = co.cache.Refresh(ctx, collection)

	if co.listener != nil {
		id := m.ID
		if m.Kind == MutationCreate {
			id = created.ID
		}
		co.listener(Event{
			Type:       "catalog." + pastTense(m.Kind),
			Collection: collection,
			ID:         id,
			At:         time.Now().UTC(),
		})
	}
	return created, nil
}

func validate(spec Spec, m Mutation) error {
	switch m.Kind {
	case MutationCreate:
		for _, req := range spec.Required {
			v, ok := m.Fields[req]
			if !ok {
				return &ValidationError{Field: req, Reason: "required"}
			}
			if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
				return &ValidationError{Field: req, Reason: "required"}
			}
		}
	case MutationUpdate:
		if strings.TrimSpace(m.ID) == "" {
			return &ValidationError{Field: "id", Reason: "required"}
		}
		if len(m.Fields) == 0 {
			return &ValidationError{Field: "fields", Reason: "at least one field required"}
		}
	case MutationDelete:
		if strings.TrimSpace(m.ID) == "" {
			return &ValidationError{Field: "id", Reason: "required"}
		}
	default:
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown mutation kind %q", m.Kind)}
	}
	for name := range m.Fields {
		if !spec.HasField(name) {
			return &ValidationError{Field: name, Reason: "unknown field"}
		}
	}
	return nil
}

func pastTense(k MutationKind) string {
	switch k {
	case MutationCreate:
		return "created"
	case MutationUpdate:
		return "updated"
	default:
		return "deleted"
	}
}
