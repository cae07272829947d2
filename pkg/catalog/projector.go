package catalog

import "context"

// CountQuery names one aggregate: a collection, optionally narrowed by an
// equality filter.
type CountQuery struct {
	Key        string
	Collection string
	Equals     map[string]string
}

// Projector derives dashboard-style aggregates. It is stateless and
// performs a fresh count on every call — callers re-invoke it after any
// relevant refresh instead of subscribing.
type Projector struct {
	gateway Gateway
}

func NewProjector(gateway Gateway) *Projector {
	return &Projector{gateway: gateway}
}

// Counts resolves each query to its current count, keyed by CountQuery.Key.
// The first gateway failure aborts the whole projection.
func (p *Projector) Counts(ctx context.Context, queries ...CountQuery) (map[string]int, error) {
	out := make(map[string]int, len(queries))
	for _, q := range queries {
		n, err := p.gateway.Count(ctx, q.Collection, Query{Equals: q.Equals})
		if err != nil {
			return nil, err
		}
		out[q.Key] = n
	}
	return out, nil
}
