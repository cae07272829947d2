package catalog

// Spec describes one collection: which fields exist, which must be present
// on create, which field the category/status filter runs against, and the
// default ordering. The store validates field and order-by names against it
// before they ever reach SQL.
type Spec struct {
	Name        string
	Fields      []string
	Required    []string
	FilterField string // "" when the collection has no category/status axis
	OrderBy     string // default "created_at"
	Ascending   bool
}

// HasField reports whether name is a declared field. "id" and "created_at"
// are always known.
func (s Spec) HasField(name string) bool {
	if name == "id" || name == "created_at" {
		return true
	}
	for _, f := range s.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Registry maps collection names to their specs.
type Registry map[string]Spec

func (r Registry) Lookup(collection string) (Spec, bool) {
	s, ok := r[collection]
	return s, ok
}
