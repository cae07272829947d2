package catalog

// FilterAll selects the entire snapshot.
const FilterAll = "all"

// ApplyFilter returns the items whose field equals key, preserving relative
// order. key "all" (or empty) returns the input unchanged. Matching is
// exact and case-sensitive, mirroring the gateway's equality filter. The
// input is never mutated.
func ApplyFilter(items []Item, field, key string) []Item {
	if key == "" || key == FilterAll || field == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Field(field) == key {
			out = append(out, it)
		}
	}
	return out
}
