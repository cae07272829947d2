package sync

import "tacotango/pkg/catalog"

// Broadcaster adapts the hub to the mutation coordinator's listener hook:
// every committed mutation becomes one broadcast event.
func Broadcaster(h *Hub) func(catalog.Event) {
	return func(e catalog.Event) {
		h.BroadcastJSON(e)
	}
}
