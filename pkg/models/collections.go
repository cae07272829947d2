package models

import "tacotango/pkg/catalog"

// Collection names, matching the table names in docs/schema.sql.
const (
	CollectionMenuCategories = "menu_categories"
	CollectionMenuItems      = "menu_items"
	CollectionGalleryItems   = "gallery_items"
	CollectionEvents         = "events"
	CollectionOffers         = "offers"
	CollectionBookings       = "bookings"
	CollectionInstagramPosts = "instagram_posts"
	CollectionTestimonials   = "testimonials"
	CollectionSubscribers    = "subscribers"
)

// Collections is the café's catalog registry. All lists come back
// newest-first except menu categories, which read in name order so the
// public menu tabs keep a stable layout.
func Collections() catalog.Registry {
	return catalog.Registry{
		CollectionMenuCategories: {
			Name:     CollectionMenuCategories,
			Fields:   []string{"name", "slug"},
			Required: []string{"name", "slug"},
			OrderBy:  "name",
			Ascending: true,
		},
		CollectionMenuItems: {
			Name:        CollectionMenuItems,
			Fields:      []string{"name", "description", "price", "image_url", "category_id", "tags", "is_available"},
			Required:    []string{"name", "category_id"},
			FilterField: "category_id",
			OrderBy:     "created_at",
		},
		CollectionGalleryItems: {
			Name:        CollectionGalleryItems,
			Fields:      []string{"title", "image_url", "category", "alt_text"},
			Required:    []string{"title", "image_url"},
			FilterField: "category",
			OrderBy:     "created_at",
		},
		CollectionEvents: {
			Name:        CollectionEvents,
			Fields:      []string{"title", "description", "event_date", "event_time", "image_url", "price", "recurring", "status"},
			Required:    []string{"title", "event_date"},
			FilterField: "status",
			OrderBy:     "created_at",
		},
		CollectionOffers: {
			Name:        CollectionOffers,
			Fields:      []string{"title", "description", "valid_until", "code", "status"},
			Required:    []string{"title"},
			FilterField: "status",
			OrderBy:     "created_at",
		},
		CollectionBookings: {
			Name:        CollectionBookings,
			Fields:      []string{"customer_name", "customer_email", "customer_phone", "booking_date", "booking_time", "guests_count", "special_requests", "status"},
			Required:    []string{"customer_name", "customer_email", "booking_date", "booking_time"},
			FilterField: "status",
			OrderBy:     "created_at",
		},
		CollectionInstagramPosts: {
			Name:     CollectionInstagramPosts,
			Fields:   []string{"post_url", "image_url", "caption", "is_featured"},
			Required: []string{"post_url", "image_url"},
			OrderBy:  "created_at",
		},
		CollectionTestimonials: {
			Name:        CollectionTestimonials,
			Fields:      []string{"author_name", "quote", "rating", "status"},
			Required:    []string{"author_name", "quote"},
			FilterField: "status",
			OrderBy:     "created_at",
		},
		CollectionSubscribers: {
			Name:     CollectionSubscribers,
			Fields:   []string{"email"},
			Required: []string{"email"},
			OrderBy:  "created_at",
		},
	}
}
