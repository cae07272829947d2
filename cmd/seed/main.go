package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tacotango/internal/auth"
	"tacotango/internal/store"
	"tacotango/pkg/catalog"
	"tacotango/pkg/database"
	"tacotango/pkg/models"
)

// Seeds the launch content for the site: the menu, gallery, events, offers,
// Instagram wall and a few approved testimonials, plus one admin account.
// Collections that already hold rows are left alone, so re-running is safe.
func main() {
	var (
		adminUser  = flag.String("admin-user", "admin", "username for the initial admin account")
		adminEmail = flag.String("admin-email", "admin@tacotango.cafe", "email for the initial admin account")
		adminPass  = flag.String("admin-pass", "", "password for the initial admin account (skipped when empty)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	registry := models.Collections()
	gateway := store.New(db, registry)

	categoryIDs, err := seedMenuCategories(ctx, gateway)
	if err != nil {
		log.Fatalf("seed menu categories failed: %v", err)
	}
	if err := seedMenuItems(ctx, gateway, categoryIDs); err != nil {
		log.Fatalf("seed menu items failed: %v", err)
	}
	if err := seedCollection(ctx, gateway, models.CollectionGalleryItems, galleryItems()); err != nil {
		log.Fatalf("seed gallery failed: %v", err)
	}
	if err := seedCollection(ctx, gateway, models.CollectionEvents, events()); err != nil {
		log.Fatalf("seed events failed: %v", err)
	}
	if err := seedCollection(ctx, gateway, models.CollectionOffers, offers()); err != nil {
		log.Fatalf("seed offers failed: %v", err)
	}
	if err := seedCollection(ctx, gateway, models.CollectionInstagramPosts, instagramPosts()); err != nil {
		log.Fatalf("seed instagram posts failed: %v", err)
	}
	if err := seedCollection(ctx, gateway, models.CollectionTestimonials, testimonials()); err != nil {
		log.Fatalf("seed testimonials failed: %v", err)
	}

	if *adminPass != "" {
		if err := seedAdmin(ctx, db, *adminUser, *adminEmail, *adminPass); err != nil {
			log.Fatalf("seed admin failed: %v", err)
		}
	}

	log.Println("✅ seed complete")
}

func seedAdmin(ctx context.Context, db *sql.DB, username, email, password string) error {
	repo := auth.NewRepo(db)
	existing, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("admin %q already exists, skipping", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := repo.CreateAdmin(ctx, auth.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}
	log.Printf("created admin account %q", username)
	return nil
}

// seedCollection inserts rows only when the collection is still empty.
func seedCollection(ctx context.Context, gateway *store.Gateway, collection string, rows []map[string]any) error {
	count, err := gateway.Count(ctx, collection, catalog.Query{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("%s already has %d rows, skipping", collection, count)
		return nil
	}
	for _, fields := range rows {
		if _, err := gateway.Insert(ctx, collection, fields); err != nil {
			return err
		}
	}
	log.Printf("seeded %d %s", len(rows), collection)
	return nil
}

func seedMenuCategories(ctx context.Context, gateway *store.Gateway) (map[string]string, error) {
	ids := make(map[string]string)

	existing, err := gateway.List(ctx, models.CollectionMenuCategories, catalog.Query{})
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		ids[item.Field("slug")] = item.ID
	}
	if len(ids) > 0 {
		log.Printf("menu_categories already has %d rows, skipping", len(ids))
		return ids, nil
	}

	for _, cat := range []map[string]any{
		{"name": "Beverages", "slug": "beverages"},
		{"name": "Snacks", "slug": "snacks"},
		{"name": "Combos", "slug": "combos"},
		{"name": "Desserts", "slug": "desserts"},
	} {
		item, err := gateway.Insert(ctx, models.CollectionMenuCategories, cat)
		if err != nil {
			return nil, err
		}
		ids[item.Field("slug")] = item.ID
	}
	log.Printf("seeded %d menu_categories", len(ids))
	return ids, nil
}

func seedMenuItems(ctx context.Context, gateway *store.Gateway, categoryIDs map[string]string) error {
	const productShot = "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"

	rows := []map[string]any{
		{
			"name":        "Tango Cold Brew",
			"description": "Rich, smooth cold brew with a hint of vanilla",
			"price":       180.0,
			"category_id": categoryIDs["beverages"],
			"image_url":   productShot,
			"tags":        []string{"signature", "cold"},
		},
		{
			"name":        "Spicy Chicken Taco",
			"description": "Grilled chicken with jalapeños and cheese",
			"price":       220.0,
			"category_id": categoryIDs["snacks"],
			"image_url":   productShot,
			"tags":        []string{"spicy", "bestseller"},
		},
		{
			"name":        "Study Buddy Combo",
			"description": "Coffee + sandwich + cookie - perfect for long study sessions",
			"price":       350.0,
			"category_id": categoryIDs["combos"],
			"image_url":   productShot,
			"tags":        []string{"value"},
		},
		{
			"name":        "Avocado Toast",
			"description": "Multigrain bread topped with fresh avocado and herbs",
			"price":       240.0,
			"category_id": categoryIDs["snacks"],
			"image_url":   productShot,
			"tags":        []string{"vegetarian"},
		},
		{
			"name":        "Chocolate Lava Cake",
			"description": "Warm chocolate cake with molten center",
			"price":       180.0,
			"category_id": categoryIDs["desserts"],
			"image_url":   productShot,
			"tags":        []string{"dessert"},
		},
		{
			"name":        "Mango Smoothie",
			"description": "Fresh mango blended with yogurt and honey",
			"price":       160.0,
			"category_id": categoryIDs["beverages"],
			"image_url":   productShot,
			"tags":        []string{"cold", "fruity"},
		},
	}
	return seedCollection(ctx, gateway, models.CollectionMenuItems, rows)
}

func galleryItems() []map[string]any {
	const unsplash = "https://images.unsplash.com/"
	return []map[string]any{
		{"title": "Cozy corner", "image_url": unsplash + "photo-1721322800607-8c38375eef04?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "ambience", "alt_text": "Cozy cafe interior with warm lighting"},
		{"title": "Taco platter", "image_url": unsplash + "photo-1618160702438-9b02ab6515c9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "food", "alt_text": "Delicious taco platter"},
		{"title": "Outdoor seating", "image_url": unsplash + "photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "ambience", "alt_text": "Outdoor seating area"},
		{"title": "Live music", "image_url": unsplash + "photo-1506744038136-46273834b3fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "events", "alt_text": "Live music event at the cafe"},
		{"title": "Regulars", "image_url": unsplash + "photo-1582562124811-c09040d0a901?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "customers", "alt_text": "Happy customers enjoying their meal"},
		{"title": "Morning spread", "image_url": unsplash + "photo-1721322800607-8c38375eef04?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "food", "alt_text": "Fresh coffee and pastries"},
		{"title": "Study corner", "image_url": unsplash + "photo-1500673922987-e212871fec22?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "ambience", "alt_text": "Study corner with comfortable seating"},
		{"title": "Open mic", "image_url": unsplash + "photo-1506744038136-46273834b3fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", "category": "events", "alt_text": "Open mic night performance"},
	}
}

func events() []map[string]any {
	return []map[string]any{
		{
			"title":       "Open Mic Night",
			"description": "Showcase your talent! Poetry, music, comedy - all welcome.",
			"event_date":  "2024-06-15",
			"event_time":  "7:00 PM - 10:00 PM",
			"image_url":   "https://images.unsplash.com/photo-1506744038136-46273834b3fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"price":       "Free Entry",
			"recurring":   "Every Friday",
			"status":      models.EventStatusUpcoming,
		},
		{
			"title":       "Study Group Sunday",
			"description": "Dedicated study space with free WiFi and unlimited coffee refills.",
			"event_date":  "2024-06-16",
			"event_time":  "2:00 PM - 8:00 PM",
			"image_url":   "https://images.unsplash.com/photo-1721322800607-8c38375eef04?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"price":       "₹199 per person",
			"recurring":   "Every Sunday",
			"status":      models.EventStatusUpcoming,
		},
		{
			"title":       "Taco Tuesday Special",
			"description": "Buy 2 Tacos, Get 1 Free! Valid on all taco varieties.",
			"event_date":  "2024-06-18",
			"event_time":  "All Day",
			"image_url":   "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"price":       "Special Pricing",
			"recurring":   "Every Tuesday",
			"status":      models.EventStatusUpcoming,
		},
	}
}

func offers() []map[string]any {
	return []map[string]any{
		{"title": "Student Discount", "description": "20% off on all items with valid student ID", "valid_until": "2024-12-31", "code": "STUDENT20", "status": models.OfferStatusActive},
		{"title": "Happy Hours", "description": "Buy 1 Get 1 Free on all beverages", "valid_until": "Daily 4-6 PM", "code": "HAPPY4TO6", "status": models.OfferStatusActive},
		{"title": "Group Booking", "description": "15% off for groups of 6 or more", "valid_until": "Ongoing", "code": "GROUP15", "status": models.OfferStatusActive},
	}
}

func instagramPosts() []map[string]any {
	return []map[string]any{
		{"post_url": "https://instagram.com/p/tacotango-cold-brew", "image_url": "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=600", "caption": "Cold brew season never ends ☕", "is_featured": true},
		{"post_url": "https://instagram.com/p/tacotango-open-mic", "image_url": "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=600", "caption": "Friday open mic, see you there 🎤", "is_featured": true},
		{"post_url": "https://instagram.com/p/tacotango-patio", "image_url": "https://images.unsplash.com/photo-1500673922987-e212871fec22?w=600", "caption": "Patio weather", "is_featured": false},
	}
}

func testimonials() []map[string]any {
	return []map[string]any{
		{"author_name": "Priya Sharma", "quote": "This place is my second home! Perfect for studying with friends and the tacos are absolutely divine.", "rating": 5, "status": models.TestimonialStatusApproved},
		{"author_name": "Arjun Patel", "quote": "Best coffee in town hands down! The staff knows my order by heart and the breakfast burritos are incredible.", "rating": 5, "status": models.TestimonialStatusApproved},
		{"author_name": "Sneha Reddy", "quote": "The aesthetic here is everything! Their matcha latte is my new obsession.", "rating": 5, "status": models.TestimonialStatusApproved},
		{"author_name": "Rahul Kumar", "quote": "Had my first client meeting here and it went amazingly! Great for business discussions over amazing food.", "rating": 5, "status": models.TestimonialStatusApproved},
		{"author_name": "Ananya Singh", "quote": "From the music to the menu, everything resonates with young energy. Plus, their vegan options are fantastic!", "rating": 5, "status": models.TestimonialStatusApproved},
	}
}
