package models

import (
	"time"

	"tacotango/pkg/catalog"
)

type GalleryItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category"`
	AltText   string    `json:"alt_text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func GalleryItemFromItem(it catalog.Item) GalleryItem {
	return GalleryItem{
		ID:        it.ID,
		Title:     fieldString(it.Fields, "title"),
		ImageURL:  fieldString(it.Fields, "image_url"),
		Category:  fieldString(it.Fields, "category"),
		AltText:   fieldString(it.Fields, "alt_text"),
		CreatedAt: it.CreatedAt,
	}
}

func GalleryItemsFromItems(items []catalog.Item) []GalleryItem {
	out := make([]GalleryItem, 0, len(items))
	for _, it := range items {
		out = append(out, GalleryItemFromItem(it))
	}
	return out
}
