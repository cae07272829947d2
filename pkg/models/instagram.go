package models

import (
	"time"

	"tacotango/pkg/catalog"
)

type InstagramPost struct {
	ID         string    `json:"id"`
	PostURL    string    `json:"post_url"`
	ImageURL   string    `json:"image_url"`
	Caption    string    `json:"caption,omitempty"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

func InstagramPostFromItem(it catalog.Item) InstagramPost {
	return InstagramPost{
		ID:         it.ID,
		PostURL:    fieldString(it.Fields, "post_url"),
		ImageURL:   fieldString(it.Fields, "image_url"),
		Caption:    fieldString(it.Fields, "caption"),
		IsFeatured: fieldBool(it.Fields, "is_featured"),
		CreatedAt:  it.CreatedAt,
	}
}

func InstagramPostsFromItems(items []catalog.Item) []InstagramPost {
	out := make([]InstagramPost, 0, len(items))
	for _, it := range items {
		out = append(out, InstagramPostFromItem(it))
	}
	return out
}
