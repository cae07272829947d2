package models

import (
	"time"

	"tacotango/pkg/catalog"
)

type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id"`
	Tags        []string  `json:"tags"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func MenuCategoryFromItem(it catalog.Item) MenuCategory {
	return MenuCategory{
		ID:   it.ID,
		Name: fieldString(it.Fields, "name"),
		Slug: fieldString(it.Fields, "slug"),
	}
}

func MenuItemFromItem(it catalog.Item) MenuItem {
	return MenuItem{
		ID:          it.ID,
		Name:        fieldString(it.Fields, "name"),
		Description: fieldString(it.Fields, "description"),
		Price:       fieldFloat(it.Fields, "price"),
		ImageURL:    fieldString(it.Fields, "image_url"),
		CategoryID:  fieldString(it.Fields, "category_id"),
		Tags:        fieldStrings(it.Fields, "tags"),
		IsAvailable: fieldBool(it.Fields, "is_available"),
		CreatedAt:   it.CreatedAt,
	}
}

func MenuCategoriesFromItems(items []catalog.Item) []MenuCategory {
	out := make([]MenuCategory, 0, len(items))
	for _, it := range items {
		out = append(out, MenuCategoryFromItem(it))
	}
	return out
}

func MenuItemsFromItems(items []catalog.Item) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, MenuItemFromItem(it))
	}
	return out
}
