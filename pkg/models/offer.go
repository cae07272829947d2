package models

import (
	"time"

	"tacotango/pkg/catalog"
)

const (
	OfferStatusActive  = "active"
	OfferStatusExpired = "expired"
)

type Offer struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ValidUntil  string    `json:"valid_until,omitempty"`
	Code        string    `json:"code,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func OfferFromItem(it catalog.Item) Offer {
	return Offer{
		ID:          it.ID,
		Title:       fieldString(it.Fields, "title"),
		Description: fieldString(it.Fields, "description"),
		ValidUntil:  fieldString(it.Fields, "valid_until"),
		Code:        fieldString(it.Fields, "code"),
		Status:      fieldString(it.Fields, "status"),
		CreatedAt:   it.CreatedAt,
	}
}

func OffersFromItems(items []catalog.Item) []Offer {
	out := make([]Offer, 0, len(items))
	for _, it := range items {
		out = append(out, OfferFromItem(it))
	}
	return out
}
