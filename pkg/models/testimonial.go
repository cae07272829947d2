package models

import (
	"time"

	"tacotango/pkg/catalog"
)

const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
	TestimonialStatusRejected = "rejected"
)

type Testimonial struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func TestimonialFromItem(it catalog.Item) Testimonial {
	return Testimonial{
		ID:         it.ID,
		AuthorName: fieldString(it.Fields, "author_name"),
		Quote:      fieldString(it.Fields, "quote"),
		Rating:     fieldInt(it.Fields, "rating"),
		Status:     fieldString(it.Fields, "status"),
		CreatedAt:  it.CreatedAt,
	}
}

func TestimonialsFromItems(items []catalog.Item) []Testimonial {
	out := make([]Testimonial, 0, len(items))
	for _, it := range items {
		out = append(out, TestimonialFromItem(it))
	}
	return out
}
