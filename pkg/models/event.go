package models

import (
	"time"

	"tacotango/pkg/catalog"
)

const (
	EventStatusUpcoming = "upcoming"
	EventStatusPast     = "past"
	EventStatusDraft    = "draft"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"`
	EventTime   string    `json:"event_time,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Price       string    `json:"price,omitempty"`
	Recurring   string    `json:"recurring,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func EventFromItem(it catalog.Item) Event {
	return Event{
		ID:          it.ID,
		Title:       fieldString(it.Fields, "title"),
		Description: fieldString(it.Fields, "description"),
		EventDate:   fieldString(it.Fields, "event_date"),
		EventTime:   fieldString(it.Fields, "event_time"),
		ImageURL:    fieldString(it.Fields, "image_url"),
		Price:       fieldString(it.Fields, "price"),
		Recurring:   fieldString(it.Fields, "recurring"),
		Status:      fieldString(it.Fields, "status"),
		CreatedAt:   it.CreatedAt,
	}
}

func EventsFromItems(items []catalog.Item) []Event {
	out := make([]Event, 0, len(items))
	for _, it := range items {
		out = append(out, EventFromItem(it))
	}
	return out
}
