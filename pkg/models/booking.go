package models

import (
	"strings"
	"time"

	"tacotango/pkg/catalog"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	BookingDate     string    `json:"booking_date"`
	BookingTime     string    `json:"booking_time"`
	GuestsCount     int       `json:"guests_count"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NormalizeBookingStatus returns the canonical status value, or "" when the
// input is not one of the four known states.
func NormalizeBookingStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case BookingStatusPending:
		return BookingStatusPending
	case BookingStatusConfirmed:
		return BookingStatusConfirmed
	case BookingStatusCancelled:
		return BookingStatusCancelled
	case BookingStatusCompleted:
		return BookingStatusCompleted
	default:
		return ""
	}
}

func BookingFromItem(it catalog.Item) Booking {
	return Booking{
		ID:              it.ID,
		CustomerName:    fieldString(it.Fields, "customer_name"),
		CustomerEmail:   fieldString(it.Fields, "customer_email"),
		CustomerPhone:   fieldString(it.Fields, "customer_phone"),
		BookingDate:     fieldString(it.Fields, "booking_date"),
		BookingTime:     fieldString(it.Fields, "booking_time"),
		GuestsCount:     fieldInt(it.Fields, "guests_count"),
		SpecialRequests: fieldString(it.Fields, "special_requests"),
		Status:          fieldString(it.Fields, "status"),
		CreatedAt:       it.CreatedAt,
	}
}

func BookingsFromItems(items []catalog.Item) []Booking {
	out := make([]Booking, 0, len(items))
	for _, it := range items {
		out = append(out, BookingFromItem(it))
	}
	return out
}
