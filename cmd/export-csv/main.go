package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tacotango/pkg/database"
)

// Exports bookings and newsletter subscribers for the owners' spreadsheet
// workflow. Everything else lives in the admin panel; these two are the
// collections they keep asking for in CSV form.
func main() {
	var (
		bookingsOut    = flag.String("bookings", "data/bookings.csv", "output CSV path for bookings")
		subscribersOut = flag.String("subscribers", "data/subscribers.csv", "output CSV path for newsletter subscribers")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportBookings(ctx, db, *bookingsOut); err != nil {
		log.Fatalf("export bookings failed: %v", err)
	}
	if err := exportSubscribers(ctx, db, *subscribersOut); err != nil {
		log.Fatalf("export subscribers failed: %v", err)
	}

	log.Printf("✅ exported bookings to %s and subscribers to %s", *bookingsOut, *subscribersOut)
}

func exportBookings(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "customer_name", "customer_email", "customer_phone", "booking_date", "booking_time", "guests_count", "special_requests", "status", "created_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, customer_name, customer_email, customer_phone, booking_date, booking_time, guests_count, special_requests, status, created_at
        FROM bookings
        ORDER BY created_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              string
			customerName    string
			customerEmail   string
			customerPhone   sql.NullString
			bookingDate     sql.NullString
			bookingTime     sql.NullString
			guestsCount     sql.NullInt64
			specialRequests sql.NullString
			status          sql.NullString
			createdAt       sql.NullTime
		)

		if err := rows.Scan(&id, &customerName, &customerEmail, &customerPhone, &bookingDate, &bookingTime, &guestsCount, &specialRequests, &status, &createdAt); err != nil {
			return err
		}

		guests := ""
		if guestsCount.Valid {
			guests = strconv.FormatInt(guestsCount.Int64, 10)
		}

		created := ""
		if createdAt.Valid {
			created = createdAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			id,
			customerName,
			customerEmail,
			customerPhone.String,
			bookingDate.String,
			bookingTime.String,
			guests,
			specialRequests.String,
			status.String,
			created,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportSubscribers(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "email", "created_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, email, created_at
        FROM subscribers
        ORDER BY created_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        string
			email     string
			createdAt sql.NullTime
		)

		if err := rows.Scan(&id, &email, &createdAt); err != nil {
			return err
		}

		created := ""
		if createdAt.Valid {
			created = createdAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{id, email, created}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
