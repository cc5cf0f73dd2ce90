package event

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEvent(ctx context.Context, title, location string, startTime, endTime time.Time, capacity int, priceCents int64) (*Event, error) {
	query := `
		INSERT INTO events (title, location, start_time, end_time, capacity, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, location, start_time, end_time, capacity, price_cents, created_at
	`

	var event Event
	err := r.db.GetContext(ctx, &event, query, title, location, startTime, endTime, capacity, priceCents)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *repository) GetEventByID(ctx context.Context, id int) (*Event, error) {
	query := `
		SELECT id, title, location, start_time, end_time, capacity, price_cents, created_at
		FROM events
		WHERE id = $1
	`

	var event Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *repository) GetAllEvents(ctx context.Context, onlyFuture bool) ([]Event, error) {
	query := `
		SELECT id, title, location, start_time, end_time, capacity, price_cents, created_at
		FROM events
	`
	if onlyFuture {
		query += ` WHERE start_time > NOW()`
	}
	query += ` ORDER BY start_time`

	var events []Event
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *repository) GetEventsWithAvailability(ctx context.Context, onlyFuture bool) ([]EventWithAvailability, error) {
	query := `
		SELECT e.id, e.title, e.location, e.start_time, e.end_time, e.capacity, e.price_cents, e.created_at,
		       COUNT(en.id) FILTER (WHERE en.status = 'confirmed') AS enrolled_count
		FROM events e
		LEFT JOIN enrollments en ON en.event_id = e.id
	`
	if onlyFuture {
		query += ` WHERE e.start_time > NOW()`
	}
	query += `
		GROUP BY e.id
		ORDER BY e.start_time
	`

	var events []EventWithAvailability
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, err
	}

	for i := range events {
		events[i].Available = events[i].Capacity - events[i].EnrolledCount
		if events[i].Available < 0 {
			events[i].Available = 0
		}
		events[i].IsFull = events[i].EnrolledCount >= events[i].Capacity
	}

	return events, nil
}
