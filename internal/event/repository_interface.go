package event

import (
	"context"
	"time"
)

type Repository interface {
	CreateEvent(ctx context.Context, title, location string, startTime, endTime time.Time, capacity int, priceCents int64) (*Event, error)
	GetEventByID(ctx context.Context, id int) (*Event, error)
	GetAllEvents(ctx context.Context, onlyFuture bool) ([]Event, error)
	GetEventsWithAvailability(ctx context.Context, onlyFuture bool) ([]EventWithAvailability, error)
}
