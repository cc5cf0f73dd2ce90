package event

import "time"

type Event struct {
	ID         int       `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Location   string    `db:"location" json:"location"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	EndTime    time.Time `db:"end_time" json:"end_time"`
	Capacity   int       `db:"capacity" json:"capacity"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type EventWithAvailability struct {
	Event
	EnrolledCount int  `db:"enrolled_count" json:"enrolled_count"`
	Available     int  `json:"available"`
	IsFull        bool `json:"is_full"`
}

type CreateEventRequest struct {
	Title      string `json:"title" binding:"required" validate:"required,max=200"`
	Location   string `json:"location" binding:"required" validate:"required,max=200"`
	StartTime  string `json:"start_time" binding:"required" validate:"required"`
	EndTime    string `json:"end_time" binding:"required" validate:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1" validate:"required,gte=1"`
	PriceCents int64  `json:"price_cents" binding:"min=0" validate:"gte=0"`
}
