package enrollment

import (
	"time"

	"eventpass/internal/wallet"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	// CancellationWindow is how long before the event start a confirmed
	// enrollment can still be cancelled for a refund.
	CancellationWindow = 24 * time.Hour
)

type Enrollment struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	EventID   int       `db:"event_id" json:"event_id"`
	Status    string    `db:"status" json:"status"`
	Payment   string    `db:"payment" json:"payment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type EnrollmentWithEvent struct {
	Enrollment
	EventTitle    string    `db:"event_title" json:"event_title"`
	EventLocation string    `db:"event_location" json:"event_location"`
	EventStart    time.Time `db:"event_start" json:"event_start"`
	EventEnd      time.Time `db:"event_end" json:"event_end"`
}

type EnrollmentWithUser struct {
	Enrollment
	UserName  string `db:"user_name" json:"user_name"`
	UserEmail string `db:"user_email" json:"user_email"`
}

type EnrollResponse struct {
	Enrollment *Enrollment    `json:"enrollment"`
	PaidWith   wallet.Payment `json:"paid_with"`
}

type CancelResponse struct {
	Message string `json:"message" example:"Enrollment cancelled successfully"`
	Refund  string `json:"refund" example:"wallet_refund"`
}
