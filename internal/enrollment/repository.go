package enrollment

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrEnrollmentNotFoundOrAlreadyCancelled = errors.New("enrollment not found or already cancelled")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEnrollment(ctx context.Context, userID, eventID int, payment string) (*Enrollment, error) {
	query := `
		INSERT INTO enrollments (user_id, event_id, status, payment)
		VALUES ($1, $2, 'confirmed', $3)
		RETURNING id, user_id, event_id, status, payment, created_at
	`

	var enrollment Enrollment
	err := r.db.GetContext(ctx, &enrollment, query, userID, eventID, payment)
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

func (r *repository) GetEnrollmentByID(ctx context.Context, id int) (*Enrollment, error) {
	query := `
		SELECT id, user_id, event_id, status, payment, created_at
		FROM enrollments
		WHERE id = $1
	`

	var enrollment Enrollment
	err := r.db.GetContext(ctx, &enrollment, query, id)
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

func (r *repository) CancelEnrollment(ctx context.Context, id int) error {
	query := `
		UPDATE enrollments
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEnrollmentNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) CountConfirmedForEvent(ctx context.Context, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM enrollments
		WHERE event_id = $1 AND status = 'confirmed'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, eventID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) UserHasEnrollment(ctx context.Context, userID, eventID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE user_id = $1 AND event_id = $2 AND status = 'confirmed'
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, eventID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) GetUserEnrollments(ctx context.Context, userID int) ([]EnrollmentWithEvent, error) {
	query := `
		SELECT en.id, en.user_id, en.event_id, en.status, en.payment, en.created_at,
		       e.title AS event_title, e.location AS event_location,
		       e.start_time AS event_start, e.end_time AS event_end
		FROM enrollments en
		JOIN events e ON e.id = en.event_id
		WHERE en.user_id = $1
		ORDER BY e.start_time DESC
	`

	var enrollments []EnrollmentWithEvent
	err := r.db.SelectContext(ctx, &enrollments, query, userID)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *repository) GetEnrollmentsByEvent(ctx context.Context, eventID int) ([]EnrollmentWithUser, error) {
	query := `
		SELECT en.id, en.user_id, en.event_id, en.status, en.payment, en.created_at,
		       u.name AS user_name, u.email AS user_email
		FROM enrollments en
		JOIN users u ON u.id = en.user_id
		WHERE en.event_id = $1
		ORDER BY en.created_at
	`

	var enrollments []EnrollmentWithUser
	err := r.db.SelectContext(ctx, &enrollments, query, eventID)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}
