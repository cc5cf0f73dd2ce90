package enrollment

import "context"

type Repository interface {
	CreateEnrollment(ctx context.Context, userID, eventID int, payment string) (*Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int) (*Enrollment, error)
	CancelEnrollment(ctx context.Context, id int) error
	CountConfirmedForEvent(ctx context.Context, eventID int) (int, error)
	UserHasEnrollment(ctx context.Context, userID, eventID int) (bool, error)
	GetUserEnrollments(ctx context.Context, userID int) ([]EnrollmentWithEvent, error)
	GetEnrollmentsByEvent(ctx context.Context, eventID int) ([]EnrollmentWithUser, error)
}
