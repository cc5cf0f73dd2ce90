package enrollment

import (
	"context"
	"errors"
	"time"

	"eventpass/internal/email"
	"eventpass/internal/event"
	"eventpass/internal/logger"
	"eventpass/internal/metrics"
	"eventpass/internal/user"
	"eventpass/internal/wallet"
)

var (
	ErrEventNotFound            = errors.New("event not found")
	ErrEventInPast              = errors.New("cannot enroll in a past event")
	ErrEventFull                = errors.New("event is full")
	ErrAlreadyEnrolled          = errors.New("user already enrolled in this event")
	ErrEnrollmentNotFound       = errors.New("enrollment not found")
	ErrNotOwner                 = errors.New("can only cancel own enrollments")
	ErrCancellationWindowClosed = errors.New("cancellation window closed")
)

type Service interface {
	Enroll(ctx context.Context, userID, eventID int) (*Enrollment, wallet.Payment, error)
	Cancel(ctx context.Context, userID, enrollmentID int) (wallet.Payment, error)
	GetUserEnrollments(ctx context.Context, userID int) ([]EnrollmentWithEvent, error)
	GetEventEnrollments(ctx context.Context, eventID int) ([]EnrollmentWithUser, error)
}

type service struct {
	enrollmentRepo Repository
	eventRepo      event.Repository
	walletService  wallet.Service
	userRepo       user.Repository
	emailService   *email.Service
}

func NewService(
	enrollmentRepo Repository,
	eventRepo event.Repository,
	walletService wallet.Service,
	userRepo user.Repository,
	emailService *email.Service,
) Service {
	return &service{
		enrollmentRepo: enrollmentRepo,
		eventRepo:      eventRepo,
		walletService:  walletService,
		userRepo:       userRepo,
		emailService:   emailService,
	}
}

func (s *service) Enroll(ctx context.Context, userID, eventID int) (*Enrollment, wallet.Payment, error) {
	ev, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, wallet.Payment{}, ErrEventNotFound
	}

	if ev.StartTime.Before(time.Now()) {
		return nil, wallet.Payment{}, ErrEventInPast
	}

	enrolledCount, err := s.enrollmentRepo.CountConfirmedForEvent(ctx, eventID)
	if err != nil {
		return nil, wallet.Payment{}, err
	}
	if enrolledCount >= ev.Capacity {
		return nil, wallet.Payment{}, ErrEventFull
	}

	hasEnrollment, err := s.enrollmentRepo.UserHasEnrollment(ctx, userID, eventID)
	if err != nil {
		return nil, wallet.Payment{}, err
	}
	if hasEnrollment {
		return nil, wallet.Payment{}, ErrAlreadyEnrolled
	}

	// Settle payment first; the charge either fully applies or not at all.
	payment, err := s.walletService.Charge(ctx, userID, ev.PriceCents)
	if err != nil {
		return nil, wallet.Payment{}, err
	}

	enrollment, err := s.enrollmentRepo.CreateEnrollment(ctx, userID, eventID, payment.Encode())
	if err != nil {
		// The charge already landed; hand the money back before failing.
		if _, refundErr := s.walletService.Refund(ctx, userID, payment.Encode()); refundErr != nil {
			logger.Error("failed to refund after enrollment create failure",
				"user_id", userID, "event_id", eventID, "error", refundErr)
		}
		return nil, wallet.Payment{}, err
	}

	metrics.RecordEnrollment(string(payment.Method))

	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		s.emailService.SendEnrollmentConfirmation(ctx, u.Email, u.Name, ev.Title, ev.Location, ev.StartTime)
	}

	return enrollment, payment, nil
}

// Cancel marks the enrollment cancelled and refunds its payment. The
// refund step never fails once the cancellation is committed: unmatched
// refund targets degrade to a no-op inside the wallet service.
func (s *service) Cancel(ctx context.Context, userID, enrollmentID int) (wallet.Payment, error) {
	enrollment, err := s.enrollmentRepo.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return wallet.Payment{}, ErrEnrollmentNotFound
	}

	if enrollment.UserID != userID {
		return wallet.Payment{}, ErrNotOwner
	}

	ev, err := s.eventRepo.GetEventByID(ctx, enrollment.EventID)
	if err != nil {
		return wallet.Payment{}, ErrEventNotFound
	}

	if time.Now().After(ev.StartTime.Add(-CancellationWindow)) {
		return wallet.Payment{}, ErrCancellationWindowClosed
	}

	if err := s.enrollmentRepo.CancelEnrollment(ctx, enrollmentID); err != nil {
		if errors.Is(err, ErrEnrollmentNotFoundOrAlreadyCancelled) {
			return wallet.Payment{}, ErrEnrollmentNotFound
		}
		return wallet.Payment{}, err
	}

	refund, err := s.walletService.Refund(ctx, userID, enrollment.Payment)
	if err != nil {
		// Storage failure on refund: the cancellation stands, log and move on.
		logger.Error("refund failed after cancellation",
			"user_id", userID, "enrollment_id", enrollmentID, "error", err)
	}

	metrics.RecordEnrollmentCancellation()
	metrics.RecordRefund(string(refund.Method))

	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		s.emailService.SendCancellation(ctx, u.Email, u.Name, ev.Title)
	}

	return refund, nil
}

func (s *service) GetUserEnrollments(ctx context.Context, userID int) ([]EnrollmentWithEvent, error) {
	return s.enrollmentRepo.GetUserEnrollments(ctx, userID)
}

func (s *service) GetEventEnrollments(ctx context.Context, eventID int) ([]EnrollmentWithUser, error) {
	return s.enrollmentRepo.GetEnrollmentsByEvent(ctx, eventID)
}
