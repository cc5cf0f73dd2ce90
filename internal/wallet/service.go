package wallet

import (
	"context"
	"errors"
	"fmt"

	"eventpass/internal/catalog"
	"eventpass/internal/logger"
)

// DefaultLedgerLimit caps how many ledger entries a state snapshot carries.
const DefaultLedgerLimit = 20

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrPackageNotFound     = errors.New("package not found")
	ErrInsufficientWallet  = errors.New("insufficient wallet balance for package")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Service interface {
	State(ctx context.Context, userID int) (*State, error)
	TopUp(ctx context.Context, userID int, amountCents int64) (int64, error)
	PurchasePackage(ctx context.Context, userID int, packageID string) (*State, error)
	Charge(ctx context.Context, userID int, amountCents int64) (Payment, error)
	Refund(ctx context.Context, userID int, descriptor string) (Payment, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) State(ctx context.Context, userID int) (*State, error) {
	account, err := s.store.Account(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.Ledger(ctx, userID, DefaultLedgerLimit)
	if err != nil {
		return nil, err
	}

	return &State{
		BalanceCents: account.BalanceCents,
		Currency:     account.Currency,
		Passes:       account.Passes,
		Ledger:       entries,
	}, nil
}

func (s *service) TopUp(ctx context.Context, userID int, amountCents int64) (int64, error) {
	if amountCents <= 0 {
		return 0, ErrInvalidAmount
	}

	account, err := s.store.Update(ctx, userID, func(a *Account) error {
		a.BalanceCents += amountCents
		a.Append(EntryTopUp, amountCents, "wallet top-up")
		return nil
	})
	if err != nil {
		return 0, err
	}

	return account.BalanceCents, nil
}

func (s *service) PurchasePackage(ctx context.Context, userID int, packageID string) (*State, error) {
	pkg, ok := catalog.ByID(packageID)
	if !ok {
		return nil, ErrPackageNotFound
	}

	_, err := s.store.Update(ctx, userID, func(a *Account) error {
		if a.BalanceCents < pkg.PriceCents {
			return ErrInsufficientWallet
		}

		a.BalanceCents -= pkg.PriceCents
		a.Passes = append(a.Passes, Pass{
			UserID:           userID,
			PackageID:        pkg.ID,
			Title:            pkg.Title,
			TotalCredits:     pkg.Credits,
			RemainingCredits: pkg.Credits,
		})
		a.Append(EntryPackage, -pkg.PriceCents, fmt.Sprintf("purchased %s (%d credits)", pkg.Title, pkg.Credits))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.State(ctx, userID)
}

// Charge settles the price of one event entry. Free events are a pure
// no-op. A pass credit is always consumed before the cash balance: users
// bought the bundle to be used first.
func (s *service) Charge(ctx context.Context, userID int, amountCents int64) (Payment, error) {
	if amountCents <= 0 {
		return Payment{Method: MethodFree}, nil
	}

	var payment Payment
	_, err := s.store.Update(ctx, userID, func(a *Account) error {
		for i := range a.Passes {
			if a.Passes[i].RemainingCredits > 0 {
				a.Passes[i].RemainingCredits--
				a.Append(EntryEvent, 0, fmt.Sprintf("event entry paid with pass credit (%s)", a.Passes[i].PackageID))
				payment = Payment{Method: MethodPass, PackageID: a.Passes[i].PackageID}
				return nil
			}
		}

		if a.BalanceCents >= amountCents {
			a.BalanceCents -= amountCents
			a.Append(EntryEvent, -amountCents, "event entry paid from wallet")
			payment = Payment{Method: MethodWallet, AmountCents: amountCents}
			return nil
		}

		return ErrInsufficientBalance
	})
	if err != nil {
		return Payment{}, err
	}

	return payment, nil
}

// Refund reverses a previously encoded charge. It never surfaces a
// business error: unmatched or malformed descriptors degrade to a no-op
// with MethodNone, because by the time a refund runs the cancellation is
// already committed on the enrollment side. Only storage failures return
// a non-nil error.
func (s *service) Refund(ctx context.Context, userID int, descriptor string) (Payment, error) {
	original := ParsePayment(descriptor)

	switch original.Method {
	case MethodWallet:
		_, err := s.store.Update(ctx, userID, func(a *Account) error {
			a.BalanceCents += original.AmountCents
			a.Append(EntryEvent, original.AmountCents, "refund for cancelled event entry")
			return nil
		})
		if err != nil {
			return Payment{Method: MethodNone}, err
		}
		return Payment{Method: MethodWalletRefund, AmountCents: original.AmountCents}, nil

	case MethodPass:
		_, err := s.store.Update(ctx, userID, func(a *Account) error {
			for i := range a.Passes {
				p := &a.Passes[i]
				if p.PackageID != original.PackageID {
					continue
				}
				if p.RemainingCredits < p.TotalCredits {
					p.RemainingCredits++
					a.Append(EntryEvent, 0, fmt.Sprintf("pass credit restored (%s)", p.PackageID))
				}
				return nil
			}
			// No matching pass: silent no-op by contract, but leave a trace.
			logger.Debug("pass refund target not found", "user_id", userID, "package_id", original.PackageID)
			return nil
		})
		if err != nil {
			return Payment{Method: MethodNone}, err
		}
		return Payment{Method: MethodPassRefund, PackageID: original.PackageID}, nil

	default:
		return Payment{Method: MethodNone}, nil
	}
}
