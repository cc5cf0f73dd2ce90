package wallet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type postgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Account(ctx context.Context, userID int) (*Account, error) {
	w := &Wallet{}
	err := s.db.GetContext(ctx, w,
		`SELECT id, user_id, balance_cents, currency, created_at, updated_at
		 FROM wallets
		 WHERE user_id = $1`,
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &Account{UserID: userID, Currency: "USD"}, nil
	}
	if err != nil {
		return nil, err
	}

	passes, err := s.passesForUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	return &Account{
		UserID:       userID,
		BalanceCents: w.BalanceCents,
		Currency:     w.Currency,
		Passes:       passes,
	}, nil
}

func (s *postgresStore) Update(ctx context.Context, userID int, fn func(*Account) error) (*Account, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Row lock on the wallet serializes concurrent updates per user.
	w := Wallet{}
	err = tx.QueryRowxContext(ctx,
		`SELECT id, user_id, balance_cents, currency, created_at, updated_at
		 FROM wallets
		 WHERE user_id = $1
		 FOR UPDATE`,
		userID,
	).StructScan(&w)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		err = tx.QueryRowxContext(ctx,
			`INSERT INTO wallets (user_id)
			 VALUES ($1)
			 RETURNING id, user_id, balance_cents, currency, created_at, updated_at`,
			userID,
		).StructScan(&w)
		if err != nil {
			return nil, err
		}
	}

	passes, err := s.passesForUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	account := &Account{
		UserID:       userID,
		BalanceCents: w.BalanceCents,
		Currency:     w.Currency,
		Passes:       passes,
	}

	if err := fn(account); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets
		 SET balance_cents = $1, updated_at = NOW()
		 WHERE id = $2`,
		account.BalanceCents, w.ID,
	)
	if err != nil {
		return nil, err
	}

	for i := range account.Passes {
		p := &account.Passes[i]
		if p.ID == 0 {
			err = tx.QueryRowxContext(ctx,
				`INSERT INTO passes (user_id, package_id, title, total_credits, remaining_credits)
				 VALUES ($1, $2, $3, $4, $5)
				 RETURNING id, purchased_at`,
				userID, p.PackageID, p.Title, p.TotalCredits, p.RemainingCredits,
			).Scan(&p.ID, &p.PurchasedAt)
		} else {
			_, err = tx.ExecContext(ctx,
				`UPDATE passes
				 SET remaining_credits = $1
				 WHERE id = $2`,
				p.RemainingCredits, p.ID,
			)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, entry := range account.entries {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO wallet_ledger (user_id, type, amount_cents, note)
			 VALUES ($1, $2, $3, $4)`,
			entry.UserID, entry.Type, entry.AmountCents, entry.Note,
		)
		if err != nil {
			return nil, err
		}
	}
	account.entries = nil

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *postgresStore) Ledger(ctx context.Context, userID int, limit int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = DefaultLedgerLimit
	}

	entries := []LedgerEntry{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT id, user_id, type, amount_cents, note, created_at
		 FROM wallet_ledger
		 WHERE user_id = $1
		 ORDER BY id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

type queryer interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (s *postgresStore) passesForUser(ctx context.Context, q queryer, userID int) ([]Pass, error) {
	passes := []Pass{}
	err := q.SelectContext(ctx, &passes,
		`SELECT id, user_id, package_id, title, total_credits, remaining_credits, purchased_at
		 FROM passes
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return passes, nil
}
