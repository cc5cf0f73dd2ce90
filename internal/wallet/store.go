package wallet

import "context"

// Account is the unit of mutual exclusion: one user's balance plus their
// passes. Mutation functions passed to Store.Update receive an Account,
// adjust balance and pass credits in place and queue ledger entries via
// Append; the store persists everything atomically after the function
// returns nil, or discards it all when the function errors.
type Account struct {
	UserID       int
	BalanceCents int64
	Currency     string
	Passes       []Pass

	entries []LedgerEntry
}

// Append queues a ledger entry to be written with this update.
func (a *Account) Append(entryType string, amountCents int64, note string) {
	a.entries = append(a.entries, LedgerEntry{
		UserID:      a.UserID,
		Type:        entryType,
		AmountCents: amountCents,
		Note:        note,
	})
}

// Store abstracts wallet persistence so the charge/refund logic runs
// unchanged against Postgres or process memory.
type Store interface {
	// Account returns a read-only snapshot; unknown users get an empty
	// account rather than an error.
	Account(ctx context.Context, userID int) (*Account, error)

	// Update runs fn inside a per-user critical section. Two concurrent
	// updates for the same user never interleave their read-modify-write
	// sequences. When fn returns an error nothing is persisted and the
	// error is returned as-is.
	Update(ctx context.Context, userID int, fn func(*Account) error) (*Account, error)

	// Ledger returns at most limit entries for the user, newest first.
	Ledger(ctx context.Context, userID int, limit int) ([]LedgerEntry, error)
}
