package wallet

import "time"

const (
	EntryTopUp   = "topup"
	EntryPackage = "package"
	EntryEvent   = "event"
)

type Wallet struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	BalanceCents int64     `db:"balance_cents" json:"balance_cents"`
	Currency     string    `db:"currency" json:"currency"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Pass is a bundle of prepaid event-entry credits owned by a user.
// Title is captured at purchase time so later catalog edits do not
// rewrite purchase history. Exhausted passes are kept as history.
type Pass struct {
	ID               int       `db:"id" json:"id"`
	UserID           int       `db:"user_id" json:"user_id"`
	PackageID        string    `db:"package_id" json:"package_id"`
	Title            string    `db:"title" json:"title"`
	TotalCredits     int       `db:"total_credits" json:"total_credits"`
	RemainingCredits int       `db:"remaining_credits" json:"remaining_credits"`
	PurchasedAt      time.Time `db:"purchased_at" json:"purchased_at"`
}

// LedgerEntry is an append-only audit record. AmountCents is signed:
// positive credits the user, negative debits them.
type LedgerEntry struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Type        string    `db:"type" json:"type"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Note        string    `db:"note" json:"note"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// State is the read snapshot returned to callers: current balance,
// owned passes in purchase order and the most recent ledger entries.
type State struct {
	BalanceCents int64         `json:"balance_cents"`
	Currency     string        `json:"currency"`
	Passes       []Pass        `json:"passes"`
	Ledger       []LedgerEntry `json:"ledger"`
}

type TopUpRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}
