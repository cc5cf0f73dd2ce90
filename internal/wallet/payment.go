package wallet

import (
	"fmt"
	"strconv"
	"strings"
)

type Method string

const (
	MethodFree         Method = "free"
	MethodPass         Method = "pass"
	MethodWallet       Method = "wallet"
	MethodWalletRefund Method = "wallet_refund"
	MethodPassRefund   Method = "pass_refund"
	MethodNone         Method = "none"
)

// Payment describes how one event enrollment was (or would be) paid for.
// The string form produced by Encode is the only piece of state the
// enrollment side needs to persist to make a later refund possible.
type Payment struct {
	Method      Method `json:"method"`
	PackageID   string `json:"package_id,omitempty"`
	AmountCents int64  `json:"amount_cents,omitempty"`
}

// Encode serializes the payment for storage alongside an enrollment.
// Formats: "free:0", "pass:<packageID>", "wallet:$<cents>".
func (p Payment) Encode() string {
	switch p.Method {
	case MethodPass:
		return "pass:" + p.PackageID
	case MethodWallet:
		return fmt.Sprintf("wallet:$%d", p.AmountCents)
	default:
		return "free:0"
	}
}

// ParsePayment decodes a stored payment descriptor. Anything that is not
// a well-formed pass or wallet descriptor comes back as MethodNone, so a
// refund of a corrupt or free descriptor degrades to a no-op.
func ParsePayment(s string) Payment {
	switch {
	case strings.HasPrefix(s, "pass:"):
		packageID := strings.TrimPrefix(s, "pass:")
		if packageID == "" {
			return Payment{Method: MethodNone}
		}
		return Payment{Method: MethodPass, PackageID: packageID}

	case strings.HasPrefix(s, "wallet:$"):
		raw := strings.TrimPrefix(s, "wallet:$")
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || amount <= 0 {
			return Payment{Method: MethodNone}
		}
		return Payment{Method: MethodWallet, AmountCents: amount}

	default:
		return Payment{Method: MethodNone}
	}
}
