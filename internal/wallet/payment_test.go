package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentEncode(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		encoded string
	}{
		{"Free", Payment{Method: MethodFree}, "free:0"},
		{"Pass", Payment{Method: MethodPass, PackageID: "pack_3"}, "pass:pack_3"},
		{"Wallet", Payment{Method: MethodWallet, AmountCents: 3900}, "wallet:$3900"},
		{"Zero value", Payment{}, "free:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.encoded, tt.payment.Encode())
		})
	}
}

func TestParsePayment(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   Payment
	}{
		{"Pass", "pass:pack_3", Payment{Method: MethodPass, PackageID: "pack_3"}},
		{"Wallet", "wallet:$3900", Payment{Method: MethodWallet, AmountCents: 3900}},
		{"Free", "free:0", Payment{Method: MethodNone}},
		{"Empty", "", Payment{Method: MethodNone}},
		{"Garbage", "bitcoin:1000", Payment{Method: MethodNone}},
		{"Pass without id", "pass:", Payment{Method: MethodNone}},
		{"Wallet non-numeric", "wallet:$abc", Payment{Method: MethodNone}},
		{"Wallet negative", "wallet:$-500", Payment{Method: MethodNone}},
		{"Wallet zero", "wallet:$0", Payment{Method: MethodNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePayment(tt.descriptor))
		})
	}
}

func TestPaymentRoundTrip(t *testing.T) {
	payments := []Payment{
		{Method: MethodPass, PackageID: "pack_10"},
		{Method: MethodWallet, AmountCents: 12345},
	}

	for _, p := range payments {
		decoded := ParsePayment(p.Encode())
		assert.Equal(t, p, decoded)
	}
}
