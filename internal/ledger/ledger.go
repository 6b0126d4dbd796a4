// Package ledger holds the player's currency balance as an arbitrary
// precision, never negative integer.
package ledger

import (
	"errors"
	"math/big"

	"github.com/dustin/go-humanize"
)

// ErrInsufficientFunds is returned by Debit when the balance is below the
// requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Ledger is the authoritative currency balance. The zero value is an empty
// ledger. It is not safe for concurrent use; the game service serializes
// access.
type Ledger struct {
	balance big.Int
}

func New() *Ledger {
	return &Ledger{}
}

// Credit adds amount to the balance. Nil and negative amounts are ignored.
func (l *Ledger) Credit(amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}
	l.balance.Add(&l.balance, amount)
}

// Debit subtracts amount, leaving the balance untouched if it would go
// negative.
func (l *Ledger) Debit(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return nil
	}
	if l.balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}
	l.balance.Sub(&l.balance, amount)
	return nil
}

// Balance returns a snapshot of the balance.
func (l *Ledger) Balance() *big.Int {
	return new(big.Int).Set(&l.balance)
}

// Format returns the exact decimal balance.
func (l *Ledger) Format() string {
	return l.balance.String()
}

// FormatGrouped returns the exact balance with thousands separators.
func (l *Ledger) FormatGrouped() string {
	return humanize.BigComma(&l.balance)
}
