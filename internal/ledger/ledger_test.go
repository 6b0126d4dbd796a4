package ledger

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerIsZero(t *testing.T) {
	l := New()
	assert.Zero(t, l.Balance().Sign())
	assert.Equal(t, "0", l.Format())
}

func TestCreditAccumulates(t *testing.T) {
	l := New()
	l.Credit(big.NewInt(3))
	l.Credit(big.NewInt(4))
	assert.Equal(t, "7", l.Format())
}

func TestCreditIgnoresNonPositive(t *testing.T) {
	l := New()
	l.Credit(big.NewInt(5))
	l.Credit(big.NewInt(-2))
	l.Credit(nil)
	l.Credit(new(big.Int))
	assert.Equal(t, "5", l.Format())
}

func TestFormatKeepsEveryDigit(t *testing.T) {
	l := New()
	huge, ok := new(big.Int).SetString("1"+strings.Repeat("0", 60), 10)
	require.True(t, ok)
	l.Credit(huge)
	l.Credit(big.NewInt(7))

	want := "1" + strings.Repeat("0", 59) + "7"
	assert.Equal(t, want, l.Format())
	assert.NotContains(t, l.Format(), "e")
}

func TestFormatGrouped(t *testing.T) {
	l := New()
	l.Credit(big.NewInt(1234567))
	assert.Equal(t, "1,234,567", l.FormatGrouped())
}

func TestBalanceIsSnapshot(t *testing.T) {
	l := New()
	l.Credit(big.NewInt(10))
	snap := l.Balance()
	snap.SetInt64(999)
	assert.Equal(t, "10", l.Format())
}

func TestDebit(t *testing.T) {
	l := New()
	l.Credit(big.NewInt(10))

	require.NoError(t, l.Debit(big.NewInt(4)))
	assert.Equal(t, "6", l.Format())

	err := l.Debit(big.NewInt(7))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, "6", l.Format(), "failed debit must not change balance")

	require.NoError(t, l.Debit(big.NewInt(6)))
	assert.Equal(t, "0", l.Format())
}
