package upgrades

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eggs/internal/config"
	"eggs/internal/domain"
	"eggs/internal/ledger"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Chicken", DisplayName(domain.Chicken))
	assert.Equal(t, "Hen House", DisplayName(domain.HenHouse))
}

func TestEveryKindHasEffect(t *testing.T) {
	for _, k := range domain.UpgradeKinds {
		_, ok := Effects[k]
		assert.True(t, ok, "missing effect for %s", k)
	}
}

func TestCostCurve(t *testing.T) {
	cat := NewCatalog(config.Default())

	tests := []struct {
		kind  domain.UpgradeKind
		owned uint32
		want  int64
	}{
		{domain.Chicken, 0, 10},
		{domain.Chicken, 1, 11},
		{domain.Chicken, 2, 13},
		{domain.HenHouse, 0, 100},
		{domain.HenHouse, 1, 115},
		{domain.HenHouse, 10, 404},
	}
	for _, tt := range tests {
		got, err := cat.Cost(tt.kind, tt.owned)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Int64(), "%s x%d", tt.kind, tt.owned)
	}
}

func TestCostUnknownKind(t *testing.T) {
	cat := NewCatalog(config.Default())
	_, err := cat.Cost(domain.UpgradeKind(9), 0)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRecomputeEmptyOwnershipIsBase(t *testing.T) {
	base := domain.NewStats(1, 0, 1)
	got := Recompute(base, nil)
	assert.Equal(t, int64(1), got.PerClick.Int64())
	assert.Zero(t, got.PerSecond.Sign())
	assert.Equal(t, 0.0, got.CritChance)
	assert.Equal(t, 1.0, got.CritMult)
}

func TestRecomputeAppliesEffects(t *testing.T) {
	owned := []domain.Owned{
		{Kind: domain.Chicken, Count: 3},
		{Kind: domain.HenHouse, Count: 2},
	}
	got := Recompute(domain.NewStats(1, 0, 1), owned)

	assert.Equal(t, int64(3), got.PerClick.Int64())
	assert.Equal(t, int64(3), got.PerSecond.Int64())
	assert.InDelta(t, 0.04, got.CritChance, 1e-12)
	assert.InDelta(t, 1.5, got.CritMult, 1e-12)
}

func TestRecomputeClampsChance(t *testing.T) {
	got := Recompute(domain.NewStats(1, 0, 1), []domain.Owned{{Kind: domain.HenHouse, Count: 80}})
	assert.Equal(t, 1.0, got.CritChance)
}

func TestRecomputeIsPure(t *testing.T) {
	base := domain.NewStats(1, 0, 1)
	owned := []domain.Owned{{Kind: domain.HenHouse, Count: 1}}

	a := Recompute(base, owned)
	b := Recompute(base, owned)

	assert.Equal(t, a.PerClick.String(), b.PerClick.String())
	assert.Equal(t, a.CritChance, b.CritChance)
	assert.Equal(t, int64(1), base.PerClick.Int64(), "base must not be mutated")
}

func TestPurchase(t *testing.T) {
	var o domain.Ownership
	l := ledger.New()
	l.Credit(big.NewInt(25))

	n, err := Purchase(&o, l, domain.Chicken, big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)

	n, err = Purchase(&o, l, domain.Chicken, big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)

	assert.Equal(t, 1, o.Len(), "same kind twice keeps one entry")
	assert.Equal(t, "5", l.Format())
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	var o domain.Ownership
	l := ledger.New()
	l.Credit(big.NewInt(9))

	n, err := Purchase(&o, l, domain.HenHouse, big.NewInt(10))
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Equal(t, uint32(0), n)
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, "9", l.Format())
}

func TestPurchaseUnknownKind(t *testing.T) {
	var o domain.Ownership
	_, err := Purchase(&o, ledger.New(), domain.UpgradeKind(5), big.NewInt(0))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "(0) Chicken\n\n+1 Eggs per second", Describe(domain.Chicken, 0))
	assert.Equal(t, "(2) Hen House\n\n+1 Eggs per click", Describe(domain.HenHouse, 2))
}
