// Package upgrades defines the upgrade catalog: prices, effects, and the
// mapping from ownership to Stats.
package upgrades

import (
	"errors"
	"fmt"
	"math/big"

	"eggs/internal/config"
	"eggs/internal/domain"
	"eggs/internal/ledger"
)

// ErrUnknownKind is returned for kinds outside the catalog.
var ErrUnknownKind = errors.New("unknown upgrade kind")

// Effect is the Stats change granted by a single owned unit.
type Effect struct {
	PerClick   int64
	PerSecond  int64
	CritChance float64
	CritMult   float64
}

// Effects is the per-unit effect table.
var Effects = map[domain.UpgradeKind]Effect{
	domain.Chicken:  {PerSecond: 1},
	domain.HenHouse: {PerClick: 1, CritChance: 0.02, CritMult: 0.25},
}

// Catalog prices upgrades.
type Catalog struct {
	baseCost  map[domain.UpgradeKind]*big.Int
	growthPct *big.Int
}

func NewCatalog(cfg config.Config) *Catalog {
	return &Catalog{
		baseCost: map[domain.UpgradeKind]*big.Int{
			domain.Chicken:  new(big.Int).SetUint64(cfg.ChickenBaseCost),
			domain.HenHouse: new(big.Int).SetUint64(cfg.HenHouseBaseCost),
		},
		growthPct: new(big.Int).SetUint64(cfg.CostGrowthPercent),
	}
}

// DisplayName returns the human-readable label for kind.
func DisplayName(kind domain.UpgradeKind) string {
	return kind.String()
}

// Cost returns the price of the next unit of kind when owned units are
// already held: base * growth^owned, truncated.
func (c *Catalog) Cost(kind domain.UpgradeKind, owned uint32) (*big.Int, error) {
	base, ok := c.baseCost[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	n := big.NewInt(int64(owned))
	num := new(big.Int).Exp(c.growthPct, n, nil)
	den := new(big.Int).Exp(big.NewInt(100), n, nil)
	cost := new(big.Int).Mul(base, num)
	return cost.Quo(cost, den), nil
}

// Recompute derives Stats from base and the owned counts. It depends on
// nothing else.
func Recompute(base domain.Stats, owned []domain.Owned) domain.Stats {
	st := base.Clone()
	for _, o := range owned {
		eff, ok := Effects[o.Kind]
		if !ok || o.Count == 0 {
			continue
		}
		n := int64(o.Count)
		st.PerClick.Add(st.PerClick, big.NewInt(eff.PerClick*n))
		st.PerSecond.Add(st.PerSecond, big.NewInt(eff.PerSecond*n))
		st.CritChance += eff.CritChance * float64(n)
		st.CritMult += eff.CritMult * float64(n)
	}
	return st.Normalize()
}

// Purchase debits cost from l and records one more unit of kind. On
// insufficient funds neither l nor o change.
func Purchase(o *domain.Ownership, l *ledger.Ledger, kind domain.UpgradeKind, cost *big.Int) (uint32, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err := l.Debit(cost); err != nil {
		return o.Count(kind), fmt.Errorf("purchase %s for %s: %w", kind, cost, err)
	}
	return o.Add(kind), nil
}

// Describe returns the button caption for kind, e.g.
// "(0) Chicken\n\n+1 Eggs per second".
func Describe(kind domain.UpgradeKind, owned uint32) string {
	eff := Effects[kind]
	var line string
	switch {
	case eff.PerSecond != 0:
		line = fmt.Sprintf("+%d Eggs per second", eff.PerSecond)
	case eff.PerClick != 0:
		line = fmt.Sprintf("+%d Eggs per click", eff.PerClick)
	}
	return fmt.Sprintf("(%d) %s\n\n%s", owned, DisplayName(kind), line)
}
