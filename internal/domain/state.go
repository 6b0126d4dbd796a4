package domain

import (
	"math"
	"math/big"
	"time"
)

// Stats are the derived per-click and production numbers. They change only
// when upgrade ownership changes.
type Stats struct {
	PerClick   *big.Int
	PerSecond  *big.Int
	CritChance float64
	CritMult   float64
}

// NewStats returns normalized base stats with no passive production.
func NewStats(perClick uint64, critChance, critMult float64) Stats {
	return Stats{
		PerClick:   new(big.Int).SetUint64(perClick),
		PerSecond:  new(big.Int),
		CritChance: critChance,
		CritMult:   critMult,
	}.Normalize()
}

// Normalize enforces CritChance in [0,1], CritMult >= 1 and non-negative,
// non-nil amounts.
func (s Stats) Normalize() Stats {
	out := s.Clone()
	switch {
	case out.CritChance < 0 || math.IsNaN(out.CritChance):
		out.CritChance = 0
	case out.CritChance > 1:
		out.CritChance = 1
	}
	if out.CritMult < 1 || math.IsNaN(out.CritMult) {
		out.CritMult = 1
	}
	if out.PerClick.Sign() < 0 {
		out.PerClick.SetInt64(0)
	}
	if out.PerSecond.Sign() < 0 {
		out.PerSecond.SetInt64(0)
	}
	return out
}

// Clone returns a copy that shares no big.Int with s.
func (s Stats) Clone() Stats {
	out := s
	out.PerClick = cloneInt(s.PerClick)
	out.PerSecond = cloneInt(s.PerSecond)
	return out
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// ClickEvent is one edge-triggered primary-button press in world coordinates.
// Hit is set by the presentation layer's hit test.
type ClickEvent struct {
	WorldX float64
	WorldY float64
	Hit    bool
}

// State is a point-in-time snapshot of the game.
type State struct {
	Balance       *big.Int
	Stats         Stats
	Owned         []Owned
	LastSettledAt time.Time
}
