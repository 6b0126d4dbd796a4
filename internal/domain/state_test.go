package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStats(t *testing.T) {
	st := NewStats(1, 0, 1)
	assert.Equal(t, int64(1), st.PerClick.Int64())
	assert.Zero(t, st.PerSecond.Sign())
	assert.Equal(t, 0.0, st.CritChance)
	assert.Equal(t, 1.0, st.CritMult)
}

func TestNewStatsNormalizes(t *testing.T) {
	st := NewStats(3, 4, 0.2)
	assert.Equal(t, int64(3), st.PerClick.Int64())
	assert.Equal(t, 1.0, st.CritChance)
	assert.Equal(t, 1.0, st.CritMult)
}

func TestStatsNormalize(t *testing.T) {
	tests := []struct {
		name       string
		in         Stats
		wantChance float64
		wantMult   float64
	}{
		{"in range", Stats{CritChance: 0.3, CritMult: 2}, 0.3, 2},
		{"chance above one", Stats{CritChance: 1.7, CritMult: 1}, 1, 1},
		{"negative chance", Stats{CritChance: -0.2, CritMult: 1}, 0, 1},
		{"nan chance", Stats{CritChance: math.NaN(), CritMult: 1}, 0, 1},
		{"mult below one", Stats{CritChance: 0, CritMult: 0.5}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantChance, got.CritChance)
			assert.Equal(t, tt.wantMult, got.CritMult)
			require.NotNil(t, got.PerClick)
			require.NotNil(t, got.PerSecond)
		})
	}
}

func TestStatsNormalizeNegativeAmounts(t *testing.T) {
	got := Stats{PerClick: big.NewInt(-4), PerSecond: big.NewInt(-1), CritMult: 1}.Normalize()
	assert.Zero(t, got.PerClick.Sign())
	assert.Zero(t, got.PerSecond.Sign())
}

func TestStatsCloneIsDeep(t *testing.T) {
	st := NewStats(1, 0, 1)
	cp := st.Clone()
	cp.PerClick.SetInt64(42)
	assert.Equal(t, int64(1), st.PerClick.Int64())
}
