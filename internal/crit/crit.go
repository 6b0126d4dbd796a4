// Package crit decides critical hits and computes their payout.
package crit

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Precision is the fixed-point denominator applied to crit multipliers. A
// multiplier keeps five decimal digits.
const Precision = 100000

var (
	precisionInt = big.NewInt(Precision)
	precisionDec = decimal.NewFromInt(Precision)
)

// Roll draws exactly one sample from src and reports whether it falls below
// chance. chance is clamped to [0,1], so 0 never crits and 1 always does.
func Roll(src Source, chance float64) bool {
	sample := src.Float64()
	switch {
	case math.IsNaN(chance) || chance <= 0:
		return false
	case chance >= 1:
		return true
	}
	return sample < chance
}

// Apply returns base * round(mult*Precision) / Precision using integer
// arithmetic on base. Multipliers below 1, NaN or infinite are treated as 1.
func Apply(base *big.Int, mult float64) *big.Int {
	num := Numerator(mult)
	out := new(big.Int).Mul(base, num)
	return out.Quo(out, precisionInt)
}

// Numerator returns the fixed-point numerator for mult, rounded to nearest
// with halves away from zero.
func Numerator(mult float64) *big.Int {
	if math.IsNaN(mult) || math.IsInf(mult, 0) || mult < 1 {
		mult = 1
	}
	return decimal.NewFromFloat(mult).Mul(precisionDec).Round(0).BigInt()
}
