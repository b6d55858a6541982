package payout

import (
	"fmt"
	"math"
)

// Tier is one (multiplier, probability mass) entry of a weighted game
type Tier struct {
	Multiplier  float64
	Probability float64
}

// Bound is a tier with its accumulated upper bound
type Bound struct {
	Multiplier float64
	Upper      float64
}

// Table is an ordered, validated payout table
type Table struct {
	name   string
	bounds []Bound
}

// NewTable accumulates tiers in order and validates that bounds strictly
// increase and the final bound is 1.0
func NewTable(name string, tiers []Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf(ErrMsgTableEmpty, name)
	}

	bounds := make([]Bound, 0, len(tiers))
	acc := 0.0
	for i, tier := range tiers {
		next := acc + tier.Probability
		if next <= acc {
			return nil, fmt.Errorf(ErrMsgTierNotIncreasing, name, i, next)
		}
		acc = next
		bounds = append(bounds, Bound{Multiplier: tier.Multiplier, Upper: acc})
	}

	if math.Abs(acc-1.0) > BoundTolerance {
		return nil, fmt.Errorf(ErrMsgTableBoundNotOne, name, acc)
	}

	return &Table{name: name, bounds: bounds}, nil
}

// MustTable is NewTable for package-level literal tables
func MustTable(name string, tiers []Tier) *Table {
	t, err := NewTable(name, tiers)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// Bounds returns a copy of the accumulated tiers
func (t *Table) Bounds() []Bound {
	out := make([]Bound, len(t.bounds))
	copy(out, t.bounds)
	return out
}

// Select returns the multiplier of the first tier whose bound is >= r
func (t *Table) Select(r float64) float64 {
	for _, b := range t.bounds {
		if r <= b.Upper {
			return b.Multiplier
		}
	}
	// Accumulated bound fell a hair short of 1.0
	return t.bounds[len(t.bounds)-1].Multiplier
}

// Contains reports whether m is one of the table's multipliers
func (t *Table) Contains(m float64) bool {
	for _, b := range t.bounds {
		if b.Multiplier == m {
			return true
		}
	}
	return false
}
