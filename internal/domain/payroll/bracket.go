package payroll

import "github.com/shopspring/decimal"

// Bracket is one row of a statutory lookup table. Ranges are inclusive on
// both ends; Open marks a bracket with no upper bound. Value is a rate when
// fractional (< 1) and a fixed peso amount otherwise. Base and ExcessOver are
// only used by graduated tax tables.
type Bracket struct {
	Min        decimal.Decimal
	Max        decimal.Decimal
	Open       bool
	Value      decimal.Decimal
	Base       decimal.Decimal
	ExcessOver decimal.Decimal
}

// Contains reports whether amount falls inside the bracket's range.
func (b Bracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return b.Open || amount.LessThanOrEqual(b.Max)
}

// BracketTable is an ordered, non-overlapping list of brackets scanned
// linearly. Default is returned when no bracket contains the amount
// (the open-ended ceiling of tables whose top row is bounded).
type BracketTable struct {
	Brackets []Bracket
	Default  Bracket
}

// Find returns the first bracket whose inclusive range contains amount,
// falling back to the table default.
func (t BracketTable) Find(amount decimal.Decimal) Bracket {
	for _, b := range t.Brackets {
		if b.Contains(amount) {
			return b
		}
	}
	return t.Default
}

// d is shorthand for building bracket tables from exact string literals.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
