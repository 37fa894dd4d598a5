package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBracketContains(t *testing.T) {
	b := Bracket{Min: d("10000.01"), Max: d("80000"), Value: d("0.02")}

	assert.False(t, b.Contains(d("10000")))
	assert.True(t, b.Contains(d("10000.01")))
	assert.True(t, b.Contains(d("80000")))
	assert.False(t, b.Contains(d("80000.01")))
}

func TestBracketContainsOpenEnded(t *testing.T) {
	b := Bracket{Min: d("80000.01"), Open: true, Value: d("1600")}

	assert.False(t, b.Contains(d("80000")))
	assert.True(t, b.Contains(d("80000.01")))
	assert.True(t, b.Contains(d("99999999")))
}

func TestBracketTableFind(t *testing.T) {
	table := BracketTable{
		Brackets: []Bracket{
			{Min: d("0"), Max: d("99.99"), Value: d("1")},
			{Min: d("100"), Max: d("199.99"), Value: d("2")},
		},
		Default: Bracket{Value: d("9")},
	}

	assert.True(t, table.Find(d("0")).Value.Equal(d("1")))
	assert.True(t, table.Find(d("99.99")).Value.Equal(d("1")))
	assert.True(t, table.Find(d("100")).Value.Equal(d("2")))

	// Above the last row falls through to the table default.
	assert.True(t, table.Find(d("200")).Value.Equal(d("9")))
}

func TestStatutoryTablesAreContiguous(t *testing.T) {
	// Adjacent brackets must meet at exactly one centavo so every
	// non-negative amount resolves to exactly one row.
	cent := decimal.NewFromFloat(0.01)

	for name, table := range map[string]BracketTable{
		"sss":        sssTable,
		"philhealth": philHealthTable,
		"pagibig":    pagIbigTable,
		"tax":        annualTaxTable,
	} {
		for i := 1; i < len(table.Brackets); i++ {
			prev, curr := table.Brackets[i-1], table.Brackets[i]
			assert.True(t, curr.Min.Sub(prev.Max).Equal(cent),
				"%s: gap or overlap between bracket %d and %d", name, i-1, i)
		}
	}
}

func TestSSSTableShape(t *testing.T) {
	assert.Len(t, sssTable.Brackets, 34)
	assert.True(t, sssTable.Brackets[0].Value.Equal(d("170")))
	assert.True(t, sssTable.Brackets[33].Value.Equal(d("500")))
	assert.True(t, sssTable.Default.Value.Equal(d("500")))

	// Monotonically increasing by 10 pesos per row.
	for i := 1; i < len(sssTable.Brackets); i++ {
		step := sssTable.Brackets[i].Value.Sub(sssTable.Brackets[i-1].Value)
		assert.True(t, step.Equal(d("10")), "row %d", i)
	}
}
