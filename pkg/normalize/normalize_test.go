package normalize

import (
	"testing"

	"github.com/agnivade/levenshtein"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Acme Corp", "acme corp"},
		{"collapses whitespace", "Acme   Corp\tLtd", "acme corp ltd"},
		{"strips trailing punctuation", "Acme Corp.", "acme corp"},
		{"strips cost annotation", "Groceries (424.39₽)", "groceries"},
		{"strips volume annotation", "Flour (12 kg)", "flour"},
		{"keeps plain parenthetical", "Bob (the builder)", "bob (the builder)"},
		{"annotation mid-name", "Order (3 pcs) delivery", "order delivery"},
		{"empty", "", ""},
		{"only punctuation", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}

func TestName_Idempotent(t *testing.T) {
	inputs := []string{"Acme Corp.", "Groceries (424.39₽)", "  Mixed   Case  "}
	for _, in := range inputs {
		once := Name(in)
		assert.Equal(t, once, Name(once), "normalizing twice must not change the result for %q", in)
	}
}

func TestKeywordJaccard(t *testing.T) {
	assert.Equal(t, 0.0, KeywordJaccard(nil, []string{"a"}))
	assert.Equal(t, 0.0, KeywordJaccard([]string{"a"}, nil))
	assert.Equal(t, 1.0, KeywordJaccard([]string{"a", "b"}, []string{"B", "A"}))
	assert.InDelta(t, 1.0/3.0, KeywordJaccard([]string{"a", "b"}, []string{"b", "c"}), 1e-9)
	assert.Equal(t, 0.0, KeywordJaccard([]string{"a"}, []string{"b"}))
}

func TestLevenshteinRatio(t *testing.T) {
	pairs := []struct {
		a, b string
		want float64
	}{
		{"kitten", "kitten", 1.0},
		{"", "", 1.0},
		{"abcd", "abcx", 0.75},
		{"a", "b", 0.0},
	}
	for _, p := range pairs {
		d := levenshtein.ComputeDistance(p.a, p.b)
		assert.InDelta(t, p.want, LevenshteinRatio(p.a, p.b, d), 1e-9, "%q vs %q", p.a, p.b)
	}
}
