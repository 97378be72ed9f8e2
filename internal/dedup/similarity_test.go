package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenOverlap_Identical(t *testing.T) {
	assert.Equal(t, 1.0, TokenOverlap("the deploy failed", "the deploy failed"))
}

func TestTokenOverlap_Reflexive(t *testing.T) {
	texts := []string{"", "one", "the deploy failed twice on friday"}
	for _, text := range texts {
		assert.Equal(t, 1.0, TokenOverlap(text, text))
	}
}

func TestTokenOverlap_Symmetric(t *testing.T) {
	a := "we cut build times in half"
	b := "build times were cut in half this week"
	assert.Equal(t, TokenOverlap(a, b), TokenOverlap(b, a))
}

func TestTokenOverlap_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, TokenOverlap("alpha beta gamma", "delta epsilon zeta"))
}

func TestTokenOverlap_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, TokenOverlap("The Deploy Failed", "the deploy failed"))
}

func TestTokenOverlap_PartialOverlap(t *testing.T) {
	// {a,b,c} vs {b,c,d}: intersection 2, union 4
	assert.InDelta(t, 0.5, TokenOverlap("apple banana cherry", "banana cherry date"), 0.001)
}

func TestTokenOverlap_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, TokenOverlap("", "something"))
	assert.Equal(t, 0.0, TokenOverlap("something", ""))
}

func TestTokenOverlap_IgnoresPunctuation(t *testing.T) {
	assert.Equal(t, 1.0, TokenOverlap("it broke, we fixed it!", "it broke we fixed it"))
}
