package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		token string
		want  float64
	}{
		{"1.29", 1.29},
		{"1,29", 1.29},
		{"12.34", 12.34},
		{"12,34", 12.34},
		{"0,15", 0.15},
		{"0.00", 0},
		{"147,95", 147.95},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePrice(tt.token), 1e-9)
		})
	}
}

func TestParsePrice_SeparatorEquivalence(t *testing.T) {
	// comma and dot variants of the same token are the same amount
	assert.Equal(t, ParsePrice("12.34"), ParsePrice("12,34"))
	assert.Equal(t, ParsePrice("0.99"), ParsePrice("0,99"))
}
