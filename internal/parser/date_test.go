package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubClock struct{ t time.Time }

func (c stubClock) Now() time.Time { return c.t }

func TestExtractDate(t *testing.T) {
	p := New(nil, nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashes", "Datum: 15-01-2026", "2026-01-15"},
		{"slashes", "15/01/2026 18:32", "2026-01-15"},
		{"dots", "bon 15.01.2026", "2026-01-15"},
		{"two digit year expanded", "15-01-26", "2026-01-15"},
		{"single digit day and month padded", "5-1-2026", "2026-01-05"},
		{"first token wins", "15-01-2026\n16-01-2026", "2026-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExtractDate(tt.text))
		})
	}
}

func TestExtractDate_FallsBackToClock(t *testing.T) {
	clock := stubClock{t: time.Date(2026, 8, 29, 13, 37, 0, 0, time.UTC)}
	p := New(clock, nil)

	assert.Equal(t, "2026-08-29", p.ExtractDate("geen datum in deze tekst"))
	assert.Equal(t, "2026-08-29", p.ExtractDate(""))
}
