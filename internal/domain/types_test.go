package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2025, 3, 1, h, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical", at(10), at(12), at(10), at(12), true},
		{"contained", at(10), at(12), at(11), at(11).Add(30 * time.Minute), true},
		{"partial front", at(10), at(12), at(9), at(11), true},
		{"partial back", at(10), at(12), at(11), at(13), true},
		{"back to back after", at(10), at(12), at(12), at(13), false},
		{"back to back before", at(10), at(12), at(9), at(10), false},
		{"disjoint", at(10), at(12), at(14), at(15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
