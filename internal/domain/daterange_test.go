package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	_, err := NewDateRange(date(2025, 7, 1), date(2025, 7, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(date(2025, 7, 2), date(2025, 7, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	r, err := NewDateRange(date(2025, 7, 1), date(2025, 7, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Nights())
}

func TestDateRange_Overlaps(t *testing.T) {
	base := DateRange{Start: date(2025, 7, 10), End: date(2025, 7, 15)}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"inside", DateRange{date(2025, 7, 11), date(2025, 7, 12)}, true},
		{"covering", DateRange{date(2025, 7, 1), date(2025, 7, 30)}, true},
		{"straddles start", DateRange{date(2025, 7, 8), date(2025, 7, 11)}, true},
		{"checkout on check-in", DateRange{date(2025, 7, 5), date(2025, 7, 10)}, true},
		{"check-in on checkout", DateRange{date(2025, 7, 15), date(2025, 7, 20)}, true},
		{"before", DateRange{date(2025, 7, 1), date(2025, 7, 9)}, false},
		{"after", DateRange{date(2025, 7, 16), date(2025, 7, 20)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestDateRange_NightsRoundsUp(t *testing.T) {
	r := DateRange{Start: date(2025, 7, 1), End: date(2025, 7, 3).Add(time.Hour)}
	assert.Equal(t, 3, r.Nights())
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	got := StartOfDay(time.Date(2025, 7, 2, 1, 30, 0, 0, loc))
	assert.Equal(t, date(2025, 7, 1), got)
}
