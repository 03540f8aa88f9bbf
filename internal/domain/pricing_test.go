package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name   string
		rate   int64
		nights int
		want   PriceBreakdown
		total  int64
	}{
		{"five nights", 100, 5, PriceBreakdown{500, 25, 50, 25}, 600},
		{"single night", 80, 1, PriceBreakdown{80, 25, 8, 4}, 117},
		{"rounds half up", 15, 1, PriceBreakdown{15, 25, 2, 1}, 43},
		{"free listing", 0, 3, PriceBreakdown{0, 25, 0, 0}, 25},
		{"fees rounded separately", 33, 3, PriceBreakdown{99, 25, 10, 5}, 139},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePrice(tt.rate, tt.nights)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.total, got.Total())
		})
	}
}
