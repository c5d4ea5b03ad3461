package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginated(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		pageSize   int
		totalPages int
	}{
		{"exact fit", 40, 20, 2},
		{"partial last page", 45, 20, 3},
		{"empty result", 0, 20, 0},
		{"zero page size clamped", 7, 0, 7},
		{"negative page size clamped", 3, -5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginated([]string{}, tt.total, 1, tt.pageSize)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
