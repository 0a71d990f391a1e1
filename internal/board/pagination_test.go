package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		total     int64
		wantStart int
		wantEnd   int
		wantPages int
	}{
		{"last partial page", 2, 10, 9, 10, 3},
		{"first page", 0, 10, 1, 4, 3},
		{"middle page", 1, 10, 5, 8, 3},
		{"exact fit", 1, 8, 5, 8, 2},
		{"single post", 0, 1, 1, 1, 1},
		{"empty listing", 0, 0, 0, 0, 1},
		{"negative page clamped", -3, 10, 1, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Paginate(tt.page, tt.total, PageSize)
			assert.Equal(t, tt.wantStart, info.Start)
			assert.Equal(t, tt.wantEnd, info.End)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.total, info.Total)
		})
	}
}
