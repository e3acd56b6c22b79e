//go:build unit

package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/internal/usecase/queries"
)

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name       string
		from, size int
		wantOffset int
	}{
		{"first window", 0, 10, 0},
		{"from inside the first window snaps to its start", 5, 10, 0},
		{"from at a window boundary", 10, 10, 10},
		{"from inside the third window snaps back", 25, 10, 20},
		{"size one degenerates to element offsets", 7, 1, 7},
		{"large window", 3, 50, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := queries.NewPage(tc.from, tc.size)
			assert.Equal(t, tc.size, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset)
		})
	}
}
