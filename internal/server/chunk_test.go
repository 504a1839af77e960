package server

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbpot/shoppingmol/internal/models"
)

func makeProducts(n int) []models.Product {
	items := make([]models.Product, n)
	for i := range items {
		items[i] = models.Product{ID: uint(i + 1), Name: fmt.Sprintf("p%d", i+1)}
	}
	return items
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		size     int
		groups   int
		lastSize int
	}{
		{name: "empty", n: 0, size: 4, groups: 0},
		{name: "one short group", n: 3, size: 4, groups: 1, lastSize: 3},
		{name: "one full group", n: 4, size: 4, groups: 1, lastSize: 4},
		{name: "remainder", n: 9, size: 4, groups: 3, lastSize: 1},
		{name: "exact multiple", n: 12, size: 4, groups: 3, lastSize: 4},
		{name: "size one", n: 5, size: 1, groups: 5, lastSize: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			groups := chunk(makeProducts(tc.n), tc.size)
			require.Len(t, groups, tc.groups)
			for i, g := range groups {
				if i < len(groups)-1 {
					assert.Len(t, g, tc.size)
				} else {
					assert.Len(t, g, tc.lastSize)
				}
			}
		})
	}
}

func TestChunkConcatReproducesInput(t *testing.T) {
	for n := 0; n <= 17; n++ {
		items := makeProducts(n)
		flat := make([]models.Product, 0, len(items))
		for _, g := range chunk(items, 4) {
			flat = append(flat, g...)
		}
		assert.Equal(t, items, flat, "n=%d", n)
	}
}
