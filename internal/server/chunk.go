package server

import "github.com/herbpot/shoppingmol/internal/models"

const productRowSize = 4

// chunk режет список на последовательные группы по size элементов,
// последняя группа держит остаток. Порядок сохраняется.
func chunk(items []models.Product, size int) [][]models.Product {
	var groups [][]models.Product
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[i:end])
	}
	return groups
}
