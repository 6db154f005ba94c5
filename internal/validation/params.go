package validation

import (
	"strconv"
	"strings"
)

// ParseID validates a numeric path parameter: digits only, positive.
func ParseID(raw string) (uint, error) {
	if err := validate.Var(raw, "required,number"); err != nil {
		return 0, newError(summaryID, "id", "ID deve ser um número válido")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, newError(summaryID, "id", "ID deve ser um número válido")
	}
	if n == 0 {
		return 0, newError(summaryID, "id", "ID deve ser positivo")
	}
	return uint(n), nil
}

// ProdutoFilter narrows the product listing.
type ProdutoFilter struct {
	CategoriaID *uint
}

// ParseProdutoFilter coerces the categoriaId query value. Absent, empty and
// zero mean no filter.
func ParseProdutoFilter(categoriaID string) (ProdutoFilter, error) {
	categoriaID = strings.TrimSpace(categoriaID)
	if categoriaID == "" {
		return ProdutoFilter{}, nil
	}
	if err := validate.Var(categoriaID, "number"); err != nil {
		return ProdutoFilter{}, newError(summaryFiltro, "categoriaId", "categoriaId deve ser um número")
	}
	n, err := strconv.ParseUint(categoriaID, 10, 64)
	if err != nil {
		return ProdutoFilter{}, newError(summaryFiltro, "categoriaId", "categoriaId deve ser um número")
	}
	if n == 0 {
		return ProdutoFilter{}, nil
	}
	id := uint(n)
	return ProdutoFilter{CategoriaID: &id}, nil
}
