package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested floor product or accessory does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUAlreadyExists indicates another product already uses the SKU.
	ErrSKUAlreadyExists = errors.New("sku already exists")

	// ErrInvalidProduct indicates the product data violates catalog constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrImportHeaderMismatch aborts a CSV import before any row is processed.
	ErrImportHeaderMismatch = errors.New("Cabeçalho CSV inválido. Esperado: " + FloorCSVHeader)
)

// FloorCSVHeader is the exact first line of a floor product CSV document.
const FloorCSVHeader = "sku,nome,dimensao_cm_ladoA,dimensao_cm_ladoB,pecas_por_caixa,preco_m2,acabamento,colecao_cor,estoque_caixas,estoque_min_caixas,ativo"

// RowError is a non-fatal import failure tied to one physical line of the input.
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Linha %d: %s", e.Line, e.Reason)
}
