package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get floor product: %w", ErrProductNotFound)
	if !errors.Is(wrapped, ErrProductNotFound) {
		t.Fatal("errors.Is must match wrapped ErrProductNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidProduct, errors.New("side_a_cm must be positive"))
	if !errors.Is(wrapped2, ErrInvalidProduct) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidProduct")
	}
}

func TestErrImportHeaderMismatch_NamesExpectedHeader(t *testing.T) {
	if !strings.HasSuffix(ErrImportHeaderMismatch.Error(), FloorCSVHeader) {
		t.Fatalf("message must end with the expected header, got %q", ErrImportHeaderMismatch.Error())
	}
}

func TestRowError_Message(t *testing.T) {
	err := &RowError{Line: 3, Reason: "SKU e nome são obrigatórios"}
	if err.Error() != "Linha 3: SKU e nome são obrigatórios" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
