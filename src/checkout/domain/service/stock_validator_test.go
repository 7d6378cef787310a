package service

import (
	"strings"
	"testing"
)

func TestValidateQuantityAccepted(t *testing.T) {
	v := ValidateQuantity(3, 10, true)
	if !v.OK {
		t.Fatalf("expected ok, got %+v", v)
	}
	if v.Reason != ReasonNone {
		t.Fatalf("expected no reason, got %q", v.Reason)
	}
	if v.Message() != "" {
		t.Fatalf("expected empty message, got %q", v.Message())
	}
}

func TestValidateQuantityExactStock(t *testing.T) {
	v := ValidateQuantity(10, 10, true)
	if !v.OK {
		t.Fatalf("quantity equal to stock must be sellable, got %+v", v)
	}
}

func TestValidateQuantityNonPositive(t *testing.T) {
	for _, q := range []int{0, -1, -99} {
		v := ValidateQuantity(q, 10, true)
		if v.OK {
			t.Fatalf("quantity %d accepted", q)
		}
		if v.Reason != ReasonNonPositiveQuantity {
			t.Fatalf("quantity %d: expected NON_POSITIVE_QUANTITY, got %q", q, v.Reason)
		}
		if v.Message() != "La cantidad debe ser un número positivo (mínimo 1)." {
			t.Fatalf("unexpected message: %q", v.Message())
		}
	}
}

func TestValidateQuantityExceedsStock(t *testing.T) {
	v := ValidateQuantity(11, 10, true)
	if v.OK {
		t.Fatal("quantity above stock accepted")
	}
	if v.Reason != ReasonExceedsStock {
		t.Fatalf("expected EXCEEDS_STOCK, got %q", v.Reason)
	}
	if !strings.Contains(v.Message(), "(11)") || !strings.Contains(v.Message(), "(10)") {
		t.Fatalf("message must carry requested and available quantities: %q", v.Message())
	}
}

func TestValidateQuantityNonPositiveWinsOverExceeds(t *testing.T) {
	// Con stock cero ambas reglas aplicarían; la de cantidad no positiva manda.
	v := ValidateQuantity(0, 0, true)
	if v.Reason != ReasonNonPositiveQuantity {
		t.Fatalf("expected NON_POSITIVE_QUANTITY, got %q", v.Reason)
	}
}

func TestValidateQuantityWithoutSelection(t *testing.T) {
	// Sin selección no hay stock contra el cual comparar.
	v := ValidateQuantity(500, 0, false)
	if !v.OK {
		t.Fatalf("expected syntactic validity without selection, got %+v", v)
	}

	v = ValidateQuantity(0, 0, false)
	if v.Reason != ReasonNonPositiveQuantity {
		t.Fatalf("non-positive must fail even without selection, got %+v", v)
	}
}

func TestValidateQuantityIsPure(t *testing.T) {
	first := ValidateQuantity(4, 10, true)
	second := ValidateQuantity(4, 10, true)
	if first != second {
		t.Fatalf("same input produced different verdicts: %+v vs %+v", first, second)
	}
}
