package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func fixtureSelection(t *testing.T) Selection {
	t.Helper()
	sel, err := NewSelection(7, "Taladro Percutor", 3, "Sucursal Centro", decimal.RequireFromString("10500"), 10)
	if err != nil {
		t.Fatalf("selección inválida en fixture: %v", err)
	}
	return *sel
}

func TestNewSaleOrder(t *testing.T) {
	order, err := NewSaleOrder("O-1725000000000-0042", "f9b1c2d3-0000-4000-8000-000000000000", fixtureSelection(t), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !order.Amount.Equal(decimal.RequireFromString("31500")) {
		t.Fatalf("expected amount 31500, got %s", order.Amount)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected a single cart item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.ProductID != 7 || item.BranchID != 3 || item.Quantity != 3 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if !item.Price.Equal(decimal.RequireFromString("10500")) {
		t.Fatalf("item price must be the unit price, got %s", item.Price)
	}
}

func TestNewSaleOrderValidation(t *testing.T) {
	sel := fixtureSelection(t)

	cases := []struct {
		name      string
		buyOrder  string
		sessionID string
		quantity  int
		wantErr   error
	}{
		{"sin buy_order", "", "s", 1, ErrBuyOrderRequired},
		{"sin session_id", "o", "", 1, ErrSessionIDRequired},
		{"cantidad cero", "o", "s", 0, ErrInvalidQuantity},
		{"cantidad negativa", "o", "s", -2, ErrInvalidQuantity},
		{"sobre el stock", "o", "s", 11, ErrQuantityExceedsStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSaleOrder(tc.buyOrder, tc.sessionID, sel, tc.quantity)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewSaleOrderQuantityAtStockLimit(t *testing.T) {
	order, err := NewSaleOrder("o", "s", fixtureSelection(t), 10)
	if err != nil {
		t.Fatalf("quantity equal to stock must be sellable: %v", err)
	}
	if !order.Amount.Equal(decimal.RequireFromString("105000")) {
		t.Fatalf("expected amount 105000, got %s", order.Amount)
	}
}

func TestNewSelectionValidation(t *testing.T) {
	price := decimal.RequireFromString("10500")

	cases := []struct {
		name    string
		build   func() (*Selection, error)
		wantErr error
	}{
		{"producto sin id", func() (*Selection, error) {
			return NewSelection(0, "Taladro", 1, "Centro", price, 5)
		}, ErrProductIDRequired},
		{"producto sin nombre", func() (*Selection, error) {
			return NewSelection(1, "", 1, "Centro", price, 5)
		}, ErrProductNameRequired},
		{"sucursal sin id", func() (*Selection, error) {
			return NewSelection(1, "Taladro", 0, "Centro", price, 5)
		}, ErrBranchIDRequired},
		{"sucursal sin nombre", func() (*Selection, error) {
			return NewSelection(1, "Taladro", 1, "", price, 5)
		}, ErrBranchNameRequired},
		{"precio cero", func() (*Selection, error) {
			return NewSelection(1, "Taladro", 1, "Centro", decimal.Zero, 5)
		}, ErrInvalidUnitPrice},
		{"stock negativo", func() (*Selection, error) {
			return NewSelection(1, "Taladro", 1, "Centro", price, -1)
		}, ErrInvalidStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.build(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewSelectionZeroStockAllowed(t *testing.T) {
	sel, err := NewSelection(1, "Taladro", 1, "Centro", decimal.RequireFromString("10500"), 0)
	if err != nil {
		t.Fatalf("zero stock is a valid out-of-stock offer: %v", err)
	}
	if sel.Stock != 0 {
		t.Fatalf("expected stock 0, got %d", sel.Stock)
	}
}
