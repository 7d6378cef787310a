package entity

import (
	"github.com/shopspring/decimal"
)

// SaleOrderItem representa un item del carrito enviado a la pasarela de pago.
type SaleOrderItem struct {
	ProductID int             `json:"product_id"`
	BranchID  int             `json:"sucursal_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SaleOrder es la orden materializada en cada intento de checkout. El monto
// total es siempre precio unitario × cantidad al momento de la generación;
// buy_order y session_id son frescos por intento (sin idempotencia entre
// reintentos: la pasarela es la autoridad sobre envíos duplicados).
type SaleOrder struct {
	BuyOrder  string          `json:"buy_order"`
	SessionID string          `json:"session_id"`
	Amount    decimal.Decimal `json:"amount"`
	Items     []SaleOrderItem `json:"cart_items"`
}

// NewSaleOrder materializa una orden de venta desde la selección activa.
func NewSaleOrder(buyOrder, sessionID string, sel Selection, quantity int) (*SaleOrder, error) {
	if buyOrder == "" {
		return nil, ErrBuyOrderRequired
	}
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity > sel.Stock {
		return nil, ErrQuantityExceedsStock
	}

	amount := sel.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return &SaleOrder{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		Items: []SaleOrderItem{
			{
				ProductID: sel.ProductID,
				BranchID:  sel.BranchID,
				Quantity:  quantity,
				Price:     sel.UnitPrice,
			},
		},
	}, nil
}
