package entity

import (
	"github.com/shopspring/decimal"
)

// Selection representa la oferta de sucursal activa elegida para una venta:
// un producto en una sucursal concreta, con el precio y el stock vistos al
// momento de seleccionar. Existe a lo más una Selection activa.
type Selection struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	BranchID    int             `json:"branch_id"`
	BranchName  string          `json:"branch_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`
}

// NewSelection crea una selección validando sus invariantes.
func NewSelection(productID int, productName string, branchID int, branchName string, unitPrice decimal.Decimal, stock int) (*Selection, error) {
	if productID <= 0 {
		return nil, ErrProductIDRequired
	}
	if productName == "" {
		return nil, ErrProductNameRequired
	}
	if branchID <= 0 {
		return nil, ErrBranchIDRequired
	}
	if branchName == "" {
		return nil, ErrBranchNameRequired
	}
	if !unitPrice.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidUnitPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Selection{
		ProductID:   productID,
		ProductName: productName,
		BranchID:    branchID,
		BranchName:  branchName,
		UnitPrice:   unitPrice,
		Stock:       stock,
	}, nil
}
