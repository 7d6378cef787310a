package request

import "github.com/shopspring/decimal"

// SelectOfferRequest lleva los datos de la fila de sucursal elegida en los
// resultados de búsqueda (el equivalente de los data attributes de la fila).
type SelectOfferRequest struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	BranchID    int             `json:"branch_id"`
	BranchName  string          `json:"branch_name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}
