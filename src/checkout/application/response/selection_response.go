package response

import (
	"strconv"

	"github.com/oscargustin/Ferremas/src/checkout/domain/entity"
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/money"

	"github.com/shopspring/decimal"
)

// SelectionResponse es la sección "detalle de venta" de la página: la
// selección activa con sus valores formateados, o los marcadores vacíos
// cuando no hay selección.
type SelectionResponse struct {
	HasSelection bool   `json:"has_selection"`
	ProductID    int    `json:"product_id,omitempty"`
	ProductName  string `json:"product_name"`
	BranchID     int    `json:"branch_id,omitempty"`
	BranchName   string `json:"branch_name"`
	Stock        string `json:"stock"`
	UnitPriceCLP string `json:"unit_price_clp"`
	Quantity     int    `json:"quantity"`
}

// NewSelectionResponse arma la respuesta desde la selección activa.
func NewSelectionResponse(sel entity.Selection, ok bool, quantity int) *SelectionResponse {
	if !ok {
		return &SelectionResponse{
			HasSelection: false,
			ProductName:  "Ninguno",
			BranchName:   "Ninguna",
			Stock:        "N/A",
			UnitPriceCLP: money.FormatCLP(decimal.Zero),
			Quantity:     quantity,
		}
	}

	return &SelectionResponse{
		HasSelection: true,
		ProductID:    sel.ProductID,
		ProductName:  sel.ProductName,
		BranchID:     sel.BranchID,
		BranchName:   sel.BranchName,
		Stock:        strconv.Itoa(sel.Stock),
		UnitPriceCLP: money.FormatCLP(sel.UnitPrice),
		Quantity:     quantity,
	}
}
