package usecase

import (
	"github.com/oscargustin/Ferremas/src/checkout/application/response"
	"github.com/oscargustin/Ferremas/src/checkout/application/state"
	"github.com/oscargustin/Ferremas/src/checkout/domain/service"

	"github.com/shopspring/decimal"
)

// QuoteSaleUseCase caso de uso para cotizar una cantidad: valida contra el
// stock de la selección activa y calcula los totales en ambas monedas.
type QuoteSaleUseCase struct {
	session *state.SaleSession
}

// NewQuoteSaleUseCase crea una nueva instancia del caso de uso
func NewQuoteSaleUseCase(session *state.SaleSession) *QuoteSaleUseCase {
	return &QuoteSaleUseCase{session: session}
}

// Execute cotiza la cantidad indicada. Una cantidad que no parseó como
// entero llega aquí como 0 y se reporta como no positiva; los totales
// colapsan a cero en ese caso (regla de presentación, no de validación).
func (uc *QuoteSaleUseCase) Execute(quantity int) *response.QuoteResponse {
	sel, hasSelection := uc.session.Selection()

	validation := service.ValidateQuantity(quantity, sel.Stock, hasSelection)

	unitPrice := decimal.Zero
	if hasSelection {
		unitPrice = sel.UnitPrice
	}

	totals := service.ComputeTotals(unitPrice, quantity, uc.session.Rate())

	if quantity > 0 {
		uc.session.SetQuantity(quantity)
	}

	return response.NewQuoteResponse(validation, totals, hasSelection)
}
