package usecase

import (
	"github.com/oscargustin/Ferremas/src/checkout/application/request"
	"github.com/oscargustin/Ferremas/src/checkout/application/response"
	"github.com/oscargustin/Ferremas/src/checkout/application/state"
	"github.com/oscargustin/Ferremas/src/checkout/domain/entity"
)

// SelectOfferUseCase caso de uso para elegir una oferta de sucursal como
// selección activa de venta.
type SelectOfferUseCase struct {
	session *state.SaleSession
}

// NewSelectOfferUseCase crea una nueva instancia del caso de uso
func NewSelectOfferUseCase(session *state.SaleSession) *SelectOfferUseCase {
	return &SelectOfferUseCase{session: session}
}

// Execute valida la oferta y reemplaza la selección activa por completo.
// La cantidad vuelve al valor por defecto.
func (uc *SelectOfferUseCase) Execute(req *request.SelectOfferRequest) (*response.SelectionResponse, error) {
	sel, err := entity.NewSelection(
		req.ProductID,
		req.ProductName,
		req.BranchID,
		req.BranchName,
		req.Price,
		req.Stock,
	)
	if err != nil {
		return nil, err
	}

	uc.session.Select(*sel)

	return response.NewSelectionResponse(*sel, true, state.DefaultQuantity), nil
}
