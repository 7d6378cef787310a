package usecase

import (
	"context"

	"github.com/oscargustin/Ferremas/src/checkout/application/state"
	"github.com/oscargustin/Ferremas/src/checkout/infrastructure/client"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RefreshRateUseCase caso de uso para refrescar el tipo de cambio CLP/USD
// desde el backend y dejarlo disponible para las cotizaciones.
type RefreshRateUseCase struct {
	session    *state.SaleSession
	rateClient *client.ExchangeRateClient
}

// NewRefreshRateUseCase crea una nueva instancia del caso de uso
func NewRefreshRateUseCase(session *state.SaleSession, rateClient *client.ExchangeRateClient) *RefreshRateUseCase {
	return &RefreshRateUseCase{session: session, rateClient: rateClient}
}

// Execute consulta el tipo de cambio y lo guarda en la sesión. Cualquier
// falla deja la tasa en cero ("desconocida"): los totales en USD degradan
// al marcador de no-disponible, nunca a un valor calculado.
func (uc *RefreshRateUseCase) Execute(ctx context.Context) (decimal.Decimal, bool) {
	rate, err := uc.rateClient.GetRate(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo obtener el tipo de cambio")
		uc.session.SetRate(decimal.Zero)
		return decimal.Zero, false
	}

	uc.session.SetRate(rate)
	return rate, rate.GreaterThan(decimal.Zero)
}
