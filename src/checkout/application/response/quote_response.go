package response

import (
	"github.com/oscargustin/Ferremas/src/checkout/domain/service"
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/money"
)

// QuoteResponse es el resultado de cotizar una cantidad contra la selección
// activa: veredicto de validación más totales en ambas monedas. Los campos
// *_formatted son para mostrar; total_clp y total_usd conservan el valor sin
// redondear.
type QuoteResponse struct {
	Valid             bool                  `json:"valid"`
	Reason            service.InvalidReason `json:"reason,omitempty"`
	Message           string                `json:"message,omitempty"`
	TotalCLP          string                `json:"total_clp"`
	TotalUSD          string                `json:"total_usd,omitempty"`
	TotalCLPFormatted string                `json:"total_clp_formatted"`
	TotalUSDFormatted string                `json:"total_usd_formatted"`
	SellEnabled       bool                  `json:"sell_enabled"`
}

// NewQuoteResponse arma la respuesta desde el veredicto y los totales.
func NewQuoteResponse(v service.Validation, totals service.Totals, hasSelection bool) *QuoteResponse {
	resp := &QuoteResponse{
		Valid:             v.OK,
		Reason:            v.Reason,
		Message:           v.Message(),
		TotalCLP:          totals.TotalCLP.String(),
		TotalCLPFormatted: money.FormatCLP(totals.TotalCLP),
		SellEnabled:       v.OK && hasSelection,
	}

	if totals.USDAvailable {
		resp.TotalUSD = totals.TotalUSD.String()
		resp.TotalUSDFormatted = money.FormatUSD(totals.TotalUSD)
	} else {
		resp.TotalUSDFormatted = money.USDUnavailable
	}

	return resp
}
