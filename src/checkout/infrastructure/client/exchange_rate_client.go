package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse es la respuesta de GET /api/exchange_rate.
type ExchangeRateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// ExchangeRateClient obtiene el tipo de cambio CLP por USD desde el backend.
type ExchangeRateClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewExchangeRateClient crea una nueva instancia del cliente.
func NewExchangeRateClient(baseURL string, timeout time.Duration) *ExchangeRateClient {
	return &ExchangeRateClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetRate obtiene el tipo de cambio vigente. Una respuesta sin tasa válida
// (ausente o no positiva) se degrada a cero, el valor "desconocido": los
// totales en USD mostrarán el marcador de no-disponible en vez de un número.
func (c *ExchangeRateClient) GetRate(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/exchange_rate", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error calling exchange rate service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("exchange rate service returned status %d: %s", resp.StatusCode, string(body))
	}

	var rateResp ExchangeRateResponse
	if err := json.Unmarshal(body, &rateResp); err != nil {
		return decimal.Zero, fmt.Errorf("error unmarshalling response: %w", err)
	}

	if rateResp.Rate.LessThanOrEqual(decimal.Zero) {
		log.Warn().Str("rate", rateResp.Rate.String()).Msg("exchange rate inválido, se trata como desconocido")
		return decimal.Zero, nil
	}

	return rateResp.Rate, nil
}
