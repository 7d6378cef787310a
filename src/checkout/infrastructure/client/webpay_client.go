package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oscargustin/Ferremas/src/checkout/domain/entity"

	"github.com/rs/zerolog/log"
)

// CreateTransactionRequest es el payload de POST /api/webpay/create.
type CreateTransactionRequest struct {
	BuyOrder  string            `json:"buy_order"`
	SessionID string            `json:"session_id"`
	Amount    float64           `json:"amount"`
	CartItems []CartItemPayload `json:"cart_items"`
}

// CartItemPayload es un item del carrito en el formato que espera la
// pasarela.
type CartItemPayload struct {
	ProductID int     `json:"product_id"`
	BranchID  int     `json:"sucursal_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateTransactionResult es la respuesta de la pasarela. Con URL y Token la
// transacción fue creada y hay que redirigir; con solo Message/Error es un
// rechazo a nivel de aplicación (por ejemplo un conflicto de stock detectado
// en el servidor), que puede traer la cifra de stock corregida.
type CreateTransactionResult struct {
	URL            string `json:"url"`
	Token          string `json:"token"`
	Message        string `json:"message"`
	Error          string `json:"error"`
	AvailableStock *int   `json:"available_stock"`
}

// Redirect indica si la pasarela entregó URL y token de redirección.
func (r *CreateTransactionResult) Redirect() bool {
	return r.URL != "" && r.Token != ""
}

// RejectionMessage devuelve el mensaje del rechazo, sea cual sea el campo
// en que vino.
func (r *CreateTransactionResult) RejectionMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}

// WebpayClient es el cliente HTTP de la pasarela de pago del backend.
type WebpayClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewWebpayClient crea una nueva instancia del cliente.
func NewWebpayClient(baseURL string, timeout time.Duration) *WebpayClient {
	return &WebpayClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// NewSaleOrderPayload arma el request de creación de transacción desde una
// orden de venta materializada.
func NewSaleOrderPayload(order entity.SaleOrder) CreateTransactionRequest {
	items := make([]CartItemPayload, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, CartItemPayload{
			ProductID: it.ProductID,
			BranchID:  it.BranchID,
			Quantity:  it.Quantity,
			Price:     it.Price.InexactFloat64(),
		})
	}
	return CreateTransactionRequest{
		BuyOrder:  order.BuyOrder,
		SessionID: order.SessionID,
		Amount:    order.Amount.InexactFloat64(),
		CartItems: items,
	}
}

// Create inicia la transacción de pago con POST /api/webpay/create.
//
// Devuelve error solo ante fallas de transporte o respuestas HTTP sin cuerpo
// interpretable; un rechazo a nivel de aplicación (con o sin status 2xx) se
// devuelve como resultado sin URL, para que el orquestador lo trate como
// falla recuperable con el mensaje del servidor.
func (c *WebpayClient) Create(ctx context.Context, payload CreateTransactionRequest) (*CreateTransactionResult, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/api/webpay/create", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling webpay create: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	var result CreateTransactionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("HTTP error, status %d", resp.StatusCode)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &result, nil
	}

	// Respuesta no-2xx con cuerpo JSON: si trae mensaje del servidor es un
	// rechazo de aplicación y el mensaje se muestra textual.
	if result.RejectionMessage() != "" {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("message", result.RejectionMessage()).
			Msg("webpay rejected transaction")
		return &result, nil
	}

	return nil, fmt.Errorf("HTTP error, status %d", resp.StatusCode)
}
