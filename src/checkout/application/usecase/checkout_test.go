package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oscargustin/Ferremas/src/checkout/application/state"
	"github.com/oscargustin/Ferremas/src/checkout/domain/entity"
	"github.com/oscargustin/Ferremas/src/checkout/infrastructure/client"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIDs entrega identificadores deterministas para los tests.
type fixedIDs struct {
	buyOrder  string
	sessionID string
}

func (f fixedIDs) BuyOrder() string  { return f.buyOrder }
func (f fixedIDs) SessionID() string { return f.sessionID }

func newTestIDs() fixedIDs {
	return fixedIDs{
		buyOrder:  "O-1725000000000-0042",
		sessionID: "f9b1c2d3-0000-4000-8000-000000000000",
	}
}

func sessionWithSelection(t *testing.T, stock int) *state.SaleSession {
	t.Helper()
	sel, err := entity.NewSelection(7, "Taladro Percutor", 3, "Sucursal Centro", decimal.RequireFromString("10500"), stock)
	require.NoError(t, err)

	s := state.NewSaleSession()
	s.Select(*sel)
	return s
}

func TestCheckoutWithoutSelection(t *testing.T) {
	session := state.NewSaleSession()
	uc := NewCheckoutUseCase(session, client.NewWebpayClient("http://127.0.0.1:1", time.Second), newTestIDs())

	resp := uc.Execute(context.Background(), 1)

	assert.Equal(t, StateIdle, resp.State)
	assert.Equal(t, "Por favor, selecciona un producto y sucursal primero.", resp.Message)
	assert.False(t, resp.ConfirmEnabled)
}

func TestCheckoutInvalidQuantityBlocksLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	session := sessionWithSelection(t, 5)
	uc := NewCheckoutUseCase(session, client.NewWebpayClient(srv.URL, time.Second), newTestIDs())

	resp := uc.Execute(context.Background(), 6)

	assert.Equal(t, StateIdle, resp.State)
	assert.Contains(t, resp.Message, "supera el stock disponible")
	assert.False(t, resp.ConfirmEnabled)
	assert.False(t, called, "a locally invalid quantity must never reach the gateway")
}

func TestCheckoutRedirects(t *testing.T) {
	var got client.CreateTransactionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/webpay/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"url":   "https://webpay.example/init",
			"token": "tok-123",
		})
	}))
	defer srv.Close()

	session := sessionWithSelection(t, 10)
	uc := NewCheckoutUseCase(session, client.NewWebpayClient(srv.URL, time.Second), newTestIDs())

	resp := uc.Execute(context.Background(), 3)

	assert.Equal(t, StateRedirecting, resp.State)
	assert.Equal(t, "https://webpay.example/init", resp.RedirectURL)
	assert.Equal(t, "tok-123", resp.Token)
	assert.Equal(t, "O-1725000000000-0042", resp.BuyOrder)
	assert.False(t, resp.ConfirmEnabled, "the sale action must not re-enable while navigating away")

	// Payload enviado a la pasarela
	assert.Equal(t, "O-1725000000000-0042", got.BuyOrder)
	assert.Equal(t, "f9b1c2d3-0000-4000-8000-000000000000", got.SessionID)
	assert.InDelta(t, 31500, got.Amount, 0.001)
	require.Len(t, got.CartItems, 1)
	assert.Equal(t, 7, got.CartItems[0].ProductID)
	assert.Equal(t, 3, got.CartItems[0].BranchID)
	assert.Equal(t, 3, got.CartItems[0].Quantity)
}

func TestCheckoutApplicationRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"message":         "Stock insuficiente en la sucursal seleccionada.",
			"available_stock": 2,
		})
	}))
	defer srv.Close()

	session := sessionWithSelection(t, 10)
	uc := NewCheckoutUseCase(session, client.NewWebpayClient(srv.URL, time.Second), newTestIDs())

	resp := uc.Execute(context.Background(), 3)

	assert.Equal(t, StateAwaitingRetry, resp.State)
	assert.Equal(t, "Stock insuficiente en la sucursal seleccionada.", resp.Message)
	assert.True(t, resp.ConfirmEnabled, "an application rejection is recoverable")
	assert.True(t, resp.StockCorrected)

	sel, ok := session.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, sel.Stock, "the authoritative stock figure must be applied")
}

func TestCheckoutTransportError(t *testing.T) {
	session := sessionWithSelection(t, 10)
	// Nadie escucha en este puerto.
	uc := NewCheckoutUseCase(session, client.NewWebpayClient("http://127.0.0.1:1", 200*time.Millisecond), newTestIDs())

	resp := uc.Execute(context.Background(), 1)

	assert.Equal(t, StateFailed, resp.State)
	assert.Equal(t, "Error de comunicación con el servidor. Intenta de nuevo.", resp.Message)
	assert.True(t, resp.ConfirmEnabled)
	assert.Empty(t, resp.RedirectURL)
}

func TestCheckoutServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	session := sessionWithSelection(t, 10)
	uc := NewCheckoutUseCase(session, client.NewWebpayClient(srv.URL, time.Second), newTestIDs())

	resp := uc.Execute(context.Background(), 1)

	assert.Equal(t, StateFailed, resp.State)
	assert.Equal(t, "Error de comunicación con el servidor. Intenta de nuevo.", resp.Message)
	assert.True(t, resp.ConfirmEnabled)
}

func TestCheckoutFreshIdentifiersPerAttempt(t *testing.T) {
	var orders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req client.CreateTransactionRequest
		json.NewDecoder(r.Body).Decode(&req)
		orders = append(orders, req.BuyOrder)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "rechazado"})
	}))
	defer srv.Close()

	session := sessionWithSelection(t, 10)

	seq := 0
	gen := seqIDs{next: &seq}
	uc := NewCheckoutUseCase(session, client.NewWebpayClient(srv.URL, time.Second), gen)

	uc.Execute(context.Background(), 1)
	uc.Execute(context.Background(), 1)

	require.Len(t, orders, 2)
	assert.NotEqual(t, orders[0], orders[1], "each attempt must carry a fresh buy_order")
}

type seqIDs struct {
	next *int
}

func (s seqIDs) BuyOrder() string {
	*s.next++
	return fmt.Sprintf("O-%d", *s.next)
}

func (s seqIDs) SessionID() string { return "session-fixed" }
