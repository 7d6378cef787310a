package usecase

import (
	"context"

	"github.com/oscargustin/Ferremas/src/checkout/application/response"
	"github.com/oscargustin/Ferremas/src/checkout/application/state"
	"github.com/oscargustin/Ferremas/src/checkout/domain/entity"
	"github.com/oscargustin/Ferremas/src/checkout/domain/service"
	"github.com/oscargustin/Ferremas/src/checkout/infrastructure/client"
	"github.com/oscargustin/Ferremas/src/checkout/infrastructure/idgen"
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/metrics"

	"github.com/rs/zerolog/log"
)

// Estados del orquestador de checkout.
const (
	StateIdle          = "IDLE"
	StateValidating    = "VALIDATING"
	StateSubmitting    = "SUBMITTING"
	StateRedirecting   = "REDIRECTING"
	StateFailed        = "FAILED"
	StateAwaitingRetry = "AWAITING_RETRY"
)

// Mensajes para el usuario. Las fallas de validación se bloquean localmente
// y nunca llegan a la red; las de transporte muestran siempre el genérico.
const (
	msgNoSelection    = "Por favor, selecciona un producto y sucursal primero."
	msgTransportError = "Error de comunicación con el servidor. Intenta de nuevo."
	msgUnexpected     = "Respuesta inesperada del servidor."
	msgRedirecting    = "Redirigiendo a Transbank..."
)

// CheckoutUseCase orquesta la venta: valida la cantidad contra la selección
// activa, materializa la orden con identificadores frescos y entrega el
// control a la pasarela de pago.
type CheckoutUseCase struct {
	session      *state.SaleSession
	webpayClient *client.WebpayClient
	ids          idgen.Generator
}

// NewCheckoutUseCase crea una nueva instancia del caso de uso
func NewCheckoutUseCase(session *state.SaleSession, webpayClient *client.WebpayClient, ids idgen.Generator) *CheckoutUseCase {
	return &CheckoutUseCase{
		session:      session,
		webpayClient: webpayClient,
		ids:          ids,
	}
}

// Execute corre el intento de checkout completo:
//
//	Idle -> Validating -> Submitting -> {Redirecting | AwaitingRetry | Failed}
//
// Sin selección activa o con cantidad inválida el intento se bloquea sin
// tocar la red. Cada intento genera buy_order y session_id nuevos; no hay
// idempotencia entre reintentos, la pasarela es la autoridad sobre
// duplicados.
func (uc *CheckoutUseCase) Execute(ctx context.Context, quantity int) *response.CheckoutResponse {
	sel, hasSelection := uc.session.Selection()
	if !hasSelection {
		metrics.CheckoutAttempts.WithLabelValues("blocked").Inc()
		return &response.CheckoutResponse{
			State:          StateIdle,
			Message:        msgNoSelection,
			ConfirmEnabled: false,
		}
	}

	validation := service.ValidateQuantity(quantity, sel.Stock, true)
	if !validation.OK {
		metrics.CheckoutAttempts.WithLabelValues("blocked").Inc()
		return &response.CheckoutResponse{
			State:          StateIdle,
			Message:        validation.Message(),
			ConfirmEnabled: false,
		}
	}

	order, err := entity.NewSaleOrder(uc.ids.BuyOrder(), uc.ids.SessionID(), sel, quantity)
	if err != nil {
		// La validación ya pasó; esto solo puede ser un generador mal
		// configurado.
		log.Error().Err(err).Msg("no se pudo materializar la orden de venta")
		metrics.CheckoutAttempts.WithLabelValues("blocked").Inc()
		return &response.CheckoutResponse{
			State:          StateIdle,
			Message:        msgUnexpected,
			ConfirmEnabled: true,
		}
	}

	log.Info().
		Str("buy_order", order.BuyOrder).
		Str("session_id", order.SessionID).
		Str("amount", order.Amount.String()).
		Msg("iniciando transacción de pago")

	result, err := uc.webpayClient.Create(ctx, client.NewSaleOrderPayload(*order))
	if err != nil {
		// Falla de transporte o HTTP sin mensaje del servidor: la orden se
		// descarta, no hay reintento automático.
		log.Error().Err(err).Str("buy_order", order.BuyOrder).Msg("error de comunicación con la pasarela")
		metrics.CheckoutAttempts.WithLabelValues("transport_error").Inc()
		return &response.CheckoutResponse{
			State:          StateFailed,
			Message:        msgTransportError,
			ConfirmEnabled: true,
		}
	}

	if result.Redirect() {
		// Navegación completa hacia la pasarela: la acción de venta no se
		// rehabilita porque la página está saliendo.
		metrics.CheckoutAttempts.WithLabelValues("redirected").Inc()
		return &response.CheckoutResponse{
			State:          StateRedirecting,
			Message:        msgRedirecting,
			RedirectURL:    result.URL,
			Token:          result.Token,
			BuyOrder:       order.BuyOrder,
			SessionID:      order.SessionID,
			ConfirmEnabled: false,
		}
	}

	// Rechazo a nivel de aplicación (por ejemplo conflicto de stock): el
	// mensaje del servidor es autoritativo, igual que la cifra de stock
	// corregida si viene.
	msg := result.RejectionMessage()
	if msg == "" {
		msg = msgUnexpected
	}

	stockCorrected := false
	if result.AvailableStock != nil {
		uc.session.ApplyStock(*result.AvailableStock)
		stockCorrected = true
	}

	metrics.CheckoutAttempts.WithLabelValues("rejected").Inc()
	return &response.CheckoutResponse{
		State:          StateAwaitingRetry,
		Message:        msg,
		BuyOrder:       order.BuyOrder,
		SessionID:      order.SessionID,
		ConfirmEnabled: true,
		StockCorrected: stockCorrected,
	}
}
