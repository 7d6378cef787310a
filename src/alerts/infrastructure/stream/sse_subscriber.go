// Package stream consume el canal server-push de alertas de stock bajo.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oscargustin/Ferremas/src/alerts/application/usecase"
	"github.com/oscargustin/Ferremas/src/alerts/domain/entity"
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/metrics"

	"github.com/rs/zerolog/log"
)

const eventLowStock = "low_stock_alert"

const (
	msgInterrupted  = "Error en la conexión de notificaciones de stock."
	msgNotSupported = "Las notificaciones de stock bajo no son soportadas por el backend."
)

var errStreamUnsupported = errors.New("event stream not supported")

// Options configura la suscripción al stream de alertas.
type Options struct {
	// Reconnect habilita la reconexión con backoff exponencial. Apagado
	// por defecto: una caída deja una única advertencia en el log y la
	// suscripción termina.
	Reconnect      bool
	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// Subscriber mantiene la conexión SSE con GET /events/low-stock y alimenta
// el log de notificaciones. Es un recurso de vida larga, adquirido una vez
// al arranque.
type Subscriber struct {
	httpClient *http.Client
	baseURL    string
	alertLog   *usecase.AlertLog
	opts       Options
}

// NewSubscriber crea una nueva instancia del suscriptor. El cliente HTTP no
// lleva timeout global: la conexión es de vida larga y se corta por
// contexto.
func NewSubscriber(baseURL string, alertLog *usecase.AlertLog, opts Options) *Subscriber {
	return &Subscriber{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		alertLog:   alertLog,
		opts:       opts,
	}
}

// Run consume el stream hasta que el contexto se cancele o la conexión se
// corte sin política de reconexión. Siempre devuelve nil al terminar de
// forma esperada: la caída del stream nunca es fatal para el servicio.
func (s *Subscriber) Run(ctx context.Context) error {
	backoff := s.opts.BackoffInitial
	if backoff <= 0 {
		backoff = 2 * time.Second
	}

	for {
		connected, err := s.consume(ctx)

		if ctx.Err() != nil {
			return nil
		}

		if errors.Is(err, errStreamUnsupported) {
			// Un único aviso estático en lugar de una suscripción.
			s.alertLog.PushNotice(msgNotSupported)
			log.Warn().Msg("el backend no soporta server-sent events")
			return nil
		}

		metrics.AlertStreamErrors.Inc()

		if !s.opts.Reconnect {
			s.alertLog.PushWarning(msgInterrupted)
			log.Error().Err(err).Msg("stream de alertas interrumpido, sin reconexión")
			return nil
		}

		if connected {
			// Solo la caída de una conexión establecida deja advertencia;
			// los reintentos fallidos no llenan el log.
			s.alertLog.PushWarning(msgInterrupted)
			backoff = s.opts.BackoffInitial
		}

		log.Warn().Err(err).Dur("backoff", backoff).Msg("reintentando conexión al stream de alertas")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		backoff *= 2
		if s.opts.BackoffMax > 0 && backoff > s.opts.BackoffMax {
			backoff = s.opts.BackoffMax
		}
	}
}

// consume abre la conexión y procesa frames hasta que el stream se corte.
// Devuelve si la conexión llegó a establecerse.
func (s *Subscriber) consume(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/events/low-stock", s.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("error connecting to alert stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("alert stream returned status %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		return false, errStreamUnsupported
	}

	log.Info().Str("url", url).Msg("suscrito al stream de alertas de stock bajo")

	var (
		eventName string
		data      strings.Builder
	)

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			// Línea en blanco: fin del frame, despachar.
			s.dispatch(eventName, data.String())
			eventName = ""
			data.Reset()
		case strings.HasPrefix(line, ":"):
			// Comentario keepalive, se ignora.
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := scanner.Err(); err != nil {
		return true, fmt.Errorf("alert stream read error: %w", err)
	}
	return true, errors.New("alert stream closed by server")
}

// dispatch procesa un frame completo. Un payload malformado se registra y
// descarta sin terminar el stream.
func (s *Subscriber) dispatch(eventName, data string) {
	if data == "" {
		return
	}
	if eventName != eventLowStock {
		log.Debug().Str("event", eventName).Str("data", data).Msg("evento SSE genérico ignorado")
		return
	}

	var alert entity.LowStockAlert
	if err := json.Unmarshal([]byte(data), &alert); err != nil {
		log.Error().Err(err).Str("data", data).Msg("payload de alerta malformado, descartado")
		return
	}

	s.alertLog.PushAlert(alert)
	metrics.LowStockAlerts.Inc()
	log.Info().
		Str("product", alert.ProductName).
		Str("branch", alert.BranchName).
		Int("stock", alert.CurrentStock).
		Msg("alerta de stock bajo recibida")
}
