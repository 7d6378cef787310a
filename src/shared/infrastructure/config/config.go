package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contiene toda la configuración del storefront, cargada desde
// variables de entorno (con .env opcional para desarrollo local).
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	// BackendBaseURL apunta al backend de Ferremas (catálogo, webpay, tipo
	// de cambio y stream de stock bajo).
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" default:"http://127.0.0.1:5000"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	PrometheusEnabled bool `envconfig:"PROMETHEUS_ENABLED" default:"false"`

	// Política de reconexión del stream de alertas. Por defecto no se
	// reconecta: una caída deja una única entrada de advertencia en el log.
	AlertsReconnect      bool          `envconfig:"ALERTS_RECONNECT" default:"false"`
	AlertsBackoffInitial time.Duration `envconfig:"ALERTS_BACKOFF_INITIAL" default:"2s"`
	AlertsBackoffMax     time.Duration `envconfig:"ALERTS_BACKOFF_MAX" default:"1m"`
	AlertsLogSize        int           `envconfig:"ALERTS_LOG_SIZE" default:"10"`
}

// IsProduction indica si la app corre en producción (afecta formato de logs).
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load carga la configuración desde el entorno. El archivo .env es opcional;
// si no existe se continúa solo con las variables de entorno.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
