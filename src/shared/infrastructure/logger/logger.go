// Package logger inicializa el logger estructurado global del servicio.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configura zerolog según el entorno: JSON a nivel info en producción,
// consola con nivel debug en desarrollo.
func Init(production bool) {
	if production {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
}
