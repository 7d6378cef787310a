// Package idgen genera los identificadores de orden y sesión de cada
// intento de checkout, detrás de una interfaz para poder inyectar valores
// deterministas en tests.
package idgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Generator produce identificadores frescos por intento de checkout.
type Generator interface {
	// BuyOrder devuelve una referencia de orden basada en tiempo más un
	// sufijo aleatorio. La unicidad no es criptográfica; la probabilidad
	// de colisión es despreciable para uso interactivo.
	BuyOrder() string

	// SessionID devuelve un identificador de sesión UUID v4 (RFC 4122).
	SessionID() string
}

type randomGenerator struct{}

// New crea el generador por defecto.
func New() Generator {
	return randomGenerator{}
}

func (randomGenerator) BuyOrder() string {
	return fmt.Sprintf("O-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}

func (randomGenerator) SessionID() string {
	return uuid.NewString()
}
