// Package state mantiene el estado mutable de la página de venta: la
// selección activa, la cantidad ingresada y el tipo de cambio vigente.
package state

import (
	"sync"

	"github.com/oscargustin/Ferremas/src/checkout/domain/entity"

	"github.com/shopspring/decimal"
)

// DefaultQuantity es la cantidad con la que parte toda selección nueva.
const DefaultQuantity = 1

// SaleSession es el dueño único del estado de venta. Cada petición HTTP es
// un "evento" del modelo cooperativo original; el RWMutex garantiza que
// ninguna mutación parcial sea visible entre eventos.
type SaleSession struct {
	mu        sync.RWMutex
	selection *entity.Selection
	quantity  int
	rate      decimal.Decimal
}

// NewSaleSession crea una sesión de venta vacía (sin selección, cantidad 1,
// tipo de cambio desconocido).
func NewSaleSession() *SaleSession {
	return &SaleSession{quantity: DefaultQuantity}
}

// Select reemplaza la selección activa por completo. No queda rastro alguno
// de la selección anterior; la cantidad vuelve al valor por defecto.
func (s *SaleSession) Select(sel entity.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = &sel
	s.quantity = DefaultQuantity
}

// Clear descarta la selección activa y vuelve al estado vacío.
func (s *SaleSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
	s.quantity = DefaultQuantity
}

// Selection devuelve una copia de la selección activa, si existe.
func (s *SaleSession) Selection() (entity.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection == nil {
		return entity.Selection{}, false
	}
	return *s.selection, true
}

// SetQuantity guarda la última cantidad ingresada por el usuario.
func (s *SaleSession) SetQuantity(quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantity = quantity
}

// Quantity devuelve la última cantidad ingresada.
func (s *SaleSession) Quantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quantity
}

// ApplyStock corrige en el lugar el stock de la selección activa con la
// cifra autoritativa devuelta por la pasarela. Solo muta el campo stock.
func (s *SaleSession) ApplyStock(stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil || stock < 0 {
		return
	}
	s.selection.Stock = stock
}

// SetRate guarda el tipo de cambio CLP por USD. Una tasa no positiva se
// normaliza a cero, el valor que representa "desconocido".
func (s *SaleSession) SetRate(rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rate.LessThanOrEqual(decimal.Zero) {
		s.rate = decimal.Zero
		return
	}
	s.rate = rate
}

// Rate devuelve el tipo de cambio vigente (cero si es desconocido).
func (s *SaleSession) Rate() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}
