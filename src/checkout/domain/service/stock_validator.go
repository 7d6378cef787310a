// Package service contiene la lógica pura de validación y cálculo de venta.
package service

import "fmt"

// InvalidReason clasifica por qué una cantidad no es vendible.
type InvalidReason string

const (
	ReasonNone                InvalidReason = ""
	ReasonNonPositiveQuantity InvalidReason = "NON_POSITIVE_QUANTITY"
	ReasonExceedsStock        InvalidReason = "EXCEEDS_STOCK"
)

// Validation es el veredicto de ValidateQuantity.
type Validation struct {
	OK       bool          `json:"ok"`
	Reason   InvalidReason `json:"reason,omitempty"`
	Quantity int           `json:"quantity"`
	Stock    int           `json:"stock"`
}

// Message devuelve el mensaje para el usuario asociado al veredicto.
func (v Validation) Message() string {
	switch v.Reason {
	case ReasonNonPositiveQuantity:
		return "La cantidad debe ser un número positivo (mínimo 1)."
	case ReasonExceedsStock:
		return fmt.Sprintf("Cantidad solicitada (%d) supera el stock disponible (%d) en esta sucursal.", v.Quantity, v.Stock)
	default:
		return ""
	}
}

// ValidateQuantity valida una cantidad solicitada contra el stock de la
// selección activa. Función pura, sin efectos.
//
// Una cantidad no positiva siempre falla. El exceso de stock solo aplica
// cuando existe una selección; sin selección el veredicto reporta validez
// sintáctica (el checkout se bloquea aparte por falta de selección).
func ValidateQuantity(quantity, stock int, hasSelection bool) Validation {
	v := Validation{Quantity: quantity, Stock: stock}

	if quantity <= 0 {
		v.Reason = ReasonNonPositiveQuantity
		return v
	}
	if hasSelection && quantity > stock {
		v.Reason = ReasonExceedsStock
		return v
	}

	v.OK = true
	return v
}
