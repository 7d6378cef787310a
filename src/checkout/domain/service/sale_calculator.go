package service

import (
	"github.com/shopspring/decimal"
)

// Totals agrupa el total de una venta en ambas monedas. Cuando no hay tipo
// de cambio conocido, USDAvailable queda en false y TotalUSD no debe usarse:
// la capa de presentación muestra el marcador de no-disponible en su lugar.
type Totals struct {
	TotalCLP     decimal.Decimal
	TotalUSD     decimal.Decimal
	USDAvailable bool
}

// ComputeTotals calcula el total en CLP y USD. Función pura.
//
// TotalCLP = unitPrice × quantity, sin redondear: el redondeo a la
// convención de cero decimales de CLP ocurre solo al formatear. TotalUSD se
// calcula dividiendo por la tasa únicamente cuando rate > 0.
//
// Una cantidad no positiva colapsa ambos totales a cero. Es una regla de
// seguridad de presentación, no un bypass de validación: la validez de la
// cantidad se reporta por separado con ValidateQuantity.
func ComputeTotals(unitPrice decimal.Decimal, quantity int, rate decimal.Decimal) Totals {
	if quantity <= 0 {
		return Totals{TotalCLP: decimal.Zero, TotalUSD: decimal.Zero, USDAvailable: true}
	}

	totalCLP := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	if rate.GreaterThan(decimal.Zero) {
		return Totals{
			TotalCLP:     totalCLP,
			TotalUSD:     totalCLP.Div(rate),
			USDAvailable: true,
		}
	}

	return Totals{TotalCLP: totalCLP, USDAvailable: false}
}
