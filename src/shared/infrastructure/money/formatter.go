// Package money formatea montos según las convenciones de cada moneda.
// El redondeo ocurre únicamente aquí, al momento de mostrar: los cálculos
// aguas arriba trabajan siempre con decimales sin redondear.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// USDUnavailable es el marcador explícito cuando no hay tipo de cambio.
// Nunca se muestra un total en USD calculado con tasa desconocida.
const USDUnavailable = "N/A"

var (
	clpPrinter = message.NewPrinter(language.MustParse("es-CL"))
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
)

// FormatCLP formatea un monto en pesos chilenos: símbolo $, separador de
// miles es-CL y cero decimales (convención local para CLP).
func FormatCLP(amount decimal.Decimal) string {
	return clpPrinter.Sprintf("$%v", number.Decimal(
		amount.Round(0).IntPart(),
		number.MaxFractionDigits(0),
	))
}

// FormatUSD formatea un monto en dólares con dos decimales.
func FormatUSD(amount decimal.Decimal) string {
	return usdPrinter.Sprintf("$%v", number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
