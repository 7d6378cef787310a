package request

// ConfirmSaleRequest es la acción de confirmar la venta. La cantidad es
// opcional: si no viene, se usa la última cantidad cotizada en la sesión.
type ConfirmSaleRequest struct {
	Quantity *int `json:"quantity"`
}
