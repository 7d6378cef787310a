package response

// CheckoutResponse es el resultado de un intento de checkout. Con
// redirect_url presente el navegador debe navegar a la pasarela (navegación
// completa, no un fetch de fondo) y la acción de venta queda deshabilitada;
// en cualquier falla confirm_enabled indica si se puede reintentar.
type CheckoutResponse struct {
	State          string `json:"state"`
	Message        string `json:"message,omitempty"`
	RedirectURL    string `json:"redirect_url,omitempty"`
	Token          string `json:"token,omitempty"`
	BuyOrder       string `json:"buy_order,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	ConfirmEnabled bool   `json:"confirm_enabled"`
	StockCorrected bool   `json:"stock_corrected,omitempty"`
}
