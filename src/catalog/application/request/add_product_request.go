package request

// AddProductRequest lleva los datos del formulario de registro de producto.
// Image acepta tanto base64 puro como un data-URI completo; el prefijo se
// recorta antes de enviar al backend.
type AddProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}
