package response

import (
	"github.com/oscargustin/Ferremas/src/catalog/domain/entity"
)

// SearchResponse es el resultado de una búsqueda de productos. Con la lista
// vacía, Message trae el estado informativo "sin resultados".
type SearchResponse struct {
	Results    []entity.Product `json:"results"`
	TotalCount int              `json:"total_count"`
	Message    string           `json:"message,omitempty"`
}
