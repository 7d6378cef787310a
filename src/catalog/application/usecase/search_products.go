package usecase

import (
	"context"

	"github.com/oscargustin/Ferremas/src/catalog/application/response"
	"github.com/oscargustin/Ferremas/src/catalog/domain/entity"
	"github.com/oscargustin/Ferremas/src/catalog/infrastructure/client"
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/metrics"

	"github.com/rs/zerolog/log"
)

// SelectionResetter descarta la selección de venta activa. Lo implementa la
// sesión de checkout; la interfaz evita acoplar los contextos.
type SelectionResetter interface {
	Clear()
}

// SearchProductsUseCase caso de uso para buscar productos en el catálogo.
type SearchProductsUseCase struct {
	catalogClient *client.CatalogClient
	selection     SelectionResetter
}

// NewSearchProductsUseCase crea una nueva instancia del caso de uso
func NewSearchProductsUseCase(catalogClient *client.CatalogClient, selection SelectionResetter) *SearchProductsUseCase {
	return &SearchProductsUseCase{
		catalogClient: catalogClient,
		selection:     selection,
	}
}

// Execute busca productos por término. La selección activa se descarta
// ANTES de emitir la petición: una respuesta tardía de una búsqueda
// superada no puede resucitar una selección obsoleta (last-write-wins en
// los resultados, nunca en la selección).
func (uc *SearchProductsUseCase) Execute(ctx context.Context, query string) (*response.SearchResponse, error) {
	uc.selection.Clear()

	products, message, err := uc.catalogClient.SearchProducts(ctx, query)
	if err != nil {
		metrics.ProductSearches.WithLabelValues("error").Inc()
		return nil, err
	}

	if len(products) == 0 {
		if message == "" {
			message = "No se encontraron resultados."
		}
		metrics.ProductSearches.WithLabelValues("empty").Inc()
		log.Debug().Str("query", query).Msg("búsqueda sin resultados")
		return &response.SearchResponse{Results: []entity.Product{}, Message: message}, nil
	}

	metrics.ProductSearches.WithLabelValues("ok").Inc()
	return &response.SearchResponse{
		Results:    products,
		TotalCount: len(products),
	}, nil
}
