package usecase

import (
	"context"

	"github.com/oscargustin/Ferremas/src/catalog/application/request"
	"github.com/oscargustin/Ferremas/src/catalog/domain/entity"
	"github.com/oscargustin/Ferremas/src/catalog/infrastructure/client"

	"github.com/rs/zerolog/log"
)

// AddProductUseCase caso de uso para registrar un producto nuevo.
type AddProductUseCase struct {
	productClient *client.ProductClient
}

// NewAddProductUseCase crea una nueva instancia del caso de uso
func NewAddProductUseCase(productClient *client.ProductClient) *AddProductUseCase {
	return &AddProductUseCase{productClient: productClient}
}

// Execute valida el formulario localmente y registra el producto en el
// backend. Los errores de validación nunca llegan a la red.
func (uc *AddProductUseCase) Execute(ctx context.Context, req *request.AddProductRequest) (*client.AddProductResult, error) {
	if req.Name == "" {
		return nil, entity.ErrNameRequired
	}
	if req.Price <= 0 {
		return nil, entity.ErrInvalidPrice
	}

	result, err := uc.productClient.AddProduct(ctx, client.AddProductPayload{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("name", req.Name).Int("product_id", result.ProductID).Msg("producto registrado")
	return result, nil
}
