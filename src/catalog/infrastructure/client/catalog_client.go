package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/oscargustin/Ferremas/src/catalog/domain/entity"
)

// searchErrorBody es el cuerpo de error que devuelve el backend de búsqueda
// (404 con mensaje cuando no hay resultados).
type searchErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CatalogClient es el cliente HTTP del catálogo del backend.
type CatalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogClient crea una nueva instancia del cliente.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// SearchProducts busca productos con GET /api/productos/buscar?q=.
//
// Un 404 con mensaje es el estado informativo "sin resultados", no un
// error: se devuelve la lista vacía junto al mensaje del backend. Cualquier
// otro no-2xx es una falla, con el mensaje del cuerpo textual si existe o
// el genérico "HTTP error, status <code>" si no.
func (c *CatalogClient) SearchProducts(ctx context.Context, query string) ([]entity.Product, string, error) {
	if query == "" {
		return nil, "", entity.ErrSearchQueryRequired
	}

	reqURL := fmt.Sprintf("%s/api/productos/buscar?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("error calling catalog service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		var errBody searchErrorBody
		_ = json.Unmarshal(body, &errBody)
		return nil, errBody.Message, nil
	}

	if resp.StatusCode != http.StatusOK {
		var errBody searchErrorBody
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			return nil, "", fmt.Errorf("%s", errBody.Message)
		}
		return nil, "", fmt.Errorf("HTTP error, status %d", resp.StatusCode)
	}

	var products []entity.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, "", fmt.Errorf("error unmarshalling response: %w", err)
	}

	return products, "", nil
}
