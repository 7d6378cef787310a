package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AddProductPayload es el payload de POST /api/products/add. La imagen va
// como base64 puro, sin prefijo data-URI.
type AddProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// AddProductResult es la respuesta exitosa del registro de producto.
type AddProductResult struct {
	Message   string `json:"message"`
	ProductID int    `json:"product_id"`
}

type addProductError struct {
	Error string `json:"error"`
}

// ProductClient registra productos nuevos contra el backend.
type ProductClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewProductClient crea una nueva instancia del cliente.
func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// StripDataURIPrefix recorta el prefijo "data:...;base64," de un payload de
// imagen si viene con él. El backend espera solo el base64.
func StripDataURIPrefix(image string) string {
	if idx := strings.Index(image, "base64,"); idx >= 0 {
		return image[idx+len("base64,"):]
	}
	return image
}

// AddProduct registra un producto con POST /api/products/add. Un cuerpo de
// error del backend ({"error": ...}) se devuelve textual.
func (c *ProductClient) AddProduct(ctx context.Context, payload AddProductPayload) (*AddProductResult, error) {
	payload.Image = StripDataURIPrefix(payload.Image)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/api/products/add", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling product service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errBody addProductError
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != "" {
			return nil, fmt.Errorf("%s", errBody.Error)
		}
		return nil, fmt.Errorf("HTTP error, status %d", resp.StatusCode)
	}

	var result AddProductResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &result, nil
}
