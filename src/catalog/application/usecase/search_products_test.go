package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oscargustin/Ferremas/src/catalog/application/request"
	"github.com/oscargustin/Ferremas/src/catalog/domain/entity"
	"github.com/oscargustin/Ferremas/src/catalog/infrastructure/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetSpy registra las llamadas a Clear.
type resetSpy struct {
	cleared int
}

func (r *resetSpy) Clear() { r.cleared++ }

func TestSearchClearsSelectionBeforeRequest(t *testing.T) {
	spy := &resetSpy{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Para cuando el backend responde, la selección ya debe estar limpia.
		assert.Equal(t, 1, spy.cleared)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "nombre": "Taladro", "sucursales_info": []any{}},
		})
	}))
	defer srv.Close()

	uc := NewSearchProductsUseCase(client.NewCatalogClient(srv.URL, time.Second), spy)
	resp, err := uc.Execute(context.Background(), "taladro")

	require.NoError(t, err)
	assert.Equal(t, 1, spy.cleared)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestSearchClearsSelectionEvenOnFailure(t *testing.T) {
	spy := &resetSpy{}
	uc := NewSearchProductsUseCase(client.NewCatalogClient("http://127.0.0.1:1", 200*time.Millisecond), spy)

	_, err := uc.Execute(context.Background(), "taladro")

	require.Error(t, err)
	assert.Equal(t, 1, spy.cleared, "the selection must be discarded even when the search fails")
}

func TestSearchNoResultsCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "No se encontraron productos para 'xyz'."})
	}))
	defer srv.Close()

	uc := NewSearchProductsUseCase(client.NewCatalogClient(srv.URL, time.Second), &resetSpy{})
	resp, err := uc.Execute(context.Background(), "xyz")

	require.NoError(t, err)
	assert.Equal(t, "No se encontraron productos para 'xyz'.", resp.Message)
	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.TotalCount)
}

func TestSearchNoResultsDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	uc := NewSearchProductsUseCase(client.NewCatalogClient(srv.URL, time.Second), &resetSpy{})
	resp, err := uc.Execute(context.Background(), "xyz")

	require.NoError(t, err)
	assert.Equal(t, "No se encontraron resultados.", resp.Message)
	assert.NotNil(t, resp.Results, "an empty result set serializes as [], never null")
}

func TestAddProductLocalValidation(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	uc := NewAddProductUseCase(client.NewProductClient(srv.URL, time.Second))

	_, err := uc.Execute(context.Background(), &request.AddProductRequest{Name: "", Price: 100})
	assert.ErrorIs(t, err, entity.ErrNameRequired)

	_, err = uc.Execute(context.Background(), &request.AddProductRequest{Name: "Taladro", Price: 0})
	assert.ErrorIs(t, err, entity.ErrInvalidPrice)

	assert.False(t, called, "validation errors must never reach the network")
}

func TestAddProductSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"message": "Producto agregado", "product_id": 9})
	}))
	defer srv.Close()

	uc := NewAddProductUseCase(client.NewProductClient(srv.URL, time.Second))
	result, err := uc.Execute(context.Background(), &request.AddProductRequest{Name: "Taladro", Price: 89990})

	require.NoError(t, err)
	assert.Equal(t, 9, result.ProductID)
}
