package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/oscargustin/Ferremas/src/catalog/application/request"
	"github.com/oscargustin/Ferremas/src/catalog/application/usecase"
	"github.com/oscargustin/Ferremas/src/catalog/domain/entity"

	"github.com/gin-gonic/gin"
)

// CatalogController maneja las peticiones HTTP del catálogo
type CatalogController struct {
	searchProductsUC *usecase.SearchProductsUseCase
	addProductUC     *usecase.AddProductUseCase
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(searchProductsUC *usecase.SearchProductsUseCase, addProductUC *usecase.AddProductUseCase) *CatalogController {
	return &CatalogController{
		searchProductsUC: searchProductsUC,
		addProductUC:     addProductUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/catalog")
	{
		catalog.GET("/search", c.Search)
		catalog.POST("/products", c.AddProduct)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/catalog/search")
	log.Println("  POST   /api/v1/catalog/products")
}

// Search busca productos por término
func (c *CatalogController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Por favor, ingresa un término de búsqueda."})
		return
	}

	resp, err := c.searchProductsUC.Execute(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error al buscar productos: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddProduct registra un producto nuevo
func (c *CatalogController) AddProduct(ctx *gin.Context) {
	var req request.AddProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := c.addProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrNameRequired) || errors.Is(err, entity.ErrInvalidPrice) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, result)
}
