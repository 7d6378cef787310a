package controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/oscargustin/Ferremas/src/checkout/application/request"
	"github.com/oscargustin/Ferremas/src/checkout/application/response"
	"github.com/oscargustin/Ferremas/src/checkout/application/state"
	"github.com/oscargustin/Ferremas/src/checkout/application/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutController maneja las peticiones HTTP del flujo de venta
type CheckoutController struct {
	session       *state.SaleSession
	selectOfferUC *usecase.SelectOfferUseCase
	quoteSaleUC   *usecase.QuoteSaleUseCase
	refreshRateUC *usecase.RefreshRateUseCase
	checkoutUC    *usecase.CheckoutUseCase
}

// NewCheckoutController crea una nueva instancia del controlador
func NewCheckoutController(
	session *state.SaleSession,
	selectOfferUC *usecase.SelectOfferUseCase,
	quoteSaleUC *usecase.QuoteSaleUseCase,
	refreshRateUC *usecase.RefreshRateUseCase,
	checkoutUC *usecase.CheckoutUseCase,
) *CheckoutController {
	return &CheckoutController{
		session:       session,
		selectOfferUC: selectOfferUC,
		quoteSaleUC:   quoteSaleUC,
		refreshRateUC: refreshRateUC,
		checkoutUC:    checkoutUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CheckoutController) RegisterRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.POST("/select", c.SelectOffer)
		checkout.GET("/selection", c.GetSelection)
		checkout.GET("/quote", c.Quote)
		checkout.POST("/refresh-rate", c.RefreshRate)
		checkout.POST("/confirm", c.Confirm)
	}

	log.Println("Rutas Checkout disponibles:")
	log.Println("  POST   /api/v1/checkout/select")
	log.Println("  GET    /api/v1/checkout/selection")
	log.Println("  GET    /api/v1/checkout/quote")
	log.Println("  POST   /api/v1/checkout/refresh-rate")
	log.Println("  POST   /api/v1/checkout/confirm")
}

// SelectOffer reemplaza la selección activa por la oferta elegida
func (c *CheckoutController) SelectOffer(ctx *gin.Context) {
	var req request.SelectOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := c.selectOfferUC.Execute(&req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetSelection devuelve el detalle de venta actual
func (c *CheckoutController) GetSelection(ctx *gin.Context) {
	sel, ok := c.session.Selection()
	ctx.JSON(http.StatusOK, response.NewSelectionResponse(sel, ok, c.session.Quantity()))
}

// Quote valida la cantidad y calcula los totales en CLP y USD.
// Una cantidad que no parsea como entero se cotiza como 0, lo que reporta
// NON_POSITIVE_QUANTITY con totales en cero.
func (c *CheckoutController) Quote(ctx *gin.Context) {
	raw := ctx.DefaultQuery("quantity", strconv.Itoa(state.DefaultQuantity))

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		quantity = 0
	}

	ctx.JSON(http.StatusOK, c.quoteSaleUC.Execute(quantity))
}

// RefreshRate refresca el tipo de cambio CLP/USD desde el backend
func (c *CheckoutController) RefreshRate(ctx *gin.Context) {
	rate, known := c.refreshRateUC.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{
		"rate":  rate,
		"known": known,
	})
}

// Confirm ejecuta el intento de checkout contra la pasarela de pago
func (c *CheckoutController) Confirm(ctx *gin.Context) {
	// El cuerpo es opcional: confirmar sin cantidad usa la última cotizada.
	var req request.ConfirmSaleRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
	}

	quantity := c.session.Quantity()
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	resp := c.checkoutUC.Execute(ctx.Request.Context(), quantity)

	status := http.StatusOK
	if resp.State == usecase.StateFailed {
		status = http.StatusBadGateway
	}
	ctx.JSON(status, resp)
}
