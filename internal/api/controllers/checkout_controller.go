package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oneconversion/internal/models/request_models"
	"oneconversion/internal/models/response_models"
	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type CheckoutController struct {
	paymentService services.PaymentServiceInterface
}

func NewCheckoutController(paymentService services.PaymentServiceInterface) *CheckoutController {
	return &CheckoutController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Create a PIX charge for a product
// @Description Charges the gateway for the product price and records the pending sale
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentRequest true "Checkout Request"
// @Success 201 {object} utils.APIResponse
// @Router /checkout [post]
func (p *CheckoutController) CreateCheckout(c *gin.Context) {
	var request request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payment, err := p.paymentService.CreatePayment(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, payment, "PIX charge created successfully")
}

// GetPaymentStatus godoc
// @Summary Check the current status of a payment
// @Description Polls the gateway once and returns the translated status
// @Tags Checkout
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Router /payments/{transactionId}/status [get]
func (p *CheckoutController) GetPaymentStatus(c *gin.Context) {
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "transactionId is required")
		return
	}

	status, err := p.paymentService.CheckPaymentStatus(c.Request.Context(), transactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PaymentStatusResponse{
		TransactionID: transactionID,
		Status:        string(status),
	}, "")
}

// HandleWebhook always acks with 200 once the payload parses. The provider
// retries on non-2xx, and an unknown transaction id will never become known.
func (p *CheckoutController) HandleWebhook(c *gin.Context) {
	var payload request_models.PushInPayWebhook
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := p.paymentService.HandleWebhook(c.Request.Context(), payload); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "ok")
}
