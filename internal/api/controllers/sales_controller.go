package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oneconversion/internal/models/response_models"
	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type SalesController struct {
	salesService   services.SalesServiceInterface
	paymentService services.PaymentServiceInterface
}

func NewSalesController(
	salesService services.SalesServiceInterface,
	paymentService services.PaymentServiceInterface,
) *SalesController {
	return &SalesController{
		salesService:   salesService,
		paymentService: paymentService,
	}
}

// ListSales godoc
// @Summary List all sales with aggregate metadata
// @Tags Sales
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/sales [get]
func (s *SalesController) ListSales(c *gin.Context) {
	sales, metadata, err := s.salesService.ListSales(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"sales":    sales,
		"metadata": metadata,
	}, "")
}

// CheckSale godoc
// @Summary Force a status check against the payment gateway
// @Description Runs one poll cycle for the sale and returns the resulting status
// @Tags Sales
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/sales/{transactionId}/check [post]
func (s *SalesController) CheckSale(c *gin.Context) {
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "transactionId is required")
		return
	}

	status, err := s.paymentService.CheckPaymentStatus(c.Request.Context(), transactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PaymentStatusResponse{
		TransactionID: transactionID,
		Status:        string(status),
	}, "Status refreshed")
}
