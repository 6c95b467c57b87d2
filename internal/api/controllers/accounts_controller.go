package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oneconversion/internal/models/request_models"
	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type AccountsController struct {
	accountService services.AccountServiceInterface
}

func NewAccountsController(accountService services.AccountServiceInterface) *AccountsController {
	return &AccountsController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Authenticate an admin account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountsController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
