package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hookify/internal/models/request_models"
	"hookify/internal/services"
	"hookify/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account with a FREE-tier subscription
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"email": req.Email}, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"access_token": token, "token_type": "bearer"}, "Login successful")
}

// CreateApiKey godoc
// @Summary Create an API key
// @Description Issue a new API key for the authenticated account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.CreateApiKeyRequest true "API key payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/api-keys [post]
func (a *AccountController) CreateApiKey(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateApiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	key, err := a.accountService.CreateApiKey(c.Request.Context(), accountID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, key, "API key created")
}

// ListApiKeys godoc
// @Summary List API keys
// @Description Fetch the authenticated account's API keys
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/api-keys [get]
func (a *AccountController) ListApiKeys(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	keys, err := a.accountService.ListApiKeys(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, keys, "API keys fetched successfully")
}
