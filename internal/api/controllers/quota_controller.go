package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hookify/internal/models/db_models"
	"hookify/internal/models/request_models"
	"hookify/internal/models/response_models"
	"hookify/internal/services"
	"hookify/pkg/utils"
)

type QuotaController struct {
	quotaService services.QuotaServiceInterface
}

func NewQuotaController(quotaService services.QuotaServiceInterface) *QuotaController {
	return &QuotaController{
		quotaService: quotaService,
	}
}

// GetUsage godoc
// @Summary Get quota usage
// @Description Report the account's quota position without mutating it
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /usage [get]
func (q *QuotaController) GetUsage(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	usage, err := q.quotaService.DescribeUsage(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, usage, "Usage fetched successfully")
}

// UpgradePlan godoc
// @Summary Change subscription plan
// @Description Move the account to a new plan tier
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body request_models.UpgradePlanRequest true "Plan change payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/upgrade [post]
func (q *QuotaController) UpgradePlan(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.UpgradePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tier := db_models.PlanTier(strings.ToUpper(req.Plan))
	sub, err := q.quotaService.ChangePlan(c.Request.Context(), accountID, tier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Plan updated successfully")
}

// ListPlans godoc
// @Summary List available plans
// @Description Fetch the plan catalog with quotas and prices
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (q *QuotaController) ListPlans(c *gin.Context) {
	plans := make([]response_models.PlanDetails, 0, len(db_models.ValidTiers()))
	for _, tier := range db_models.ValidTiers() {
		quota, _ := db_models.QuotaFor(tier)
		plans = append(plans, response_models.PlanDetails{
			Tier:         string(tier),
			MonthlyQuota: quota,
			PriceMinor:   db_models.PlanPricesMinor[tier],
		})
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}
