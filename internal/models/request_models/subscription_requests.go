package request_models

type UpgradePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}
