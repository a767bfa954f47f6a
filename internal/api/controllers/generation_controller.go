package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hookify/internal/models/request_models"
	"hookify/internal/services"
	"hookify/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{
		generationService: generationService,
	}
}

// GenerateHooks godoc
// @Summary Generate video hooks
// @Description Generate viral hooks for a short-form video, charging one quota unit
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.HookRequest true "Hook generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/hook [post]
func (g *GenerationController) GenerateHooks(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.HookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := g.generationService.GenerateHooks(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Hooks generated successfully")
}

// GenerateCaptions godoc
// @Summary Generate video captions
// @Description Generate persuasive captions, charging one quota unit
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.CaptionRequest true "Caption generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/caption [post]
func (g *GenerationController) GenerateCaptions(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := g.generationService.GenerateCaptions(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Captions generated successfully")
}

// GenerateHashtags godoc
// @Summary Generate hashtags
// @Description Generate relevant hashtags, charging one quota unit
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.HashtagRequest true "Hashtag generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/hashtag [post]
func (g *GenerationController) GenerateHashtags(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.HashtagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := g.generationService.GenerateHashtags(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Hashtags generated successfully")
}

// AnalyzeEmotion godoc
// @Summary Analyze emotion
// @Description Analyze the dominant emotion of a text, charging one quota unit
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.EmotionRequest true "Emotion analysis payload"
// @Success 200 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/emotion [post]
func (g *GenerationController) AnalyzeEmotion(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.EmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := g.generationService.AnalyzeEmotion(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Emotion analyzed successfully")
}

// GenerateComplete godoc
// @Summary Generate a complete content pack
// @Description Generate hooks, captions, hashtags, and optional emotion analysis for one quota unit
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body request_models.CompleteRequest true "Complete generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/complete [post]
func (g *GenerationController) GenerateComplete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := g.generationService.GenerateComplete(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Content generated successfully")
}

// ListHistory godoc
// @Summary List generation history
// @Description Fetch the account's generation records, newest first
// @Tags Generation
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generations [get]
func (g *GenerationController) ListHistory(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, err := g.generationService.ListHistory(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "History fetched successfully")
}

// Stats godoc
// @Summary Generation statistics
// @Description Aggregate the account's generations by type in the current window
// @Tags Generation
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generations/stats [get]
func (g *GenerationController) Stats(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	stats, err := g.generationService.Stats(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

// Templates godoc
// @Summary List generation presets
// @Description Supported platforms, tones, and languages
// @Tags Generation
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /templates [get]
func (g *GenerationController) Templates(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"platforms": []string{"tiktok", "reels", "shorts"},
		"tones":     []string{"direct", "motivational", "educational", "storytelling"},
		"languages": []string{"en", "pt"},
		"notes":     "Use 'variants' for A/B testing and 'count' to control hashtag volume.",
	}, "Templates fetched successfully")
}
