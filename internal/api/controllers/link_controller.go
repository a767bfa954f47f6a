package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hookify/internal/models/request_models"
	"hookify/internal/services"
	"hookify/pkg/utils"
)

type LinkController struct {
	linkService services.LinkServiceInterface
}

func NewLinkController(linkService services.LinkServiceInterface) *LinkController {
	return &LinkController{
		linkService: linkService,
	}
}

// Shorten godoc
// @Summary Shorten a URL
// @Description Create a UTM-tagged short link
// @Tags Links
// @Accept json
// @Produce json
// @Param request body request_models.ShortenRequest true "Shorten payload"
// @Success 200 {object} utils.APIResponse
// @Security ApiKeyAuth
// @Router /links/shorten [post]
func (l *LinkController) Shorten(c *gin.Context) {
	var req request_models.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := l.linkService.Shorten(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Link shortened successfully")
}

// Redirect godoc
// @Summary Redirect a short link
// @Description Resolve a short code, count the click, and redirect
// @Tags Links
// @Param code path string true "Short code"
// @Success 302
// @Failure 404 {object} utils.APIResponse
// @Router /r/{code} [get]
func (l *LinkController) Redirect(c *gin.Context) {
	target, err := l.linkService.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, utils.ErrLinkNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Link not found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, target)
}

// Analytics godoc
// @Summary Link analytics
// @Description List all short links with click counts
// @Tags Links
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security ApiKeyAuth
// @Router /analytics/links [get]
func (l *LinkController) Analytics(c *gin.Context) {
	analytics, err := l.linkService.Analytics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analytics, "Analytics fetched successfully")
}
