package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hookify/pkg/utils"
)

// currentAccountID reads the authenticated account id set by the auth
// middleware. A missing or malformed id aborts with 401.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("account_id")
	accountID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return accountID, true
}
