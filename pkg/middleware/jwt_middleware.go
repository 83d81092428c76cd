package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"raahi/internal/models/db_models"
	"raahi/internal/services"
	"raahi/pkg/utils"
)

const (
	AccessTokenCookie = "access_token"
	accountKey        = "account"
)

// BearerToken reads the access token from the Authorization header, falling
// back to the access_token cookie.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

func JWTAuthMiddleware(accountService services.AccountServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		account, err := accountService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set("user_id", account.ID.String())
		c.Set(accountKey, account)
		c.Next()
	}
}

// CurrentAccount returns the account stored by JWTAuthMiddleware.
func CurrentAccount(c *gin.Context) (*db_models.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*db_models.Account)
	return account, ok
}
