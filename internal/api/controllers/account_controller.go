package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"raahi/internal/models/request_models"
	"raahi/internal/models/response_models"
	"raahi/internal/services"
	"raahi/pkg/middleware"
	"raahi/pkg/utils"
)

type CookieSettings struct {
	Secure bool
	MaxAge time.Duration
}

type AccountController struct {
	accountService services.AccountServiceInterface
	cookie         CookieSettings
}

func NewAccountController(accountService services.AccountServiceInterface, cookie CookieSettings) *AccountController {
	return &AccountController{
		accountService: accountService,
		cookie:         cookie,
	}
}

// Signup godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/auth/signup [post]
func (a *AccountController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setTokenCookie(c, auth.Token)
	utils.RespondCreated(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Valid email and password are required")
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setTokenCookie(c, auth.Token)
	utils.RespondSuccess(c, auth, "Login successful")
}

func (a *AccountController) Logout(c *gin.Context) {
	if err := a.accountService.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.clearTokenCookie(c)
	utils.RespondSuccess(c, nil, "Logged out")
}

func (a *AccountController) Me(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondSuccess(c, gin.H{"user": response_models.NewAccountResponse(account)}, "")
}

func (a *AccountController) Update(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := a.accountService.UpdateAccount(c.Request.Context(), account, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"user": updated}, "Profile updated")
}

func (a *AccountController) sameSite() http.SameSite {
	if a.cookie.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func (a *AccountController) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(a.sameSite())
	c.SetCookie(middleware.AccessTokenCookie, token, int(a.cookie.MaxAge.Seconds()), "/", "", a.cookie.Secure, true)
}

func (a *AccountController) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(a.sameSite())
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", a.cookie.Secure, true)
}
