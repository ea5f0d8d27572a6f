package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/config"
	"github.com/linskybing/form-console/internal/domain/account"
	"github.com/linskybing/form-console/pkg/response"
	"github.com/linskybing/form-console/pkg/types"
	"github.com/linskybing/form-console/pkg/utils"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Register an account
// @Description Creates an unconfirmed account and mails a confirmation link.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body account.CredentialsInput true "Email and password"
// @Success 201 {object} response.MessageResponse "Confirmation mail sent"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to create account"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input account.CredentialsInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), input); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Check your email to confirm the account"})
}

// Confirm godoc
// @Summary Confirm an account
// @Tags auth
// @Produce json
// @Param token query string true "Confirmation token"
// @Success 200 {object} response.MessageResponse "Account confirmed"
// @Failure 400 {object} response.ErrorResponse "Invalid or expired token"
// @Router /auth/confirm [get]
func (h *AuthHandler) Confirm(c *gin.Context) {
	if _, err := h.svc.Confirm(c.Request.Context(), c.Query("token")); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Account confirmed"})
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body account.CredentialsInput true "Email and password"
// @Success 200 {object} response.TokenResponse "Session token"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Failure 403 {object} response.ErrorResponse "Email not confirmed"
// @Failure 429 {object} response.ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" form:"email" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.svc.Login(c.Request.Context(), account.CredentialsInput{Email: req.Email, Password: req.Password})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		res.Token,
		int(h.svc.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:     res.Token,
		AccountID: res.Account.ID,
		Email:     res.Account.Email,
		IsAdmin:   res.IsAdmin,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Revokes the presented token, if any, and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var claims *types.Claims
	if tokenStr, err := middleware.TokenFromRequest(c); err == nil {
		if parsed, err := middleware.ParseToken(tokenStr); err == nil {
			claims = parsed
		}
	}

	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		serviceError(c, err)
		return
	}

	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Status godoc
// @Summary Current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.StatusResponse "Session is valid"
// @Failure 401 {object} response.ErrorResponse "No valid session"
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	isAdmin, err := h.svc.IsAdmin(claims.AccountID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.StatusResponse{
		Status:    "valid",
		AccountID: claims.AccountID,
		Email:     claims.Email,
		IsAdmin:   isAdmin,
	})
}
