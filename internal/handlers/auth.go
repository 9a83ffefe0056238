// internal/handlers/auth.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/services"
	"github.com/anvogue/anvogue-admin/internal/utils"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
	workspaces  *services.Workspaces
}

func NewAuthHandler(authService *services.AuthService, workspaces *services.Workspaces) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		workspaces:  workspaces,
	}
}

// POST /api/auth/connexion
func (h *AuthHandler) Connexion(c *gin.Context) {
	h.login(c, h.authService.Connexion)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, h.authService.Login)
}

func (h *AuthHandler) login(c *gin.Context, signIn func(ctx context.Context, req *services.LoginRequest) (*models.Session, error)) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	session, err := signIn(c.Request.Context(), &req)
	if err != nil {
		h.authError(c, err, i18n.KeyAuthLoginFailed)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"token":       session.BearerToken(),
		"token_type":  "Bearer",
		"utilisateur": session.Utilisateur,
		"client":      session.Client,
	})
}

// POST /api/auth/inscription
func (h *AuthHandler) Inscription(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.InscriptionRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	avatar, err := optionalUpload(c, "avatar")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	req.Avatar = avatar

	user, err := h.authService.Inscription(c.Request.Context(), &req)
	if err != nil {
		h.authError(c, err, i18n.KeyAuthRegisterFailed)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyAuthRegisterSuccess),
		"utilisateur": user,
	})
}

// POST /api/auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SigninRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	avatar, err := optionalUpload(c, "avatar")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	req.Avatar = avatar

	client, err := h.authService.Signin(c.Request.Context(), &req)
	if err != nil {
		h.authError(c, err, i18n.KeyAuthRegisterFailed)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthRegisterSuccess),
		"client":  client,
	})
}

// GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.Profile(c.Request.Context())
	if err != nil {
		utils.BackendErrorResponse(c, err, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"utilisateur": user,
	})
}

// POST /api/auth/logout closes the caller's dialogs; the token itself stays valid at the
// backend until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		h.workspaces.Drop(userID)
	}
	utils.SuccessResponse(c, gin.H{"logged_out": true})
}

func (h *AuthHandler) authError(c *gin.Context, err error, fallbackKey string) {
	lang := utils.GetLangFromContext(c)
	if fe, ok := validation.AsFieldErrors(err); ok {
		utils.ValidationErrorResponse(c, fe)
		return
	}
	message := services.FailureMessage(lang, err, fallbackKey)
	utils.BackendErrorResponse(c, err, message)
}
