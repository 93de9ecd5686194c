// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/seahome/seahome-backend/internal/i18n"
	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/services"
	"github.com/seahome/seahome-backend/internal/state"
	"github.com/seahome/seahome-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	container   *state.Container
}

func NewAuthHandler(authService *services.AuthService, container *state.Container) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		container:   container,
	}
}

type sessionRequest struct {
	Telegram *services.TelegramUser `json:"telegram"`
}

// POST /auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req sessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	session, err := h.authService.BootstrapSession(req.Telegram)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthSessionCreated),
		"session": session,
	})
}

// GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.container.UserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	// Session evaluation is where the blocking ban notice surfaces.
	if user.IsBanned {
		utils.BannedResponse(c)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// POST /auth/role
func (h *AuthHandler) SwitchRole(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req switchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	session, err := h.authService.SwitchRole(userID, models.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, services.ErrAdminUnlockRequired) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAdminAccessDenied))
			return
		}
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"session": session})
}

type unlockAdminRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
}

// POST /auth/admin
func (h *AuthHandler) UnlockAdmin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req unlockAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	session, err := h.authService.UnlockAdmin(userID, req.AccessCode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAccessCode) {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidAccessCode))
			return
		}
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminAccessGranted),
		"session": session,
	})
}
