// internal/handlers/admin.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/seahome/seahome-backend/internal/i18n"
	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/services"
	"github.com/seahome/seahome-backend/internal/utils"
)

type AdminHandler struct {
	moderationService *services.ModerationService
	listingService    *services.ListingService
}

func NewAdminHandler(moderationService *services.ModerationService, listingService *services.ListingService) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		listingService:    listingService,
	}
}

// GET /admin/listings
func (h *AdminHandler) GetListings(c *gin.Context) {
	status := models.ModerationStatus(c.Query("status"))
	listings := h.moderationService.ListByStatus(status)

	utils.SuccessResponseWithMeta(c, gin.H{"listings": listings}, gin.H{
		"total": len(listings),
	})
}

// GET /admin/queue
func (h *AdminHandler) GetQueue(c *gin.Context) {
	queue := h.moderationService.Queue()
	utils.SuccessResponseWithMeta(c, gin.H{"listings": queue}, gin.H{
		"total": len(queue),
	})
}

// POST /admin/listings/:id/approve
func (h *AdminHandler) ApproveListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	listing, err := h.moderationService.Approve(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotPending) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyListingNotPending))
			return
		}
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "listing")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyListingApproved),
		"listing": listing,
	})
}

type rejectListingRequest struct {
	Reason string `json:"reason"`
}

// POST /admin/listings/:id/reject
func (h *AdminHandler) RejectListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req rejectListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	listing, err := h.moderationService.Reject(c.Param("id"), req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrReasonRequired) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyListingReasonRequired), nil)
			return
		}
		if errors.Is(err, services.ErrNotPending) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyListingNotPending))
			return
		}
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "listing")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyListingRejected),
		"listing": listing,
	})
}

// PUT /admin/listings/:id
func (h *AdminHandler) UpdateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	listing.ID = c.Param("id")

	updated, err := h.listingService.Update(listing)
	if err != nil {
		if errors.Is(err, models.ErrDetailsMismatch) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "listing")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyListingUpdated),
		"listing": updated,
	})
}

// DELETE /admin/listings/:id
func (h *AdminHandler) DeleteListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.listingService.Delete(c.Param("id")); err != nil {
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "listing")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyListingDeleted),
	})
}

// GET /admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users := h.moderationService.Users()
	utils.SuccessResponseWithMeta(c, gin.H{"users": users}, gin.H{
		"total": len(users),
	})
}

// POST /admin/users/:id/ban
func (h *AdminHandler) ToggleBan(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	user, err := h.moderationService.ToggleBan(c.Param("id"))
	if err != nil {
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserUpdated),
		"user":    user,
	})
}

// POST /admin/reset
func (h *AdminHandler) ResetToSeed(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.moderationService.ResetToSeed(); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStateReset),
	})
}
