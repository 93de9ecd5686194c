// internal/handlers/listing.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/seahome/seahome-backend/internal/i18n"
	"github.com/seahome/seahome-backend/internal/services"
	"github.com/seahome/seahome-backend/internal/state"
	"github.com/seahome/seahome-backend/internal/utils"
)

type ListingHandler struct {
	listingService     *services.ListingService
	reviewService      *services.ReviewService
	descriptionService *services.DescriptionService
	container          *state.Container
}

func NewListingHandler(listingService *services.ListingService, reviewService *services.ReviewService, descriptionService *services.DescriptionService, container *state.Container) *ListingHandler {
	return &ListingHandler{
		listingService:     listingService,
		reviewService:      reviewService,
		descriptionService: descriptionService,
		container:          container,
	}
}

// POST /listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	owner, err := h.container.UserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Title and city gating happens per wizard step in the client; the same
	// rules are the submission gate here.
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	listing, err := h.listingService.Create(owner, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyListingCreated),
		"listing": listing,
	})
}

// POST /listings/:id/reviews
func (h *ListingHandler) AddReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	author, err := h.container.UserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	listing, err := h.reviewService.AddReview(c.Param("id"), author, &req)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotApproved) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyReviewNotApproved))
			return
		}
		if services.IsNotFound(err) {
			utils.NotFoundResponse(c, "listing")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewAdded),
		"listing": listing,
	})
}

// POST /describe
func (h *ListingHandler) GenerateDescription(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result := h.descriptionService.Generate(c.Request.Context(), &req)
	utils.SuccessResponse(c, gin.H{"description": result})
}
