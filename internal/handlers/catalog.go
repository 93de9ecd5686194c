// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/services"
	"github.com/seahome/seahome-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// viewerFromContext builds the query engine viewer from whatever session the
// request carries. Anonymous requests get the empty (guest) viewer.
func viewerFromContext(c *gin.Context) services.Viewer {
	viewer := services.Viewer{Role: models.RoleGuest}
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		viewer.UserID = userID
	}
	if role, ok := utils.GetUserRoleFromContext(c); ok {
		viewer.Role = models.UserRole(role)
	}
	return viewer
}

// GET /regions
func (h *CatalogHandler) GetRegions(c *gin.Context) {
	category := models.ListingCategory(c.Query("category"))
	utils.SuccessResponse(c, gin.H{
		"regions": h.catalogService.Regions(category),
	})
}

// GET /regions/:region/cities
func (h *CatalogHandler) GetCities(c *gin.Context) {
	region := c.Param("region")

	cities, err := h.catalogService.CityCounts(viewerFromContext(c), region)
	if err != nil {
		utils.NotFoundResponse(c, "region")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"region": region,
		"cities": cities,
	})
}

// GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	filter := services.CatalogFilter{
		Category: models.ListingCategory(c.Query("category")),
		Type:     models.ListingType(c.Query("type")),
		Region:   c.Query("region"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			filter.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}
	if maxDistanceStr := c.Query("max_distance"); maxDistanceStr != "" {
		if maxDistance, err := strconv.Atoi(maxDistanceStr); err == nil {
			filter.MaxDistance = &maxDistance
		}
	}

	listings := h.catalogService.Search(viewerFromContext(c), filter)

	utils.SuccessResponseWithMeta(c, gin.H{"listings": listings}, gin.H{
		"total": len(listings),
	})
}

// GET /catalog/counts
func (h *CatalogHandler) GetCategoryCounts(c *gin.Context) {
	counts := h.catalogService.CategoryCounts(viewerFromContext(c), c.Query("region"), c.Query("city"))
	utils.SuccessResponse(c, gin.H{"counts": counts})
}

// GET /listings/:id
func (h *CatalogHandler) GetListing(c *gin.Context) {
	viewer := viewerFromContext(c)

	listing, err := h.catalogService.GetListing(viewer, c.Param("id"))
	if err != nil {
		// Deep links to deleted or unknown listings land here.
		utils.NotFoundResponse(c, "listing")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing":             listing,
		"owner_listing_count": h.catalogService.OwnerListingCount(viewer, listing.OwnerID),
	})
}

// GET /dashboard
func (h *CatalogHandler) GetDashboard(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	listings := h.catalogService.OwnerListings(userID)
	utils.SuccessResponseWithMeta(c, gin.H{"listings": listings}, gin.H{
		"total": len(listings),
	})
}
