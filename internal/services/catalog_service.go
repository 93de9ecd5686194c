// internal/services/catalog_service.go
package services

import (
	"errors"
	"strings"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/seed"
	"github.com/seahome/seahome-backend/internal/state"
)

var ErrRegionNotFound = errors.New("region not found")

// Viewer identifies who is asking. Visibility is enforced inside the engine:
// anyone who is not an admin and not the owner of record sees approved
// listings only, no matter what other filters they pass.
type Viewer struct {
	UserID string
	Role   models.UserRole
}

type CatalogFilter struct {
	Category    models.ListingCategory
	Type        models.ListingType
	Region      string
	City        string
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	MaxDistance *int
}

type RegionInfo struct {
	Name   string   `json:"name"`
	Tag    string   `json:"tag"`
	Cities []string `json:"cities"`
}

type CityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CatalogService struct {
	container *state.Container
}

func NewCatalogService(container *state.Container) *CatalogService {
	return &CatalogService{container: container}
}

// Search filters the collection with all predicates ANDed. An absent filter
// value makes its predicate vacuously true. Result order is input order,
// which is reverse-chronological because creation prepends.
func (s *CatalogService) Search(viewer Viewer, filter CatalogFilter) []models.Listing {
	result := make([]models.Listing, 0)
	for _, l := range s.container.Listings() {
		if !visibleTo(viewer, l) {
			continue
		}
		if matches(l, filter) {
			result = append(result, l)
		}
	}
	return result
}

// GetListing returns a single listing if the viewer may see it.
func (s *CatalogService) GetListing(viewer Viewer, id string) (models.Listing, error) {
	l, err := s.container.ListingByID(id)
	if err != nil {
		return models.Listing{}, err
	}
	if !visibleTo(viewer, l) {
		return models.Listing{}, state.ErrListingNotFound
	}
	return l, nil
}

// OwnerListings returns the acting owner's listings in any status.
func (s *CatalogService) OwnerListings(ownerID string) []models.Listing {
	result := make([]models.Listing, 0)
	for _, l := range s.container.Listings() {
		if l.OwnerID == ownerID {
			result = append(result, l)
		}
	}
	return result
}

// OwnerListingCount backs the "objects by this host" counter on the detail
// view. Only listings the viewer could see are counted.
func (s *CatalogService) OwnerListingCount(viewer Viewer, ownerID string) int {
	count := 0
	for _, l := range s.container.Listings() {
		if l.OwnerID == ownerID && visibleTo(viewer, l) {
			count++
		}
	}
	return count
}

// Regions returns the region directory. For moto, sim and exchange the
// domestic regions are excluded; this is a display-time constraint only.
func (s *CatalogService) Regions(category models.ListingCategory) []RegionInfo {
	result := make([]RegionInfo, 0, len(seed.Regions))
	for _, name := range seed.Regions {
		if category != "" && category != models.CategoryStay && seed.IsDomesticRegion(name) {
			continue
		}
		result = append(result, RegionInfo{
			Name:   name,
			Tag:    seed.RegionTags[name],
			Cities: seed.CitiesByRegion[name],
		})
	}
	return result
}

// CityCounts computes listings-per-city for a region with the same predicate
// model as Search.
func (s *CatalogService) CityCounts(viewer Viewer, region string) ([]CityCount, error) {
	cities, ok := seed.CitiesByRegion[region]
	if !ok {
		return nil, ErrRegionNotFound
	}

	result := make([]CityCount, 0, len(cities))
	for _, city := range cities {
		filter := CatalogFilter{Region: region, City: city}
		result = append(result, CityCount{
			Name:  city,
			Count: len(s.Search(viewer, filter)),
		})
	}
	return result, nil
}

// CategoryCounts computes listings-per-category over an optional region/city
// scope.
func (s *CatalogService) CategoryCounts(viewer Viewer, region, city string) map[models.ListingCategory]int {
	counts := make(map[models.ListingCategory]int)
	for _, c := range []models.ListingCategory{models.CategoryStay, models.CategoryMoto, models.CategorySim, models.CategoryExchange} {
		filter := CatalogFilter{Category: c, Region: region, City: city}
		counts[c] = len(s.Search(viewer, filter))
	}
	return counts
}

func visibleTo(viewer Viewer, l models.Listing) bool {
	if l.Status == models.StatusApproved {
		return true
	}
	if viewer.Role == models.RoleAdmin {
		return true
	}
	return viewer.UserID != "" && viewer.UserID == l.OwnerID
}

func matches(l models.Listing, f CatalogFilter) bool {
	if f.Category != "" && l.Category != f.Category {
		return false
	}
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.Region != "" && l.Region != f.Region {
		return false
	}
	if f.City != "" && l.City != f.City {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.Title), needle) &&
			!strings.Contains(strings.ToLower(l.City), needle) {
			return false
		}
	}
	if f.MinPrice != nil && l.PricePerNight < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.PricePerNight > *f.MaxPrice {
		return false
	}
	if f.MaxDistance != nil {
		// Distance is a stay-only attribute; anything else fails the bound.
		if l.Stay == nil || l.Stay.DistanceToSea > *f.MaxDistance {
			return false
		}
	}
	return true
}
