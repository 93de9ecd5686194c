// internal/services/listing_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/seed"
	"github.com/seahome/seahome-backend/internal/state"
)

var (
	ErrInvalidCategory = errors.New("unknown listing category")
	ErrInvalidType     = errors.New("type is not valid for the chosen category")
)

// CreateListingRequest carries the wizard fields. Numeric fields arrive as
// strings and default to 0 when unparsable instead of rejecting.
type CreateListingRequest struct {
	Category    string   `json:"category" validate:"required,listing_category"`
	Type        string   `json:"type" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Region      string   `json:"region" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Address     string   `json:"address"`
	Price       string   `json:"price"`
	Distance    string   `json:"distance"`
	Engine      string   `json:"engine"`
	DataVolume  string   `json:"data_volume"`
	Validity    string   `json:"validity"`
	Rates       string   `json:"rates"`
	Hours       string   `json:"hours"`
	Guests      string   `json:"guests"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type ListingService struct {
	container *state.Container
}

func NewListingService(container *state.Container) *ListingService {
	return &ListingService{container: container}
}

// Create builds a pending listing from the wizard fields, copying the owner
// identity from the acting user.
func (s *ListingService) Create(owner models.User, req *CreateListingRequest) (models.Listing, error) {
	category := models.ListingCategory(req.Category)
	if !category.Valid() {
		return models.Listing{}, ErrInvalidCategory
	}

	listingType := models.ListingType(req.Type)
	if !listingType.ValidFor(category) {
		return models.Listing{}, fmt.Errorf("%w: %s under %s", ErrInvalidType, req.Type, req.Category)
	}

	country := "Зарубежье"
	if seed.IsDomesticRegion(req.Region) {
		country = "Россия"
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{"https://picsum.photos/seed/" + uuid.NewString() + "/800/600"}
	}

	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	listing := models.Listing{
		ID:            uuid.NewString(),
		Category:      category,
		Type:          listingType,
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Country:       country,
		Region:        req.Region,
		City:          strings.TrimSpace(req.City),
		Address:       req.Address,
		PricePerNight: parseFloatOrZero(req.Price),
		Amenities:     amenities,
		Images:        images,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		Rating:        0,
		Reviews:       []models.Review{},
	}

	switch category {
	case models.CategoryStay:
		listing.Stay = &models.StayDetails{
			DistanceToSea: parseIntOrZero(req.Distance),
			MaxGuests:     parseIntOrZero(req.Guests),
		}
	case models.CategoryMoto:
		listing.Moto = &models.MotoDetails{EngineCapacity: req.Engine}
	case models.CategorySim:
		listing.Sim = &models.SimDetails{
			DataVolume:     req.DataVolume,
			ValidityPeriod: req.Validity,
		}
	case models.CategoryExchange:
		listing.Exchange = &models.ExchangeDetails{
			ExchangeRates: req.Rates,
			WorkingHours:  req.Hours,
		}
	}

	if err := s.container.AddListing(listing); err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

// Update is the admin edit path: it may reset any field, including status,
// as long as the details variant still matches the category.
func (s *ListingService) Update(listing models.Listing) (models.Listing, error) {
	if err := listing.CheckDetails(); err != nil {
		return models.Listing{}, err
	}
	listing.RecalculateRating()
	if err := s.container.UpdateListing(listing); err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

func (s *ListingService) Delete(id string) error {
	return s.container.DeleteListing(id)
}

func (s *ListingService) Get(id string) (models.Listing, error) {
	return s.container.ListingByID(id)
}

// IsNotFound reports whether err is the missing-listing condition, which the
// HTTP layer renders as a terminal not-found view.
func IsNotFound(err error) bool {
	return errors.Is(err, state.ErrListingNotFound) || errors.Is(err, state.ErrUserNotFound)
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
