// internal/services/setup_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seahome/seahome-backend/internal/config"
	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
	"github.com/seahome/seahome-backend/internal/storage"
)

var serviceTestCfg = config.StoreConfig{
	ListingsKey: "listings_test",
	UsersKey:    "users_test",
}

// newTestContainer bootstraps a container around an in-memory store with a
// fixed dataset, bypassing the demo seed.
func newTestContainer(t *testing.T, listings []models.Listing, users []models.User) *state.Container {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(serviceTestCfg.ListingsKey, listings))
	require.NoError(t, store.Save(serviceTestCfg.UsersKey, users))

	c, err := state.New(store, serviceTestCfg)
	require.NoError(t, err)
	return c
}

func fixtureUsers() []models.User {
	return []models.User{
		{ID: "guest_1", Username: "traveler", Role: models.RoleGuest},
		{ID: "owner_1", Username: "anna_host", Role: models.RoleOwner},
		{ID: "owner_2", Username: "timur_host", Role: models.RoleOwner},
		{ID: "admin_1", Username: "moderator", Role: models.RoleAdmin},
	}
}

func stayFixture(id, owner string, status models.ModerationStatus) models.Listing {
	return models.Listing{
		ID:            id,
		Category:      models.CategoryStay,
		Type:          models.TypeGuestHouse,
		OwnerID:       owner,
		OwnerUsername: owner,
		Title:         "Гостевой дом " + id,
		Country:       "Россия",
		Region:        "Краснодарский край",
		City:          "Сочи",
		PricePerNight: 3000,
		Stay:          &models.StayDetails{DistanceToSea: 300, MaxGuests: 4},
		Amenities:     []string{"Wi-Fi"},
		Images:        []string{"https://example.com/stay.jpg"},
		Status:        status,
		CreatedAt:     time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC),
		Reviews:       []models.Review{},
	}
}

func motoFixture(id, owner string, status models.ModerationStatus) models.Listing {
	return models.Listing{
		ID:            id,
		Category:      models.CategoryMoto,
		Type:          models.TypeScooter,
		OwnerID:       owner,
		OwnerUsername: owner,
		Title:         "Скутер " + id,
		Country:       "Зарубежье",
		Region:        "Таиланд",
		City:          "Пхукет",
		PricePerNight: 700,
		Moto:          &models.MotoDetails{EngineCapacity: "125cc"},
		Amenities:     []string{},
		Images:        []string{},
		Status:        status,
		CreatedAt:     time.Date(2025, 7, 11, 12, 0, 0, 0, time.UTC),
		Reviews:       []models.Review{},
	}
}
