// internal/services/listing_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
)

func newListingService(t *testing.T) (*ListingService, *state.Container) {
	t.Helper()
	container := newTestContainer(t, []models.Listing{stayFixture("existing", "owner_2", models.StatusApproved)}, fixtureUsers())
	return NewListingService(container), container
}

func TestCreateStayListing(t *testing.T) {
	svc, container := newListingService(t)
	owner, err := container.UserByID("owner_1")
	require.NoError(t, err)

	created, err := svc.Create(owner, &CreateListingRequest{
		Category:  "stay",
		Type:      "guest_house",
		Title:     "Test House",
		Region:    "Краснодарский край",
		City:      "Сочи",
		Price:     "3000",
		Distance:  "250",
		Guests:    "4",
		Amenities: []string{"Wi-Fi", "Кухня"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "existing", created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "Test House", created.Title)
	assert.Equal(t, "Россия", created.Country)
	assert.Equal(t, "owner_1", created.OwnerID)
	assert.Equal(t, "anna_host", created.OwnerUsername)
	assert.Equal(t, 3000.0, created.PricePerNight)
	require.NotNil(t, created.Stay)
	assert.Equal(t, 250, created.Stay.DistanceToSea)
	assert.Equal(t, 4, created.Stay.MaxGuests)
	assert.Nil(t, created.Moto)
	assert.Equal(t, 0.0, created.Rating)
	assert.Empty(t, created.Reviews)
	assert.NotEmpty(t, created.Images)

	// New listings land at the head of the collection.
	all := container.Listings()
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestCreateDerivesCountryFromRegion(t *testing.T) {
	svc, container := newListingService(t)
	owner, _ := container.UserByID("owner_1")

	abroad, err := svc.Create(owner, &CreateListingRequest{
		Category: "moto",
		Type:     "scooter",
		Title:    "Honda Click",
		Region:   "Таиланд",
		City:     "Пхукет",
		Price:    "700",
		Engine:   "125cc",
	})
	require.NoError(t, err)
	assert.Equal(t, "Зарубежье", abroad.Country)
	require.NotNil(t, abroad.Moto)
	assert.Equal(t, "125cc", abroad.Moto.EngineCapacity)
}

func TestCreateUnparsableNumbersDefaultToZero(t *testing.T) {
	svc, container := newListingService(t)
	owner, _ := container.UserByID("owner_1")

	created, err := svc.Create(owner, &CreateListingRequest{
		Category: "stay",
		Type:     "private_house",
		Title:    "Дом",
		Region:   "Крым",
		City:     "Ялта",
		Price:    "три тысячи",
		Distance: "близко",
		Guests:   "",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.PricePerNight)
	assert.Equal(t, 0, created.Stay.DistanceToSea)
	assert.Equal(t, 0, created.Stay.MaxGuests)
}

func TestCreateRejectsInvalidCategory(t *testing.T) {
	svc, container := newListingService(t)
	owner, _ := container.UserByID("owner_1")

	_, err := svc.Create(owner, &CreateListingRequest{
		Category: "boat",
		Type:     "guest_house",
		Title:    "Лодка",
		Region:   "Крым",
		City:     "Ялта",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateRejectsTypeFromOtherCategory(t *testing.T) {
	svc, container := newListingService(t)
	owner, _ := container.UserByID("owner_1")

	_, err := svc.Create(owner, &CreateListingRequest{
		Category: "sim",
		Type:     "scooter",
		Title:    "SIM",
		Region:   "Таиланд",
		City:     "Пхукет",
	})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestCreateSimAndExchangeDetails(t *testing.T) {
	svc, container := newListingService(t)
	owner, _ := container.UserByID("owner_2")

	sim, err := svc.Create(owner, &CreateListingRequest{
		Category:   "sim",
		Type:       "prepaid",
		Title:      "Tourist SIM",
		Region:     "Таиланд",
		City:       "Самуи",
		DataVolume: "50GB",
		Validity:   "15 days",
	})
	require.NoError(t, err)
	require.NotNil(t, sim.Sim)
	assert.Equal(t, "50GB", sim.Sim.DataVolume)
	assert.Equal(t, "15 days", sim.Sim.ValidityPeriod)

	exchange, err := svc.Create(owner, &CreateListingRequest{
		Category: "exchange",
		Type:     "cash",
		Title:    "Обмен валюты",
		Region:   "Таиланд",
		City:     "Паттайя",
		Rates:    "RUB -> THB (0.38)",
		Hours:    "09:00 - 21:00",
	})
	require.NoError(t, err)
	require.NotNil(t, exchange.Exchange)
	assert.Equal(t, "RUB -> THB (0.38)", exchange.Exchange.ExchangeRates)
	assert.Equal(t, "09:00 - 21:00", exchange.Exchange.WorkingHours)
}

func TestUpdateKeepsDetailsInvariant(t *testing.T) {
	svc, container := newListingService(t)

	listing, err := container.ListingByID("existing")
	require.NoError(t, err)

	listing.Moto = &models.MotoDetails{EngineCapacity: "50cc"}
	_, err = svc.Update(listing)
	assert.ErrorIs(t, err, models.ErrDetailsMismatch)

	listing.Moto = nil
	listing.Title = "Обновленный дом"
	updated, err := svc.Update(listing)
	require.NoError(t, err)
	assert.Equal(t, "Обновленный дом", updated.Title)

	stored, err := container.ListingByID("existing")
	require.NoError(t, err)
	assert.Equal(t, "Обновленный дом", stored.Title)
}

func TestUpdateRecomputesRating(t *testing.T) {
	svc, container := newListingService(t)

	listing, err := container.ListingByID("existing")
	require.NoError(t, err)

	listing.Reviews = []models.Review{{ID: "r1", Rating: 5}, {ID: "r2", Rating: 4}, {ID: "r3", Rating: 4}}
	listing.Rating = 1.0 // stale value, must be recomputed
	updated, err := svc.Update(listing)
	require.NoError(t, err)
	assert.Equal(t, 4.3, updated.Rating)
}

func TestDeleteListing(t *testing.T) {
	svc, container := newListingService(t)

	require.NoError(t, svc.Delete("existing"))
	_, err := container.ListingByID("existing")
	assert.True(t, IsNotFound(err))

	err = svc.Delete("existing")
	assert.True(t, IsNotFound(err))
}
