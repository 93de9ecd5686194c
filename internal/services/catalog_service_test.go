// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
)

func catalogFixtures() []models.Listing {
	approved := stayFixture("stay_ok", "owner_1", models.StatusApproved)
	pending := stayFixture("stay_pending", "owner_1", models.StatusPending)
	rejected := stayFixture("stay_rejected", "owner_2", models.StatusRejected)
	moto := motoFixture("moto_ok", "owner_2", models.StatusApproved)

	far := stayFixture("stay_far", "owner_2", models.StatusApproved)
	far.Title = "Вилла в горах"
	far.Region = "Крым"
	far.City = "Ялта"
	far.PricePerNight = 8000
	far.Stay = &models.StayDetails{DistanceToSea: 1200, MaxGuests: 6}

	return []models.Listing{approved, pending, rejected, moto, far}
}

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(newTestContainer(t, catalogFixtures(), fixtureUsers()))
}

func listingIDs(listings []models.Listing) []string {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestSearchGuestSeesOnlyApproved(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Search(Viewer{UserID: "guest_1", Role: models.RoleGuest}, CatalogFilter{})
	assert.ElementsMatch(t, []string{"stay_ok", "moto_ok", "stay_far"}, listingIDs(got))
}

func TestSearchAnonymousSeesOnlyApproved(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Search(Viewer{}, CatalogFilter{})
	assert.ElementsMatch(t, []string{"stay_ok", "moto_ok", "stay_far"}, listingIDs(got))
}

func TestSearchOwnerSeesOwnPendingToo(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Search(Viewer{UserID: "owner_1", Role: models.RoleOwner}, CatalogFilter{})
	assert.ElementsMatch(t, []string{"stay_ok", "stay_pending", "moto_ok", "stay_far"}, listingIDs(got))
}

func TestSearchAdminSeesEverything(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Search(Viewer{UserID: "admin_1", Role: models.RoleAdmin}, CatalogFilter{})
	assert.Len(t, got, 5)
}

func TestSearchFilterCombinations(t *testing.T) {
	svc := newCatalogService(t)
	guest := Viewer{UserID: "guest_1", Role: models.RoleGuest}

	minPrice := 5000.0
	maxPrice := 5000.0
	maxDistance := 500

	tests := []struct {
		name   string
		filter CatalogFilter
		want   []string
	}{
		{"by category", CatalogFilter{Category: models.CategoryMoto}, []string{"moto_ok"}},
		{"by type", CatalogFilter{Type: models.TypeGuestHouse}, []string{"stay_ok"}},
		{"by region", CatalogFilter{Region: "Крым"}, []string{"stay_far"}},
		{"by city", CatalogFilter{City: "Сочи"}, []string{"stay_ok"}},
		{"search is case-insensitive", CatalogFilter{Search: "вИлЛа"}, []string{"stay_far"}},
		{"search matches city", CatalogFilter{Search: "пхукет"}, []string{"moto_ok"}},
		{"min price", CatalogFilter{MinPrice: &minPrice}, []string{"stay_far"}},
		{"max price", CatalogFilter{MaxPrice: &maxPrice}, []string{"stay_ok", "moto_ok"}},
		{"max distance excludes non-stay", CatalogFilter{MaxDistance: &maxDistance}, []string{"stay_ok"}},
		{"category and region combined", CatalogFilter{Category: models.CategoryStay, Region: "Краснодарский край"}, []string{"stay_ok"}},
		{"no match", CatalogFilter{Category: models.CategorySim}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(guest, tt.filter)
			assert.ElementsMatch(t, tt.want, listingIDs(got))
		})
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	svc := newCatalogService(t)
	guest := Viewer{UserID: "guest_1", Role: models.RoleGuest}
	filter := CatalogFilter{Category: models.CategoryStay, City: "Сочи"}

	first := svc.Search(guest, filter)
	second := svc.Search(guest, filter)
	assert.Equal(t, first, second)
}

func TestGetListingHidesInvisible(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetListing(Viewer{UserID: "guest_1", Role: models.RoleGuest}, "stay_pending")
	assert.ErrorIs(t, err, state.ErrListingNotFound)

	got, err := svc.GetListing(Viewer{UserID: "owner_1", Role: models.RoleOwner}, "stay_pending")
	require.NoError(t, err)
	assert.Equal(t, "stay_pending", got.ID)

	got, err = svc.GetListing(Viewer{UserID: "admin_1", Role: models.RoleAdmin}, "stay_rejected")
	require.NoError(t, err)
	assert.Equal(t, "stay_rejected", got.ID)
}

func TestGetListingUnknownID(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetListing(Viewer{Role: models.RoleAdmin}, "ghost")
	assert.ErrorIs(t, err, state.ErrListingNotFound)
}

func TestOwnerListingsIncludeAllStatuses(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.OwnerListings("owner_1")
	assert.ElementsMatch(t, []string{"stay_ok", "stay_pending"}, listingIDs(got))
}

func TestOwnerListingCountRespectsViewer(t *testing.T) {
	svc := newCatalogService(t)

	assert.Equal(t, 1, svc.OwnerListingCount(Viewer{UserID: "guest_1", Role: models.RoleGuest}, "owner_1"))
	assert.Equal(t, 2, svc.OwnerListingCount(Viewer{UserID: "owner_1", Role: models.RoleOwner}, "owner_1"))
	assert.Equal(t, 2, svc.OwnerListingCount(Viewer{UserID: "admin_1", Role: models.RoleAdmin}, "owner_1"))
}

func TestRegionsExcludeDomesticOutsideStays(t *testing.T) {
	svc := newCatalogService(t)

	all := svc.Regions(models.CategoryStay)
	abroadOnly := svc.Regions(models.CategoryMoto)
	assert.Greater(t, len(all), len(abroadOnly))

	for _, r := range abroadOnly {
		assert.NotContains(t, []string{"Крым", "Краснодарский край", "Кавказские Минеральные Воды"}, r.Name)
	}

	// Region entries carry their marketing tag and city directory.
	for _, r := range all {
		if r.Name == "Таиланд" {
			assert.Equal(t, "Острова и Будда", r.Tag)
			assert.Contains(t, r.Cities, "Пхукет")
		}
	}
}

func TestCityCounts(t *testing.T) {
	svc := newCatalogService(t)
	guest := Viewer{UserID: "guest_1", Role: models.RoleGuest}

	counts, err := svc.CityCounts(guest, "Краснодарский край")
	require.NoError(t, err)

	byCity := make(map[string]int)
	for _, c := range counts {
		byCity[c.Name] = c.Count
	}
	assert.Equal(t, 1, byCity["Сочи"])
	assert.Equal(t, 0, byCity["Анапа"])
}

func TestCityCountsUnknownRegion(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.CityCounts(Viewer{}, "Атлантида")
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestCategoryCounts(t *testing.T) {
	svc := newCatalogService(t)
	guest := Viewer{UserID: "guest_1", Role: models.RoleGuest}

	counts := svc.CategoryCounts(guest, "", "")
	assert.Equal(t, 2, counts[models.CategoryStay])
	assert.Equal(t, 1, counts[models.CategoryMoto])
	assert.Equal(t, 0, counts[models.CategorySim])

	scoped := svc.CategoryCounts(guest, "Крым", "")
	assert.Equal(t, 1, scoped[models.CategoryStay])
	assert.Equal(t, 0, scoped[models.CategoryMoto])
}
