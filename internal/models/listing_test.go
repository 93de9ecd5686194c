// internal/models/listing_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypesForCategory(t *testing.T) {
	tests := []struct {
		category ListingCategory
		types    []ListingType
	}{
		{CategoryStay, []ListingType{TypeGuestHouse, TypePrivateHouse, TypeMiniHotel}},
		{CategoryMoto, []ListingType{TypeScooter, TypeTouring, TypeClassic}},
		{CategorySim, []ListingType{TypePrepaid, TypeDataOnly, TypeESim}},
		{CategoryExchange, []ListingType{TypeCash, TypeCrypto, TypeBankTransfer}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.types, TypesForCategory(tt.category))
		for _, lt := range tt.types {
			assert.True(t, lt.ValidFor(tt.category))
		}
	}

	assert.False(t, TypeScooter.ValidFor(CategoryStay))
	assert.False(t, TypeGuestHouse.ValidFor(CategorySim))
	assert.Nil(t, TypesForCategory("boat"))
}

func TestCheckDetails(t *testing.T) {
	stay := Listing{Category: CategoryStay, Stay: &StayDetails{DistanceToSea: 100}}
	assert.NoError(t, stay.CheckDetails())

	missing := Listing{Category: CategoryStay}
	assert.ErrorIs(t, missing.CheckDetails(), ErrDetailsMismatch)

	wrongVariant := Listing{Category: CategoryStay, Moto: &MotoDetails{}}
	assert.ErrorIs(t, wrongVariant.CheckDetails(), ErrDetailsMismatch)

	twoVariants := Listing{Category: CategoryStay, Stay: &StayDetails{}, Sim: &SimDetails{}}
	assert.ErrorIs(t, twoVariants.CheckDetails(), ErrDetailsMismatch)

	exchange := Listing{Category: CategoryExchange, Exchange: &ExchangeDetails{WorkingHours: "10:00 - 20:00"}}
	assert.NoError(t, exchange.CheckDetails())
}

func TestRecalculateRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{5}, 5},
		{"mean of two", []int{5, 3}, 4},
		{"rounds to one decimal", []int{5, 4, 4}, 4.3},
		{"rounds half up", []int{5, 4, 4, 4}, 4.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Listing{}
			for _, r := range tt.ratings {
				l.Reviews = append(l.Reviews, Review{Rating: r})
			}
			l.Rating = 1.2 // stale
			l.RecalculateRating()
			assert.Equal(t, tt.want, l.Rating)
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := Listing{
		ID:        "l1",
		Category:  CategoryStay,
		Stay:      &StayDetails{DistanceToSea: 100, MaxGuests: 2},
		Amenities: []string{"Wi-Fi"},
		Images:    []string{"a.jpg"},
		Reviews:   []Review{{ID: "r1", Rating: 5}},
	}

	clone := original.Clone()
	clone.Stay.MaxGuests = 10
	clone.Amenities[0] = "changed"
	clone.Images[0] = "changed"
	clone.Reviews[0].Rating = 1

	assert.Equal(t, 2, original.Stay.MaxGuests)
	assert.Equal(t, "Wi-Fi", original.Amenities[0])
	assert.Equal(t, "a.jpg", original.Images[0])
	assert.Equal(t, 5, original.Reviews[0].Rating)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, CategoryStay.Valid())
	assert.True(t, CategoryExchange.Valid())
	assert.False(t, ListingCategory("boat").Valid())

	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserRole("superuser").Valid())
}
