// internal/models/listing.go
package models

import (
	"errors"
	"math"
	"time"
)

// Category-specific variants. Exactly one of these is set on a listing and it
// must match the listing category, so a stay-only field can never appear on a
// moto listing.

type StayDetails struct {
	DistanceToSea int `json:"distance_to_sea"`
	MaxGuests     int `json:"max_guests"`
}

type MotoDetails struct {
	EngineCapacity string `json:"engine_capacity"`
}

type SimDetails struct {
	DataVolume     string `json:"data_volume"`
	ValidityPeriod string `json:"validity_period"`
}

type ExchangeDetails struct {
	ExchangeRates string `json:"exchange_rates"`
	WorkingHours  string `json:"working_hours"`
}

type Listing struct {
	ID              string           `json:"id"`
	Category        ListingCategory  `json:"category"`
	Type            ListingType      `json:"type"`
	OwnerID         string           `json:"owner_id"`
	OwnerUsername   string           `json:"owner_username"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Country         string           `json:"country"`
	Region          string           `json:"region"`
	City            string           `json:"city"`
	Address         string           `json:"address"`
	PricePerNight   float64          `json:"price_per_night"`
	Stay            *StayDetails     `json:"stay,omitempty"`
	Moto            *MotoDetails     `json:"moto,omitempty"`
	Sim             *SimDetails      `json:"sim,omitempty"`
	Exchange        *ExchangeDetails `json:"exchange,omitempty"`
	Amenities       []string         `json:"amenities"`
	Images          []string         `json:"images"`
	Status          ModerationStatus `json:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	IsVerified      bool             `json:"is_verified"`
	IsFeatured      bool             `json:"is_featured"`
	Rating          float64          `json:"rating"`
	Reviews         []Review         `json:"reviews"`
}

var ErrDetailsMismatch = errors.New("listing details do not match category")

// CheckDetails verifies the tagged-union invariant: the details variant for
// the listing category is present and no other variant is.
func (l *Listing) CheckDetails() error {
	set := 0
	ok := false
	if l.Stay != nil {
		set++
		ok = ok || l.Category == CategoryStay
	}
	if l.Moto != nil {
		set++
		ok = ok || l.Category == CategoryMoto
	}
	if l.Sim != nil {
		set++
		ok = ok || l.Category == CategorySim
	}
	if l.Exchange != nil {
		set++
		ok = ok || l.Category == CategoryExchange
	}
	if set != 1 || !ok {
		return ErrDetailsMismatch
	}
	return nil
}

// RecalculateRating sets Rating to the mean of review ratings rounded to one
// decimal place, 0 when there are no reviews.
func (l *Listing) RecalculateRating() {
	if len(l.Reviews) == 0 {
		l.Rating = 0
		return
	}
	sum := 0
	for _, r := range l.Reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(l.Reviews))
	l.Rating = math.Round(mean*10) / 10
}

// Clone returns a deep copy so read paths never alias the container's slices.
func (l Listing) Clone() Listing {
	out := l
	if l.Stay != nil {
		v := *l.Stay
		out.Stay = &v
	}
	if l.Moto != nil {
		v := *l.Moto
		out.Moto = &v
	}
	if l.Sim != nil {
		v := *l.Sim
		out.Sim = &v
	}
	if l.Exchange != nil {
		v := *l.Exchange
		out.Exchange = &v
	}
	out.Amenities = append([]string(nil), l.Amenities...)
	out.Images = append([]string(nil), l.Images...)
	out.Reviews = append([]Review(nil), l.Reviews...)
	return out
}
