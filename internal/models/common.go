// internal/models/common.go
package models

// Enums

type ListingCategory string

const (
	CategoryStay     ListingCategory = "stay"
	CategoryMoto     ListingCategory = "moto"
	CategorySim      ListingCategory = "sim"
	CategoryExchange ListingCategory = "exchange"
)

func (c ListingCategory) Valid() bool {
	switch c {
	case CategoryStay, CategoryMoto, CategorySim, CategoryExchange:
		return true
	}
	return false
}

type ListingType string

const (
	TypeGuestHouse   ListingType = "guest_house"
	TypePrivateHouse ListingType = "private_house"
	TypeMiniHotel    ListingType = "mini_hotel"
	TypeScooter      ListingType = "scooter"
	TypeTouring      ListingType = "touring"
	TypeClassic      ListingType = "classic"
	TypePrepaid      ListingType = "prepaid"
	TypeDataOnly     ListingType = "data_only"
	TypeESim         ListingType = "esim"
	TypeCash         ListingType = "cash"
	TypeCrypto       ListingType = "crypto"
	TypeBankTransfer ListingType = "bank_transfer"
)

// TypesForCategory returns the legal type subset for a category. Choosing a
// category first fixes this subset in the authoring flow.
func TypesForCategory(c ListingCategory) []ListingType {
	switch c {
	case CategoryStay:
		return []ListingType{TypeGuestHouse, TypePrivateHouse, TypeMiniHotel}
	case CategoryMoto:
		return []ListingType{TypeScooter, TypeTouring, TypeClassic}
	case CategorySim:
		return []ListingType{TypePrepaid, TypeDataOnly, TypeESim}
	case CategoryExchange:
		return []ListingType{TypeCash, TypeCrypto, TypeBankTransfer}
	}
	return nil
}

func (t ListingType) ValidFor(c ListingCategory) bool {
	for _, lt := range TypesForCategory(c) {
		if lt == t {
			return true
		}
	}
	return false
}

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
	// StatusExpired is reserved; no transition assigns it.
	StatusExpired ModerationStatus = "expired"
)

type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleOwner, RoleAdmin:
		return true
	}
	return false
}
