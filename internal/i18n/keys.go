// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication & session
	KeyAuthRequired          = "auth.required"
	KeyAuthInvalidToken      = "auth.invalid_token"
	KeyAuthTokenExpired      = "auth.token_expired"
	KeyAuthInvalidAccessCode = "auth.invalid_access_code"
	KeyAuthSessionCreated    = "auth.session_created"
	KeyAdminAccessDenied     = "admin.access_denied"
	KeyAdminAccessGranted    = "admin.access_granted"

	// Users
	KeyUserNotFound = "user.not_found"
	KeyUserBanned   = "user.banned"
	KeyUserUpdated  = "user.updated"

	// Listings
	KeyListingCreated        = "listing.created"
	KeyListingUpdated        = "listing.updated"
	KeyListingDeleted        = "listing.deleted"
	KeyListingNotFound       = "listing.not_found"
	KeyListingApproved       = "listing.approved"
	KeyListingRejected       = "listing.rejected"
	KeyListingReasonRequired = "listing.reason_required"
	KeyListingNotPending     = "listing.not_pending"

	// Reviews
	KeyReviewAdded       = "review.added"
	KeyReviewNotApproved = "review.not_approved"

	// Catalog
	KeyRegionNotFound = "region.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Admin state
	KeyStateReset = "state.reset"
)
