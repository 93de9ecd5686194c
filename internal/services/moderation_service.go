// internal/services/moderation_service.go
package services

import (
	"errors"
	"strings"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
)

var (
	ErrNotPending     = errors.New("listing is not pending moderation")
	ErrReasonRequired = errors.New("rejection reason is required")
)

// ModerationService drives the listing lifecycle. The only defined
// transitions are pending to approved and pending to rejected; nothing ever
// assigns the reserved expired status, and nothing returns a listing to
// pending automatically.
type ModerationService struct {
	container *state.Container
}

func NewModerationService(container *state.Container) *ModerationService {
	return &ModerationService{container: container}
}

// Approve moves a pending listing to approved and clears any stale rejection
// reason left from an earlier admin edit.
func (s *ModerationService) Approve(id string) (models.Listing, error) {
	return s.container.MutateListing(id, func(l *models.Listing) error {
		if l.Status != models.StatusPending {
			return ErrNotPending
		}
		l.Status = models.StatusApproved
		l.RejectionReason = ""
		return nil
	})
}

// Reject moves a pending listing to rejected. An empty reason aborts the
// transition; the listing stays pending and nothing is persisted.
func (s *ModerationService) Reject(id, reason string) (models.Listing, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Listing{}, ErrReasonRequired
	}
	return s.container.MutateListing(id, func(l *models.Listing) error {
		if l.Status != models.StatusPending {
			return ErrNotPending
		}
		l.Status = models.StatusRejected
		l.RejectionReason = reason
		return nil
	})
}

// Queue returns the moderation queue: pending listings, newest first.
func (s *ModerationService) Queue() []models.Listing {
	return s.ListByStatus(models.StatusPending)
}

// ListByStatus returns the full catalog for the admin editor, optionally
// narrowed by status.
func (s *ModerationService) ListByStatus(status models.ModerationStatus) []models.Listing {
	result := make([]models.Listing, 0)
	for _, l := range s.container.Listings() {
		if status == "" || l.Status == status {
			result = append(result, l)
		}
	}
	return result
}

// ToggleBan flips the ban flag on a user. Toggling twice restores the
// original state. The banned user's listings are left untouched.
func (s *ModerationService) ToggleBan(userID string) (models.User, error) {
	return s.container.MutateUser(userID, func(u *models.User) error {
		u.IsBanned = !u.IsBanned
		return nil
	})
}

func (s *ModerationService) Users() []models.User {
	return s.container.Users()
}

// ResetToSeed discards all state and restores the demo data.
func (s *ModerationService) ResetToSeed() error {
	return s.container.ResetToSeed()
}
