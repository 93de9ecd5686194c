// internal/services/review_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
)

var ErrReviewNotApproved = errors.New("reviews are only permitted on approved listings")

type AddReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text"`
}

type ReviewService struct {
	container *state.Container
}

func NewReviewService(container *state.Container) *ReviewService {
	return &ReviewService{container: container}
}

// AddReview prepends a review (newest first) and recomputes the listing
// rating as the mean rounded to one decimal. Only approved listings accept
// reviews; the guard lives here, not at the call sites. A user may review
// the same listing more than once.
func (s *ReviewService) AddReview(listingID string, author models.User, req *AddReviewRequest) (models.Listing, error) {
	review := models.Review{
		ID:       uuid.NewString(),
		Username: author.Username,
		Rating:   req.Rating,
		Text:     req.Text,
		Date:     time.Now(),
	}

	return s.container.MutateListing(listingID, func(l *models.Listing) error {
		if l.Status != models.StatusApproved {
			return ErrReviewNotApproved
		}
		l.Reviews = append([]models.Review{review}, l.Reviews...)
		l.RecalculateRating()
		return nil
	})
}
