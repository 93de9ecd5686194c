// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
)

func newReviewService(t *testing.T) (*ReviewService, *state.Container) {
	t.Helper()
	container := newTestContainer(t, []models.Listing{
		stayFixture("approved_1", "owner_1", models.StatusApproved),
		stayFixture("pending_1", "owner_1", models.StatusPending),
	}, fixtureUsers())
	return NewReviewService(container), container
}

func TestAddReviewRecomputesRating(t *testing.T) {
	svc, _ := newReviewService(t)
	guest := models.User{ID: "guest_1", Username: "traveler"}

	first, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 5, Text: "Отлично"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, first.Rating)

	second, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 3, Text: "Нормально"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, second.Rating)
	require.Len(t, second.Reviews, 2)
}

func TestAddReviewRoundsToOneDecimal(t *testing.T) {
	svc, _ := newReviewService(t)
	guest := models.User{ID: "guest_1", Username: "traveler"}

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: rating})
		require.NoError(t, err)
	}

	listing, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 4})
	require.NoError(t, err)
	// (5+4+4+4)/4 = 4.25 rounds to 4.3.
	assert.Equal(t, 4.3, listing.Rating)
}

func TestAddReviewNewestFirst(t *testing.T) {
	svc, container := newReviewService(t)
	guest := models.User{ID: "guest_1", Username: "traveler"}

	_, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 4, Text: "первый"})
	require.NoError(t, err)
	_, err = svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 5, Text: "второй"})
	require.NoError(t, err)

	listing, err := container.ListingByID("approved_1")
	require.NoError(t, err)
	require.Len(t, listing.Reviews, 2)
	assert.Equal(t, "второй", listing.Reviews[0].Text)
	assert.Equal(t, "первый", listing.Reviews[1].Text)
	assert.NotEqual(t, listing.Reviews[0].ID, listing.Reviews[1].ID)
}

func TestAddReviewCarriesAuthorUsername(t *testing.T) {
	svc, _ := newReviewService(t)

	listing, err := svc.AddReview("approved_1", models.User{ID: "guest_1", Username: "traveler"}, &AddReviewRequest{Rating: 5})
	require.NoError(t, err)
	require.Len(t, listing.Reviews, 1)
	assert.Equal(t, "traveler", listing.Reviews[0].Username)
	assert.False(t, listing.Reviews[0].Date.IsZero())
}

func TestAddReviewSameUserTwiceIsAllowed(t *testing.T) {
	svc, _ := newReviewService(t)
	guest := models.User{ID: "guest_1", Username: "traveler"}

	_, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 2, Text: "сначала не понравилось"})
	require.NoError(t, err)
	listing, err := svc.AddReview("approved_1", guest, &AddReviewRequest{Rating: 5, Text: "передумал"})
	require.NoError(t, err)
	assert.Len(t, listing.Reviews, 2)
}

func TestAddReviewRequiresApprovedListing(t *testing.T) {
	svc, container := newReviewService(t)
	guest := models.User{ID: "guest_1", Username: "traveler"}

	_, err := svc.AddReview("pending_1", guest, &AddReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrReviewNotApproved)

	// The refused review leaves the listing untouched.
	listing, err := container.ListingByID("pending_1")
	require.NoError(t, err)
	assert.Empty(t, listing.Reviews)
	assert.Equal(t, 0.0, listing.Rating)
}

func TestAddReviewUnknownListing(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.AddReview("ghost", models.User{ID: "guest_1"}, &AddReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, state.ErrListingNotFound)
}
