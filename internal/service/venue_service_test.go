package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-gin-booking/internal/model"
	repoMocks "go-gin-booking/internal/repository/mocks"
	apperrors "go-gin-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupVenueService() (*VenueServiceImpl, *fakeDB, *repoMocks.VenueRepositoryMock, *repoMocks.ShowRepositoryMock) {
	db := newFakeDB()
	venueRepo := repoMocks.NewVenueRepositoryMock()
	showRepo := repoMocks.NewShowRepositoryMock()
	s := &VenueServiceImpl{db: db, venueRepo: venueRepo, showRepo: showRepo, now: fixedClock}
	return s, db, venueRepo, showRepo
}

func TestVenueService_Areas(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s, _, venueRepo, showRepo := setupVenueService()
		venueRepo.On("List", ctx).Return([]*model.Venue{
			{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
			{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
			{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		}, nil).Once()
		showRepo.On("CountUpcomingByVenue", ctx, testNow).Return(map[int]int{3: 1}, nil).Once()

		areas, err := s.Areas(ctx)

		require.NoError(t, err)
		require.Len(t, areas, 2)
		assert.Len(t, areas[0].Venues, 2)
		assert.Equal(t, 1, areas[0].Venues[1].NumUpcomingShows)
		venueRepo.AssertExpectations(t)
		showRepo.AssertExpectations(t)
	})

	t.Run("Failed - List Error", func(t *testing.T) {
		s, _, venueRepo, _ := setupVenueService()
		venueRepo.On("List", ctx).Return(nil, errors.New("connection refused")).Once()

		_, err := s.Areas(ctx)

		assert.EqualError(t, err, "connection refused")
	})
}

func TestVenueService_Search(t *testing.T) {
	ctx := context.Background()
	s, _, venueRepo, showRepo := setupVenueService()
	venueRepo.On("List", ctx).Return([]*model.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 3, Name: "Park Square Live Music & Coffee"},
	}, nil)
	showRepo.On("CountUpcomingByVenue", ctx, testNow).Return(map[int]int{1: 2}, nil)

	result, err := s.Search(ctx, "hop")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, &model.Summary{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}, result.Data[0])

	result, err = s.Search(ctx, "Music")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestVenueService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s, _, venueRepo, showRepo := setupVenueService()
		venue := &model.Venue{ID: 1, Name: "The Musical Hop"}
		venueRepo.On("FindByID", ctx, 1).Return(venue, nil).Once()
		showRepo.On("ListByVenueID", ctx, 1).Return([]*model.ShowListing{
			{ID: 1, StartTime: testNow.Add(-24 * time.Hour)},
			{ID: 2, StartTime: testNow},
			{ID: 3, StartTime: testNow.Add(24 * time.Hour)},
		}, nil).Once()

		detail, err := s.Detail(ctx, 1)

		require.NoError(t, err)
		assert.Same(t, venue, detail.Venue)
		assert.Equal(t, 1, detail.PastShowsCount)
		assert.Equal(t, 2, detail.UpcomingShowsCount)
		assert.Equal(t, 2, detail.UpcomingShows[0].ID)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		s, _, venueRepo, showRepo := setupVenueService()
		venueRepo.On("FindByID", ctx, 9).Return(nil, apperrors.ErrVenueNotFound).Once()

		_, err := s.Detail(ctx, 9)

		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
		showRepo.AssertNotCalled(t, "ListByVenueID", mock.Anything, mock.Anything)
	})
}

func TestVenueService_Create(t *testing.T) {
	ctx := context.Background()
	venue := &model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"}

	t.Run("Success", func(t *testing.T) {
		s, db, venueRepo, _ := setupVenueService()
		venueRepo.On("Create", ctx, db.tx, venue).Return(&model.Venue{ID: 1, Name: venue.Name}, nil).Once()

		created, err := s.Create(ctx, venue)

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.True(t, db.tx.committed)
		venueRepo.AssertExpectations(t)
	})

	t.Run("Failed - Insert Error Rolls Back", func(t *testing.T) {
		s, db, venueRepo, _ := setupVenueService()
		venueRepo.On("Create", ctx, db.tx, venue).Return(nil, errors.New("duplicate key")).Once()

		_, err := s.Create(ctx, venue)

		var pe *apperrors.PersistenceError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "create venue", pe.Op)
		assert.False(t, db.tx.committed)
		assert.True(t, db.tx.rolledBack)
	})

	t.Run("Failed - Begin Error", func(t *testing.T) {
		s, db, venueRepo, _ := setupVenueService()
		db.beginErr = errors.New("pool closed")

		_, err := s.Create(ctx, venue)

		var pe *apperrors.PersistenceError
		assert.ErrorAs(t, err, &pe)
		venueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - Commit Error", func(t *testing.T) {
		s, db, venueRepo, _ := setupVenueService()
		db.tx.commitErr = errors.New("serialization failure")
		venueRepo.On("Create", ctx, db.tx, venue).Return(&model.Venue{ID: 1}, nil).Once()

		created, err := s.Create(ctx, venue)

		assert.Nil(t, created)
		var pe *apperrors.PersistenceError
		assert.ErrorAs(t, err, &pe)
		assert.True(t, db.tx.rolledBack)
	})
}

func TestVenueService_Update(t *testing.T) {
	ctx := context.Background()
	form := &model.VenueForm{
		Name:               "Renamed Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Genres:             []string{"Jazz"},
		SeekingDescription: "ignored when not seeking",
	}

	t.Run("Success", func(t *testing.T) {
		s, db, venueRepo, _ := setupVenueService()
		stored := &model.Venue{ID: 1, Name: "The Musical Hop", SeekingTalent: true, SeekingDescription: "old"}
		venueRepo.On("LockByID", ctx, db.tx, 1).Return(stored, nil).Once()
		venueRepo.On("Update", ctx, db.tx, mock.MatchedBy(func(v *model.Venue) bool {
			return v.ID == 1 && v.Name == "Renamed Hop" && !v.SeekingTalent && v.SeekingDescription == ""
		})).Return(stored, nil).Once()

		updated, err := s.Update(ctx, 1, form)

		require.NoError(t, err)
		assert.Equal(t, "Renamed Hop", updated.Name)
		assert.True(t, db.tx.committed)
		venueRepo.AssertExpectations(t)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		s, db, venueRepo, _ := setupVenueService()
		venueRepo.On("LockByID", ctx, db.tx, 5).Return(nil, apperrors.ErrVenueNotFound).Once()

		_, err := s.Update(ctx, 5, form)

		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
		assert.True(t, apperrors.IsNotFound(err))
		assert.False(t, db.tx.committed)
	})
}

func TestVenueService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Deletes Shows First", func(t *testing.T) {
		s, db, venueRepo, showRepo := setupVenueService()
		var order []string
		showRepo.On("DeleteByVenueID", ctx, db.tx, 1).Return(int64(3), nil).Run(func(mock.Arguments) {
			order = append(order, "shows")
		}).Once()
		venueRepo.On("Delete", ctx, db.tx, 1).Return(nil).Run(func(mock.Arguments) {
			order = append(order, "venue")
		}).Once()

		err := s.Delete(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, []string{"shows", "venue"}, order)
		assert.True(t, db.tx.committed)
	})

	t.Run("Failed - NotFound Rolls Back", func(t *testing.T) {
		s, db, venueRepo, showRepo := setupVenueService()
		showRepo.On("DeleteByVenueID", ctx, db.tx, 42).Return(int64(0), nil).Once()
		venueRepo.On("Delete", ctx, db.tx, 42).Return(apperrors.ErrVenueNotFound).Once()

		err := s.Delete(ctx, 42)

		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
		assert.False(t, db.tx.committed)
		assert.True(t, db.tx.rolledBack)
	})
}
