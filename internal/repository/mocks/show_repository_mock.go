package mocks

import (
	"context"
	"time"

	"go-gin-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type ShowRepositoryMock struct {
	mock.Mock
}

func NewShowRepositoryMock() *ShowRepositoryMock {
	return &ShowRepositoryMock{}
}

func (m *ShowRepositoryMock) listings(args mock.Arguments) ([]*model.ShowListing, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowListing), args.Error(1)
}

func (m *ShowRepositoryMock) counts(args mock.Arguments) (map[int]int, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *ShowRepositoryMock) List(ctx context.Context) ([]*model.ShowListing, error) {
	return m.listings(m.Called(ctx))
}

func (m *ShowRepositoryMock) ListByVenueID(ctx context.Context, venueID int) ([]*model.ShowListing, error) {
	return m.listings(m.Called(ctx, venueID))
}

func (m *ShowRepositoryMock) ListByArtistID(ctx context.Context, artistID int) ([]*model.ShowListing, error) {
	return m.listings(m.Called(ctx, artistID))
}

func (m *ShowRepositoryMock) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error) {
	return m.counts(m.Called(ctx, now))
}

func (m *ShowRepositoryMock) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error) {
	return m.counts(m.Called(ctx, now))
}

func (m *ShowRepositoryMock) Create(ctx context.Context, tx pgx.Tx, show *model.Show) (*model.Show, error) {
	args := m.Called(ctx, tx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *ShowRepositoryMock) DeleteByVenueID(ctx context.Context, tx pgx.Tx, venueID int) (int64, error) {
	args := m.Called(ctx, tx, venueID)
	return args.Get(0).(int64), args.Error(1)
}
