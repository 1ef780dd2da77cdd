package mocks

import (
	"context"

	"go-gin-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type VenueRepositoryMock struct {
	mock.Mock
}

func NewVenueRepositoryMock() *VenueRepositoryMock {
	return &VenueRepositoryMock{}
}

func (m *VenueRepositoryMock) List(ctx context.Context) ([]*model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) LockByID(ctx context.Context, tx pgx.Tx, id int) (*model.Venue, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Create(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, tx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Update(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, tx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
