package mocks

import (
	"context"

	"go-gin-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type VenueServiceMock struct {
	mock.Mock
}

func NewVenueServiceMock() *VenueServiceMock {
	return &VenueServiceMock{}
}

func (m *VenueServiceMock) Areas(ctx context.Context) ([]*model.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Area), args.Error(1)
}

func (m *VenueServiceMock) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResult), args.Error(1)
}

func (m *VenueServiceMock) Detail(ctx context.Context, id int) (*model.VenueDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VenueDetail), args.Error(1)
}

func (m *VenueServiceMock) Get(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Update(ctx context.Context, id int, form *model.VenueForm) (*model.Venue, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
