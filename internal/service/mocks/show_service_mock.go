package mocks

import (
	"context"

	"go-gin-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type ShowServiceMock struct {
	mock.Mock
}

func NewShowServiceMock() *ShowServiceMock {
	return &ShowServiceMock{}
}

func (m *ShowServiceMock) List(ctx context.Context) ([]*model.ShowListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowListing), args.Error(1)
}

func (m *ShowServiceMock) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	args := m.Called(ctx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}
