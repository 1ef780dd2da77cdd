package mocks

import (
	"context"

	"go-gin-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type ArtistRepositoryMock struct {
	mock.Mock
}

func NewArtistRepositoryMock() *ArtistRepositoryMock {
	return &ArtistRepositoryMock{}
}

func (m *ArtistRepositoryMock) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) LockByID(ctx context.Context, tx pgx.Tx, id int) (*model.Artist, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) Create(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, tx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) Update(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, tx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}
