package mocks

import (
	"context"

	"go-gin-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type ArtistServiceMock struct {
	mock.Mock
}

func NewArtistServiceMock() *ArtistServiceMock {
	return &ArtistServiceMock{}
}

func (m *ArtistServiceMock) List(ctx context.Context) ([]*model.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Summary), args.Error(1)
}

func (m *ArtistServiceMock) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResult), args.Error(1)
}

func (m *ArtistServiceMock) Detail(ctx context.Context, id int) (*model.ArtistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtistDetail), args.Error(1)
}

func (m *ArtistServiceMock) Get(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Update(ctx context.Context, id int, form *model.ArtistForm) (*model.Artist, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}
