package service

import (
	"context"
	"time"

	"go-gin-booking/internal/database"
	"go-gin-booking/internal/model"
	"go-gin-booking/internal/query"
	"go-gin-booking/internal/repository"

	"github.com/jackc/pgx/v5"
)

type ArtistService interface {
	List(ctx context.Context) ([]*model.Summary, error)
	Search(ctx context.Context, term string) (*model.SearchResult, error)
	Detail(ctx context.Context, id int) (*model.ArtistDetail, error)
	Get(ctx context.Context, id int) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id int, form *model.ArtistForm) (*model.Artist, error)
}

type ArtistServiceImpl struct {
	db         database.TxBeginner
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	now        func() time.Time
}

func NewArtistService(db database.TxBeginner, artistRepo repository.ArtistRepository, showRepo repository.ShowRepository) ArtistService {
	return &ArtistServiceImpl{
		db:         db,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		now:        time.Now,
	}
}

func (s *ArtistServiceImpl) summaries(ctx context.Context) ([]*model.Artist, map[int]int, error) {
	artists, err := s.artistRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	upcoming, err := s.showRepo.CountUpcomingByArtist(ctx, s.now())
	if err != nil {
		return nil, nil, err
	}

	return artists, upcoming, nil
}

func (s *ArtistServiceImpl) List(ctx context.Context) ([]*model.Summary, error) {
	artists, upcoming, err := s.summaries(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*model.Summary, 0, len(artists))
	for _, a := range artists {
		list = append(list, a.Summary(upcoming[a.ID]))
	}
	return list, nil
}

func (s *ArtistServiceImpl) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	artists, upcoming, err := s.summaries(ctx)
	if err != nil {
		return nil, err
	}

	return query.Search(term, artists, func(a *model.Artist) *model.Summary {
		return a.Summary(upcoming[a.ID])
	}), nil
}

func (s *ArtistServiceImpl) Detail(ctx context.Context, id int) (*model.ArtistDetail, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.ListByArtistID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := query.SplitShows(shows, s.now())
	return &model.ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *ArtistServiceImpl) Get(ctx context.Context, id int) (*model.Artist, error) {
	return s.artistRepo.FindByID(ctx, id)
}

func (s *ArtistServiceImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	var created *model.Artist
	err := inTx(ctx, s.db, "create artist", func(tx pgx.Tx) error {
		var err error
		created, err = s.artistRepo.Create(ctx, tx, artist)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ArtistServiceImpl) Update(ctx context.Context, id int, form *model.ArtistForm) (*model.Artist, error) {
	var updated *model.Artist
	err := inTx(ctx, s.db, "update artist", func(tx pgx.Tx) error {
		artist, err := s.artistRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}

		form.ApplyTo(artist)
		updated, err = s.artistRepo.Update(ctx, tx, artist)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
