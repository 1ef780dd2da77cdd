package service

import (
	"context"

	"go-gin-booking/internal/database"
	"go-gin-booking/internal/model"
	"go-gin-booking/internal/repository"

	"github.com/jackc/pgx/v5"
)

type ShowService interface {
	List(ctx context.Context) ([]*model.ShowListing, error)
	// Create books the show. A missing artist or venue fails the whole
	// transaction and nothing is written.
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
}

type ShowServiceImpl struct {
	db         database.TxBeginner
	showRepo   repository.ShowRepository
	artistRepo repository.ArtistRepository
	venueRepo  repository.VenueRepository
}

func NewShowService(
	db database.TxBeginner,
	showRepo repository.ShowRepository,
	artistRepo repository.ArtistRepository,
	venueRepo repository.VenueRepository,
) ShowService {
	return &ShowServiceImpl{
		db:         db,
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
	}
}

func (s *ShowServiceImpl) List(ctx context.Context) ([]*model.ShowListing, error) {
	return s.showRepo.List(ctx)
}

func (s *ShowServiceImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	var created *model.Show
	err := inTx(ctx, s.db, "create show", func(tx pgx.Tx) error {
		// 鎖定藝人與場地，避免建立期間被刪除
		artist, err := s.artistRepo.LockByID(ctx, tx, show.ArtistID)
		if err != nil {
			return err
		}
		venue, err := s.venueRepo.LockByID(ctx, tx, show.VenueID)
		if err != nil {
			return err
		}

		show.ArtistName = artist.Name
		show.VenueName = venue.Name
		created, err = s.showRepo.Create(ctx, tx, show)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
