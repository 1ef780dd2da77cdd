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

type VenueService interface {
	// 依城市分組的場地列表
	Areas(ctx context.Context) ([]*model.Area, error)
	Search(ctx context.Context, term string) (*model.SearchResult, error)
	Detail(ctx context.Context, id int) (*model.VenueDetail, error)
	Get(ctx context.Context, id int) (*model.Venue, error)
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, id int, form *model.VenueForm) (*model.Venue, error)
	// Delete removes the venue together with its shows.
	Delete(ctx context.Context, id int) error
}

type VenueServiceImpl struct {
	db        database.TxBeginner
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	now       func() time.Time
}

func NewVenueService(db database.TxBeginner, venueRepo repository.VenueRepository, showRepo repository.ShowRepository) VenueService {
	return &VenueServiceImpl{
		db:        db,
		venueRepo: venueRepo,
		showRepo:  showRepo,
		now:       time.Now,
	}
}

func (s *VenueServiceImpl) Areas(ctx context.Context) ([]*model.Area, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.showRepo.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return query.GroupByLocation(venues, upcoming), nil
}

func (s *VenueServiceImpl) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.showRepo.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return query.Search(term, venues, func(v *model.Venue) *model.Summary {
		return v.Summary(upcoming[v.ID])
	}), nil
}

func (s *VenueServiceImpl) Detail(ctx context.Context, id int) (*model.VenueDetail, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.ListByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := query.SplitShows(shows, s.now())
	return &model.VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *VenueServiceImpl) Get(ctx context.Context, id int) (*model.Venue, error) {
	return s.venueRepo.FindByID(ctx, id)
}

func (s *VenueServiceImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	var created *model.Venue
	err := inTx(ctx, s.db, "create venue", func(tx pgx.Tx) error {
		var err error
		created, err = s.venueRepo.Create(ctx, tx, venue)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *VenueServiceImpl) Update(ctx context.Context, id int, form *model.VenueForm) (*model.Venue, error) {
	var updated *model.Venue
	err := inTx(ctx, s.db, "update venue", func(tx pgx.Tx) error {
		venue, err := s.venueRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}

		form.ApplyTo(venue)
		updated, err = s.venueRepo.Update(ctx, tx, venue)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *VenueServiceImpl) Delete(ctx context.Context, id int) error {
	return inTx(ctx, s.db, "delete venue", func(tx pgx.Tx) error {
		// 先刪除場地底下的演出
		if _, err := s.showRepo.DeleteByVenueID(ctx, tx, id); err != nil {
			return err
		}
		return s.venueRepo.Delete(ctx, tx, id)
	})
}
