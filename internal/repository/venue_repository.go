package repository

import (
	"context"
	"errors"
	"fmt"

	"go-gin-booking/internal/model"
	apperrors "go-gin-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository interface {
	List(ctx context.Context) ([]*model.Venue, error)
	FindByID(ctx context.Context, id int) (*model.Venue, error)

	// Transaction methods
	LockByID(ctx context.Context, tx pgx.Tx, id int) (*model.Venue, error)
	Create(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
}

type VenueRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &VenueRepositoryImpl{
		pool: pool,
	}
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link, website,
	facebook_link, seeking_talent, seeking_description, created_at, updated_at`

func scanVenue(row pgx.Row) (*model.Venue, error) {
	var venue model.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.Genres,
		&venue.ImageLink,
		&venue.Website,
		&venue.FacebookLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepositoryImpl) List(ctx context.Context) ([]*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*model.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	return scanVenue(r.pool.QueryRow(ctx, query, id))
}

// LockByID reads the venue and holds a share lock on it until tx ends, so the
// venue cannot be deleted underneath a show being created.
func (r *VenueRepositoryImpl) LockByID(ctx context.Context, tx pgx.Tx, id int) (*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1 FOR SHARE`
	return scanVenue(tx.QueryRow(ctx, query, id))
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	query := `
		INSERT INTO venues (
			name, city, state, address, phone, genres, image_link, website,
			facebook_link, seeking_talent, seeking_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + venueColumns

	created, err := scanVenue(tx.QueryRow(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, genresOrEmpty(venue.Genres),
		venue.ImageLink, venue.Website, venue.FacebookLink, venue.SeekingTalent, venue.SeekingDescription,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return created, nil
}

func (r *VenueRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
		    image_link = $7, website = $8, facebook_link = $9, seeking_talent = $10,
		    seeking_description = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING ` + venueColumns

	updated, err := scanVenue(tx.QueryRow(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, genresOrEmpty(venue.Genres),
		venue.ImageLink, venue.Website, venue.FacebookLink, venue.SeekingTalent, venue.SeekingDescription,
		venue.ID,
	))
	if err != nil {
		if errors.Is(err, apperrors.ErrVenueNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	return updated, nil
}

func (r *VenueRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrVenueNotFound
	}

	return nil
}

// genresOrEmpty keeps a nil slice from being written as SQL NULL.
func genresOrEmpty(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}
