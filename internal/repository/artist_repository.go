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

type ArtistRepository interface {
	List(ctx context.Context) ([]*model.Artist, error)
	FindByID(ctx context.Context, id int) (*model.Artist, error)

	// Transaction methods
	LockByID(ctx context.Context, tx pgx.Tx, id int) (*model.Artist, error)
	Create(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error)
}

type ArtistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &ArtistRepositoryImpl{
		pool: pool,
	}
}

const artistColumns = `id, name, city, state, phone, genres, image_link, website,
	facebook_link, seeking_venue, seeking_description, created_at, updated_at`

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var artist model.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Genres,
		&artist.ImageLink,
		&artist.Website,
		&artist.FacebookLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepositoryImpl) List(ctx context.Context) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artists, nil
}

func (r *ArtistRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	return scanArtist(r.pool.QueryRow(ctx, query, id))
}

func (r *ArtistRepositoryImpl) LockByID(ctx context.Context, tx pgx.Tx, id int) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1 FOR SHARE`
	return scanArtist(tx.QueryRow(ctx, query, id))
}

func (r *ArtistRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	query := `
		INSERT INTO artists (
			name, city, state, phone, genres, image_link, website,
			facebook_link, seeking_venue, seeking_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + artistColumns

	created, err := scanArtist(tx.QueryRow(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, genresOrEmpty(artist.Genres),
		artist.ImageLink, artist.Website, artist.FacebookLink, artist.SeekingVenue, artist.SeekingDescription,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return created, nil
}

func (r *ArtistRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5, image_link = $6,
		    website = $7, facebook_link = $8, seeking_venue = $9, seeking_description = $10,
		    updated_at = NOW()
		WHERE id = $11
		RETURNING ` + artistColumns

	updated, err := scanArtist(tx.QueryRow(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, genresOrEmpty(artist.Genres),
		artist.ImageLink, artist.Website, artist.FacebookLink, artist.SeekingVenue, artist.SeekingDescription,
		artist.ID,
	))
	if err != nil {
		if errors.Is(err, apperrors.ErrArtistNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	return updated, nil
}
