package repository

import (
	"context"
	"fmt"
	"time"

	"go-gin-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowRepository interface {
	List(ctx context.Context) ([]*model.ShowListing, error)
	ListByVenueID(ctx context.Context, venueID int) ([]*model.ShowListing, error)
	ListByArtistID(ctx context.Context, artistID int) ([]*model.ShowListing, error)
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error)
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, show *model.Show) (*model.Show, error)
	DeleteByVenueID(ctx context.Context, tx pgx.Tx, venueID int) (int64, error)
}

type ShowRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{
		pool: pool,
	}
}

// listingQuery joins each show with its artist and venue for their image
// links. Names come from the copies stored on the show.
const listingQuery = `
	SELECT s.id, s.artist_id, s.artist_name, a.image_link,
	       s.venue_id, s.venue_name, v.image_link, s.start_time
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v ON v.id = s.venue_id
`

func (r *ShowRepositoryImpl) queryListings(ctx context.Context, query string, args ...any) ([]*model.ShowListing, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]*model.ShowListing, 0)
	for rows.Next() {
		var l model.ShowListing
		err := rows.Scan(
			&l.ID,
			&l.ArtistID,
			&l.ArtistName,
			&l.ArtistImageLink,
			&l.VenueID,
			&l.VenueName,
			&l.VenueImageLink,
			&l.StartTime,
		)
		if err != nil {
			return nil, err
		}
		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *ShowRepositoryImpl) List(ctx context.Context) ([]*model.ShowListing, error) {
	return r.queryListings(ctx, listingQuery+` ORDER BY s.start_time, s.id`)
}

func (r *ShowRepositoryImpl) ListByVenueID(ctx context.Context, venueID int) ([]*model.ShowListing, error) {
	return r.queryListings(ctx, listingQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *ShowRepositoryImpl) ListByArtistID(ctx context.Context, artistID int) ([]*model.ShowListing, error) {
	return r.queryListings(ctx, listingQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *ShowRepositoryImpl) countUpcoming(ctx context.Context, column string, now time.Time) (map[int]int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM shows
		WHERE start_time >= $1
		GROUP BY %s
	`, column, column)

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var id, count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountUpcomingByVenue returns, per venue id, the number of shows starting at
// or after now. Venues without upcoming shows are absent from the map.
func (r *ShowRepositoryImpl) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error) {
	return r.countUpcoming(ctx, "venue_id", now)
}

func (r *ShowRepositoryImpl) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error) {
	return r.countUpcoming(ctx, "artist_id", now)
}

func (r *ShowRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, show *model.Show) (*model.Show, error) {
	query := `
		INSERT INTO shows (artist_id, artist_name, venue_id, venue_name, start_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, artist_id, artist_name, venue_id, venue_name, start_time, created_at
	`

	err := tx.QueryRow(ctx, query,
		show.ArtistID, show.ArtistName, show.VenueID, show.VenueName, show.StartTime,
	).Scan(
		&show.ID,
		&show.ArtistID,
		&show.ArtistName,
		&show.VenueID,
		&show.VenueName,
		&show.StartTime,
		&show.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	return show, nil
}

func (r *ShowRepositoryImpl) DeleteByVenueID(ctx context.Context, tx pgx.Tx, venueID int) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM shows WHERE venue_id = $1`, venueID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shows: %w", err)
	}
	return result.RowsAffected(), nil
}
