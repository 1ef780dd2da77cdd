package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go-gin-booking/internal/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB 是測試用的資料庫連接池，無法連線時為 nil
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.SetupDB()
	if err != nil {
		log.Printf("Skipping repository integration tests: %v", err)
	} else {
		testDB = pool
	}

	code := m.Run()
	if cleanup != nil {
		cleanup()
	}

	os.Exit(code)
}

// getTestDB returns the test pool after truncating every table, or skips the
// test when no database is available.
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available")
	}
	if err := testutil.Truncate(context.Background(), testDB); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
	return testDB
}

// inTx runs fn in a transaction that is committed when fn succeeds.
func inTx(t *testing.T, fn func(tx pgx.Tx) error) error {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func createTestVenue(t *testing.T, name, city, state string) int {
	t.Helper()

	var id int
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO venues (name, city, state, address, genres)
		VALUES ($1, $2, $3, '1015 Folsom Street', '{Jazz}')
		RETURNING id
	`, name, city, state).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test venue: %v", err)
	}
	return id
}

func createTestArtist(t *testing.T, name string) int {
	t.Helper()

	var id int
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO artists (name, city, state, genres, image_link)
		VALUES ($1, 'San Francisco', 'CA', '{Rock n Roll}', 'https://example.com/artist.jpg')
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test artist: %v", err)
	}
	return id
}

func createTestShow(t *testing.T, artistID, venueID int, start time.Time) int {
	t.Helper()

	var id int
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO shows (artist_id, artist_name, venue_id, venue_name, start_time)
		SELECT a.id, a.name, v.id, v.name, $3
		FROM artists a, venues v
		WHERE a.id = $1 AND v.id = $2
		RETURNING id
	`, artistID, venueID, start).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test show: %v", err)
	}
	return id
}

func countRows(t *testing.T, table string) int {
	t.Helper()

	var count int
	if err := testDB.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}
