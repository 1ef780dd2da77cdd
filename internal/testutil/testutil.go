package testutil

import (
	"context"
	"fmt"
	"log"

	"go-gin-booking/config"
	"go-gin-booking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDB connects to the test database and migrates it to the latest schema.
func SetupDB() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if err := database.MigrateUp(&cfg.Database); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %v", err)
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}

	return testDB, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// Truncate empties every booking table and resets their id sequences.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE shows, artists, venues RESTART IDENTITY CASCADE")
	return err
}
