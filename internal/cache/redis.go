package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lastImportKey = "import:last"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// ImportSummary is what the importer leaves behind for the API health check.
type ImportSummary struct {
	RunID             string    `json:"run_id"`
	Books             int       `json:"books"`
	Chapters          int       `json:"chapters"`
	Verses            int       `json:"verses"`
	MissingFiles      int       `json:"missing_files"`
	EmptyChapters     int       `json:"empty_chapters"`
	DroppedParagraphs int       `json:"dropped_paragraphs"`
	CompletedAt       time.Time `json:"completed_at"`
}

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(cfg RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) SetImportSummary(ctx context.Context, summary ImportSummary) error {
	js, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// no expiry: the summary describes the snapshot until the next run
	if err := r.client.Set(ctx, lastImportKey, js, 0).Err(); err != nil {
		return fmt.Errorf("failed to set import summary in Redis: %w", err)
	}

	return nil
}

// GetImportSummary returns nil without error when no import has been
// recorded.
func (r *RedisClient) GetImportSummary(ctx context.Context) (*ImportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	js, err := r.client.Get(ctx, lastImportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary ImportSummary
	if err := json.Unmarshal(js, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode import summary: %w", err)
	}

	return &summary, nil
}
