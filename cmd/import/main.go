package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"shuvoedward/biblia/internal/cache"
	"shuvoedward/biblia/internal/data"
	"shuvoedward/biblia/internal/importer"
)

type CLI struct {
	DBDSN     string `name:"db-dsn" env:"BIBLE_DB_DSN" help:"PostgreSQL DSN."`
	SourceDir string `name:"source-dir" default:"${source_dir}" type:"path" help:"Directory holding <slug><chapter>.html pages."`

	RedisAddr     string `name:"redis-addr" env:"BIBLE_REDIS_ADDR" help:"Redis address to record the import summary in (optional)."`
	RedisPassword string `name:"redis-password" env:"BIBLE_REDIS_PASSWORD" help:"Redis password."`
	RedisDB       int    `name:"redis-db" default:"0" help:"Redis DB."`
}

func main() {
	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("import"),
		kong.Description("Rebuild the books, chapters and verses tables from the chapter HTML pages."),
		kong.Vars{"source_dir": importer.DefaultSourceDir},
	)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), cli, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cli CLI, logger *slog.Logger) error {
	if cli.DBDSN == "" {
		return errors.New("BIBLE_DB_DSN is not configured")
	}

	logger.Info("starting bible import", "source_dir", cli.SourceDir)

	db, err := openDB(cli.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	im := importer.New(data.NewModels(db), func() error {
		return data.Migrate(db)
	}, logger)

	summary, err := im.Run(ctx, os.DirFS(cli.SourceDir))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if cli.RedisAddr != "" {
		recordSummary(ctx, cli, logger, summary)
	}

	return nil
}

// recordSummary stores the run outcome for the API health check. Failing to
// do so does not fail the import.
func recordSummary(ctx context.Context, cli CLI, logger *slog.Logger, summary importer.Summary) {
	redisClient, err := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cli.RedisAddr,
		Password: cli.RedisPassword,
		DB:       cli.RedisDB,
		PoolSize: 1,
	})
	if err != nil {
		logger.Error("could not record import summary", "error", err)
		return
	}
	defer redisClient.Close()

	err = redisClient.SetImportSummary(ctx, cache.ImportSummary{
		RunID:             summary.RunID,
		Books:             summary.Books,
		Chapters:          summary.Chapters,
		Verses:            summary.Verses,
		MissingFiles:      summary.MissingFiles,
		EmptyChapters:     summary.EmptyChapters,
		DroppedParagraphs: summary.DroppedParagraphs,
		CompletedAt:       time.Now().UTC(),
	})
	if err != nil {
		logger.Error("could not record import summary", "error", err)
		return
	}

	logger.Info("recorded import summary", "run_id", summary.RunID)
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
