package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"shuvoedward/biblia/internal/cache"
	"shuvoedward/biblia/internal/catalog"
	"shuvoedward/biblia/internal/data"
	"shuvoedward/biblia/internal/ratelimit"
	"shuvoedward/biblia/internal/service"
)

var (
	version = "1.0.0"
)

type config struct {
	port int
	env  string

	db struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}

	limiter struct {
		enabled bool
		rps     int
	}

	redisConfig cache.RedisConfig
}

// importSummaryReader is satisfied by *cache.RedisClient.
type importSummaryReader interface {
	GetImportSummary(ctx context.Context) (*cache.ImportSummary, error)
}

type application struct {
	config        config
	logger        *slog.Logger
	imports       importSummaryReader
	ipRateLimiter *ratelimit.RateLimiter
}

func main() {
	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := openDB(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("Successful connection to database")

	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.redisConfig.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.redisConfig)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		defer redisClient.Close()

		app.imports = redisClient
		logger.Info("Successful connection to redis")
	}

	if cfg.limiter.enabled {
		app.ipRateLimiter = ratelimit.NewRateLimiter(cfg.limiter.rps, time.Second)
		defer app.ipRateLimiter.Stop()
	}

	services := service.NewServices(data.NewModels(db), logger, catalog.Slugs())

	err = app.serve(NewHandlers(app, services))
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// parseConfig reads flags, falling back to the environment for the values an
// operator usually sets there. The rate limiter stays off unless asked for.
func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config

	fs.IntVar(&cfg.port, "port", envInt("PORT", 4000), "API server port")
	fs.StringVar(&cfg.env, "env", envString("BIBLE_ENV", "development"), "Environment (development|staging|production)")

	fs.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("BIBLE_DB_DSN"), "PostgreSQL DSN")
	fs.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	fs.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")

	fs.BoolVar(&cfg.limiter.enabled, "limiter-enabled", false, "Enable per-IP rate limiter")
	fs.IntVar(&cfg.limiter.rps, "limiter-rps", 30, "Rate limiter maximum requests per second per IP")

	fs.StringVar(&cfg.redisConfig.Addr, "redis-addr", os.Getenv("BIBLE_REDIS_ADDR"), "Redis address holding the last import summary (optional)")
	fs.StringVar(&cfg.redisConfig.Password, "redis-password", os.Getenv("BIBLE_REDIS_PASSWORD"), "Redis Password")
	fs.IntVar(&cfg.redisConfig.DB, "redis-db", 0, "Redis DB")
	fs.IntVar(&cfg.redisConfig.PoolSize, "redis-poolsize", 10, "Redis Pool Size")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func openDB(cfg config) (*sql.DB, error) {
	if cfg.db.dsn == "" {
		return nil, errors.New("database DSN is not configured (set BIBLE_DB_DSN or -db-dsn)")
	}

	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)
	db.SetConnMaxIdleTime(cfg.db.maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
