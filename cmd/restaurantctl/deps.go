package main

import (
	"context"
	"errors"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/auth"
	"github.com/DarshanRT1/Hotel-Booking/internal/cache"
	"github.com/DarshanRT1/Hotel-Booking/internal/env"
	"github.com/DarshanRT1/Hotel-Booking/internal/store/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// deps holds the connections a command needs. close releases whatever was
// opened.
type deps struct {
	logger    *zap.SugaredLogger
	storage   *mongo.Storage
	menuCache cache.MenuCache
	close     func()
}

func connect(ctx context.Context) (*deps, error) {
	logger := newLogger(env.GetString("ENV", "development"))

	storage, err := mongo.New(mongo.Config{
		URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		Database: env.GetString("MONGO_DATABASE", "restaurant"),
		Timeout:  time.Second * 10,
	})
	if err != nil {
		return nil, err
	}

	d := &deps{logger: logger, storage: storage}
	closers := []func(){
		func() {
			if err := storage.Close(ctx); err != nil {
				logger.Warnw("error closing MongoDB", "error", err)
			}
		},
	}

	// the API caches menu listings; drop them when the catalog changes
	if addr := env.GetString("REDIS_ADDR", ""); addr != "" {
		client, err := cache.NewRedisClient(cache.Config{
			Addr:     addr,
			Password: env.GetString("REDIS_PASSWORD", ""),
			DB:       env.GetInt("REDIS_DB", 0),
		})
		if err != nil {
			logger.Warnw("menu cache unreachable, cached listings may be stale", "error", err)
		} else {
			d.menuCache = cache.NewRedisCache(client, env.GetDuration("REDIS_TTL", 5*time.Minute))
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	d.close = func() {
		for _, c := range closers {
			c()
		}
		_ = logger.Sync()
	}

	return d, nil
}

func newLogger(environment string) *zap.SugaredLogger {
	if environment == "development" {
		return zap.Must(zap.NewDevelopment()).Sugar()
	}
	return zap.Must(zap.NewProduction()).Sugar()
}

func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, time.Minute)
}

var errNotConfirmed = errors.New("refusing to run without --yes")

func newHasher() auth.PasswordHasher {
	return auth.NewBcryptHasher(bcrypt.DefaultCost)
}
