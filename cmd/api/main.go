package main

import (
	"context"
	"os"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/auth"
	"github.com/DarshanRT1/Hotel-Booking/internal/cache"
	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/env"
	"github.com/DarshanRT1/Hotel-Booking/internal/parser"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/ratelimiter"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"github.com/DarshanRT1/Hotel-Booking/internal/store/mongo"
	"github.com/DarshanRT1/Hotel-Booking/internal/worker"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const version = "1.0.0"

//	@title			Restaurant API
//	@description	Menu, orders and table reservations
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath					/api
//
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						Authorization
// @description				Bearer token from /auth/login
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:        env.GetString("ADDR", ":5000"),
		apiURL:      env.GetString("EXTERNAL_URL", "localhost:5000"),
		frontendURL: env.GetString("FRONTEND_URL", "http://localhost:3000"),
		env:         env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
			Database: env.GetString("MONGO_DATABASE", "restaurant"),
			Timeout:  time.Second * 10,
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    time.Second * 2,
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
		redis: redisConfig{
			Addr:     env.GetString("REDIS_ADDR", ""),
			Password: env.GetString("REDIS_PASSWORD", ""),
			DB:       env.GetInt("REDIS_DB", 0),
			TTL:      env.GetDuration("REDIS_TTL", 5*time.Minute),
		},
		auth: authConfig{
			secret:          env.GetString("JWT_SECRET", ""),
			expiry:          env.GetDuration("JWT_EXPIRY", auth.DefaultTokenTTL),
			issuer:          "restaurant-api",
			allowRoleSignup: env.GetBool("AUTH_ALLOW_ROLE_SIGNUP", false),
		},
		orders: service.OrderConfig{
			Transitions:    domain.ParseTransitionPolicy(env.GetString("STATUS_TRANSITIONS", string(domain.Permissive))),
			VerifyTotal:    env.GetBool("ORDER_VERIFY_TOTAL", false),
			TotalTolerance: env.GetFloat("ORDER_TOTAL_TOLERANCE", service.DefaultTotalTolerance),
		},
		googleCreds: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
	}

	// logger
	logger := newLogger(cfg.env)
	defer logger.Sync()

	// auth
	authenticator, err := auth.NewJWTAuthenticator(cfg.auth.secret, cfg.auth.expiry, cfg.auth.issuer)
	if err != nil {
		logger.Fatalw("invalid auth configuration, set JWT_SECRET", "error", err)
	}

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	storage, err := mongo.New(mongo.Config{
		URI:      cfg.mongo.URI,
		Database: cfg.mongo.Database,
		Timeout:  cfg.mongo.Timeout,
	})
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	logger.Info("connected to MongoDB")

	// create indexes
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := storage.CreateIndexes(ctx); err != nil {
		logger.Warnw("failed to create indexes", "error", err)
	} else {
		logger.Info("MongoDB indexes created successfully")
	}

	// repos
	menuRepo := mongo.NewMenuItemRepository(storage.Database())
	accountRepo := mongo.NewAccountRepository(storage.Database())
	orderRepo := mongo.NewOrderRepository(storage.Database())
	reservationRepo := mongo.NewReservationRepository(storage.Database())
	auditRepo := mongo.NewStatusAuditRepository(storage.Database())
	importTaskRepo := mongo.NewImportTaskRepository(storage.Database())

	// redis cache
	var (
		redisClient *redis.Client
		menuCache   cache.MenuCache
	)
	if cfg.redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(cache.Config{
			Addr:     cfg.redis.Addr,
			Password: cfg.redis.Password,
			DB:       cfg.redis.DB,
			TTL:      cfg.redis.TTL,
		})
		if err != nil {
			logger.Fatalw("failed to connect to Redis", "error", err)
		}
		menuCache = cache.NewRedisCache(redisClient, cfg.redis.TTL)
		logger.Info("connected to Redis")
	} else {
		logger.Warn("REDIS_ADDR not set, menu cache disabled")
	}

	// rabbitmq broker
	var broker queue.Broker
	if cfg.rabbitMQ.URL != "" {
		rabbit, err := queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
		})
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		broker = rabbit
		logger.Info("connected to RabbitMQ")
	} else {
		logger.Warn("RABBITMQ_URL not set, status events and menu imports disabled")
	}

	var sheetParser service.MenuSheetParser
	if cfg.googleCreds != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		googleParser, err := parser.New(context.Background(), parser.Config{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets parser", "error", err)
		}
		sheetParser = googleParser
		logger.Info("Google Sheets parser initialized")
	} else {
		logger.Warn("Google credentials not provided, menu imports disabled")
	}

	catalogService := service.NewCatalogService(menuRepo, menuCache, logger)
	orderService := service.NewOrderService(orderRepo, menuRepo, accountRepo, broker, logger, cfg.orders)
	reservationService := service.NewReservationService(reservationRepo, accountRepo, broker, logger, cfg.orders.Transitions)
	accountService := service.NewAccountService(
		accountRepo,
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		authenticator,
		logger,
		cfg.auth.allowRoleSignup,
	)
	auditService := service.NewStatusAuditService(auditRepo, logger)
	importService := service.NewMenuImportService(importTaskRepo, catalogService, sheetParser, broker, logger)

	var workers []backgroundWorker
	if broker != nil {
		workers = append(workers, worker.NewStatusEventWorker(auditService, broker, logger))
		if importService.Enabled() {
			workers = append(workers, worker.NewMenuImportWorker(importService, broker, logger))
		}
	}

	logger.Infow("status transitions", "policy", cfg.orders.Transitions, "verify_total", cfg.orders.VerifyTotal)

	app := &application{
		config:             cfg,
		logger:             logger,
		rateLimiter:        rateLimiter,
		authenticator:      authenticator,
		storage:            storage,
		redis:              redisClient,
		broker:             broker,
		catalogService:     catalogService,
		orderService:       orderService,
		reservationService: reservationService,
		accountService:     accountService,
		auditService:       auditService,
		importService:      importService,
		workers:            workers,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func newLogger(environment string) *zap.SugaredLogger {
	if environment == "development" {
		return zap.Must(zap.NewDevelopment()).Sugar()
	}
	return zap.Must(zap.NewProduction()).Sugar()
}
