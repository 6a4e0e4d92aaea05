package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/docs"
	"github.com/DarshanRT1/Hotel-Booking/internal/auth"
	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/ratelimiter"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"github.com/DarshanRT1/Hotel-Booking/internal/store/mongo"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type backgroundWorker interface {
	Start() error
	Stop()
}

type application struct {
	config             config
	logger             *zap.SugaredLogger
	rateLimiter        ratelimiter.Limiter
	authenticator      auth.Authenticator
	storage            *mongo.Storage
	redis              *redis.Client
	broker             queue.Broker
	catalogService     *service.CatalogService
	orderService       *service.OrderService
	reservationService *service.ReservationService
	accountService     *service.AccountService
	auditService       *service.StatusAuditService
	importService      *service.MenuImportService
	workers            []backgroundWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	frontendURL string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	redis       redisConfig
	auth        authConfig
	orders      service.OrderConfig
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type redisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type authConfig struct {
	secret          string
	expiry          time.Duration
	issuer          string
	allowRoleSignup bool
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{app.config.frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	r.Use(app.rateLimiterMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Use(app.authenticate)

		r.Get("/health", app.healthCheckHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.registerHandler)
			r.Post("/login", app.loginHandler)
			r.With(app.requireAuth).Get("/me", app.meHandler)
		})

		r.Route("/menu-items", func(r chi.Router) {
			r.Get("/", app.listMenuItemsHandler)
			r.Post("/", app.createMenuItemHandler)
			r.Get("/category/{category}", app.listMenuItemsByCategoryHandler)
			r.Get("/{id}", app.getMenuItemHandler)
			r.Put("/{id}", app.updateMenuItemHandler)
			r.Delete("/{id}", app.deleteMenuItemHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(app.requireRole(domain.RoleStaff, domain.RoleAdmin))

			r.Post("/seed", app.seedHandler)
			r.Post("/menu-imports", app.createMenuImportHandler)
			r.Get("/menu-imports/{task_id}", app.getMenuImportHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", app.listOrdersHandler)
			r.Post("/", app.createOrderHandler)
			r.Get("/user/{userId}", app.listOrdersByUserHandler)
			r.Get("/email/{email}", app.listOrdersByEmailHandler)
			r.Get("/{id}", app.getOrderHandler)
			r.Get("/{id}/history", app.orderHistoryHandler)
			r.Patch("/{id}/status", app.updateOrderStatusHandler)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", app.listReservationsHandler)
			r.Post("/", app.createReservationHandler)
			r.Get("/user/{userId}", app.listReservationsByUserHandler)
			r.Get("/email/{email}", app.listReservationsByEmailHandler)
			r.Get("/{id}", app.getReservationHandler)
			r.Get("/{id}/history", app.reservationHistoryHandler)
			r.Patch("/{id}/status", app.updateReservationStatusHandler)
		})

		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/api/swagger/doc.json")))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Restaurant API"
	docs.SwaggerInfo.Description = "Menu, orders and table reservations"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	// workers
	for _, w := range app.workers {
		if err := w.Start(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		// drain requests before their dependencies go away
		err := srv.Shutdown(ctx)

		for _, w := range app.workers {
			w.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.redis != nil {
			if err := app.redis.Close(); err != nil {
				app.logger.Errorw("error closing Redis", "error", err)
			} else {
				app.logger.Info("Redis connection closed gracefully")
			}
		}

		shutdown <- err
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
