// Package app wires configuration, storage, services and HTTP routes into a
// runnable server.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"herbal/internal/config"
	"herbal/internal/database"
	"herbal/internal/handlers"
	"herbal/internal/middleware"
	"herbal/internal/repositories"
	"herbal/internal/seed"
	"herbal/internal/services"
	"herbal/pkg/gemini"
	"herbal/pkg/modelstore"
	"herbal/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// App is the assembled HTTP service and the resources it owns.
type App struct {
	cfg    config.Config
	server *fiber.App
	db     *gorm.DB
	mq     *rabbitmq.Client
}

type stores struct {
	plants    repositories.PlantRepository
	tours     repositories.TourRepository
	bookmarks repositories.BookmarkRepository
	notes     repositories.NoteRepository
}

// New builds the service from cfg. Optional collaborators (RabbitMQ, the
// chat assistant) are skipped with a warning when unavailable.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	st, err := a.openStores()
	if err != nil {
		return nil, err
	}

	if cfg.SeedData {
		if err := seed.Catalog(st.plants, st.tours); err != nil {
			_ = a.Shutdown() // close errors are logged by Shutdown
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, catalog events disabled: %v", err)
		} else {
			a.mq = mq
			events = mq
			if err := mq.ConsumeEvents(rabbitmq.LogEvent); err != nil {
				log.Printf("Warning: failed to start catalog event consumer: %v", err)
			}
		}
	}

	var assistant services.Assistant
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.ChatTimeout,
		})
		if err != nil {
			log.Printf("Warning: chat assistant disabled: %v", err)
		} else {
			assistant = client
		}
	}

	resolver, err := newResolver(ctx, cfg)
	if err != nil {
		_ = a.Shutdown() // close errors are logged by Shutdown
		return nil, err
	}

	plantService := services.NewPlantService(st.plants, events)
	tourService := services.NewTourService(st.tours, st.plants)
	bookmarkService := services.NewBookmarkService(st.bookmarks, st.plants, events)
	noteService := services.NewNoteService(st.notes, events)
	modelService := services.NewModelService(st.plants, resolver)
	chatService := services.NewChatService(assistant)

	server := fiber.New(fiber.Config{
		AppName:      "herbal",
		ErrorHandler: handlers.ErrorHandler,
		UnescapePath: true,
	})
	server.Use(recover.New())
	server.Use(logger.New())

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		server.Use(middleware.NewMetrics(reg).Handler())
		server.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	server.Get("/health", a.handleHealth)
	if cfg.ModelsDir != "" {
		server.Static("/models", cfg.ModelsDir)
	}

	api := server.Group("/api")
	handlers.NewPlantHandler(plantService, modelService).RegisterRoutes(api)
	handlers.NewTourHandler(tourService).RegisterRoutes(api)
	handlers.NewBookmarkHandler(bookmarkService).RegisterRoutes(api)
	handlers.NewNoteHandler(noteService).RegisterRoutes(api)
	handlers.NewChatHandler(chatService).RegisterRoutes(api)

	a.server = server
	return a, nil
}

func (a *App) openStores() (stores, error) {
	if a.cfg.StorageDriver == config.StorageMemory {
		return stores{
			plants:    repositories.NewMemoryPlantRepository(),
			tours:     repositories.NewMemoryTourRepository(),
			bookmarks: repositories.NewMemoryBookmarkRepository(),
			notes:     repositories.NewMemoryNoteRepository(),
		}, nil
	}

	db, err := database.Open(database.Config{
		Driver:        a.cfg.StorageDriver,
		DSN:           a.cfg.DatabaseDSN,
		Retries:       a.cfg.DatabaseRetries,
		RetryInterval: 2 * time.Second,
	})
	if err != nil {
		return stores{}, err
	}
	a.db = db
	return stores{
		plants:    repositories.NewGORMPlantRepository(db),
		tours:     repositories.NewGORMTourRepository(db),
		bookmarks: repositories.NewGORMBookmarkRepository(db),
		notes:     repositories.NewGORMNoteRepository(db),
	}, nil
}

func newResolver(ctx context.Context, cfg config.Config) (modelstore.Resolver, error) {
	if cfg.ModelStore != config.ModelStoreS3 {
		return modelstore.StaticResolver{BaseURL: cfg.ModelBaseURL}, nil
	}
	resolver, err := modelstore.NewS3Resolver(ctx, modelstore.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		PathStyle:       cfg.S3PathStyle,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretKey,
		PresignTTL:      cfg.S3PresignTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init s3 model store: %w", err)
	}
	return resolver, nil
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	status := fiber.StatusOK
	body := fiber.Map{
		"status":  "healthy",
		"storage": a.cfg.StorageDriver,
		"events":  a.mq != nil,
		"time":    time.Now().Format(time.RFC3339),
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = fiber.StatusServiceUnavailable
			body["status"] = "unhealthy"
		}
	}
	return c.Status(status).JSON(body)
}

// Server exposes the underlying Fiber app, mainly for app.Test in tests.
func (a *App) Server() *fiber.App {
	return a.server
}

// Listen serves HTTP on addr until Shutdown is called.
func (a *App) Listen(addr string) error {
	log.Printf("Starting server on %s (storage: %s)", addr, a.cfg.StorageDriver)
	return a.server.Listen(addr)
}

// Shutdown stops the HTTP server and releases the database and RabbitMQ
// connections. It is safe to call on a partially built App.
func (a *App) Shutdown() error {
	var firstErr error
	if a.server != nil {
		if err := a.server.Shutdown(); err != nil {
			log.Printf("Error during Fiber shutdown: %v", err)
			firstErr = err
		}
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			log.Printf("Error closing database: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
