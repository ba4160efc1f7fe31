package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repouso-data/internal/config"
	"repouso-data/internal/database"
	httpapi "repouso-data/internal/http"
	applog "repouso-data/internal/logger"
	"repouso-data/internal/repository"
	"repouso-data/internal/schema"
	"repouso-data/internal/service"
	"repouso-data/internal/store"
	"repouso-data/internal/wizard"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := applog.New(cfg.Log.Level, cfg.Log.Format, "repouso-data")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Optional Postgres; every repository has a memory fallback so the
	// service still comes up for local work without a database.
	var db *sql.DB
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			logger.Info("DB enabled for repouso-data")
		} else {
			logger.Warn("DB enabled but connection failed, using memory repositories", zap.Error(err))
		}
	}

	var (
		residentsRepo     repository.ResidentsRepository
		evolutionsRepo    repository.EvolutionsRepository
		professionalsRepo repository.ProfessionalsRepository
		schedulesRepo     repository.SchedulesRepository
		usersRepo         repository.UsersRepository
	)
	if db != nil {
		residentsRepo = repository.NewPostgresResidentsRepository(db)
		evolutionsRepo = repository.NewPostgresEvolutionsRepository(db)
		professionalsRepo = repository.NewPostgresProfessionalsRepository(db)
		schedulesRepo = repository.NewPostgresSchedulesRepository(db)
		usersRepo = repository.NewPostgresUsersRepository(db)
	} else {
		residentsRepo = repository.NewMemoryResidentsRepository()
		evolutionsRepo = repository.NewMemoryEvolutionsRepository()
		professionalsRepo = repository.NewMemoryProfessionalsRepository()
		schedulesRepo = repository.NewMemorySchedulesRepository()
		usersRepo = repository.NewMemoryUsersRepository()
	}

	var kv store.KV
	if cfg.Redis.Enabled {
		kv = store.NewRedisKV(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	} else {
		kv = store.NewMemoryKV()
	}

	var authGate *service.AuthGateClient
	if cfg.AuthGate.Enabled {
		authGate = service.NewAuthGateClient(cfg.AuthGate.BaseURL, cfg.AuthGate.APIKey, logger)
		logger.Info("auth gate enabled", zap.String("base_url", cfg.AuthGate.BaseURL))
	}

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	auth := service.NewAuthService(usersRepo, kv, authGate, sessionTTL, logger)

	// Dev bootstrap: make sure the console has a usable admin login on a
	// fresh environment.
	if os.Getenv("SEED_ADMIN") != "false" {
		adminEmail := os.Getenv("ADMIN_EMAIL")
		if adminEmail == "" {
			adminEmail = "admin@repouso.local"
		}
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "ChangeMe123!"
		}
		service.SeedAdmin(context.Background(), usersRepo, adminEmail, adminPassword, logger)
	}

	catalog := schema.DefaultCatalog()
	wizards := wizard.NewManager(catalog, auth, evolutionsRepo, logger)

	residents := service.NewResidentService(residentsRepo, logger)
	evolutions := service.NewEvolutionService(evolutionsRepo, residentsRepo, logger)
	professionals := service.NewProfessionalService(professionalsRepo, logger)
	schedules := service.NewScheduleService(schedulesRepo, professionalsRepo, logger)
	users := service.NewUserService(usersRepo, logger)
	exports := service.NewExportService(evolutions, residentsRepo, catalog)

	authMW := httpapi.NewAuthMiddleware(auth, logger)
	router := httpapi.NewRouter(logger)
	router.RegisterAuthRoutes(httpapi.NewAuthHandler(auth, logger), authMW)
	router.RegisterResidentRoutes(httpapi.NewResidentHandler(residents, logger), authMW)
	router.RegisterEvolutionRoutes(httpapi.NewEvolutionHandler(evolutions, wizards, catalog, logger), authMW)
	router.RegisterProfessionalRoutes(httpapi.NewProfessionalHandler(professionals, schedules, logger), authMW)
	router.RegisterUserRoutes(httpapi.NewUserHandler(users, logger), authMW)
	router.RegisterExportRoutes(httpapi.NewExportHandler(exports, logger), authMW)

	server := service.NewServer(cfg.HTTP.Addr, router, logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	if db != nil {
		_ = database.Close(db)
	}
}
