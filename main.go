package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"lmsconnector/migrations"
	"lmsconnector/src/api"
	"lmsconnector/src/api/handlers"
	"lmsconnector/src/config"
	"lmsconnector/src/database"
	"lmsconnector/src/repositories"
	"lmsconnector/src/scheduler"
	"lmsconnector/src/services"
	"lmsconnector/src/utils"
	aws_handler "lmsconnector/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	settings := pflag.String("settings", "./settings", "directory holding appsettings.yaml")
	pflag.Parse()

	// A missing .env file is fine; the environment and defaults still apply.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*settings)
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}

	logger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Println(err, "Error while creating logger")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errC, err := run(ctx, cfg, logger)
	if err != nil {
		stop()
		logger.WithError(err).Error("Couldn't run")
		os.Exit(1)
	}

	err = <-errC
	stop()
	if err != nil {
		logger.WithError(err).Error("Error while running")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	if err := resolveSecrets(ctx, cfg); err != nil {
		return nil, err
	}

	pool, err := database.SetupDB(ctx, &cfg.Databases.SQL)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to PostgreSQL")

	if cfg.Databases.SQL.MigrateOnStartup {
		if err := migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("Database tables initialized")
	}

	syncLogs := repositories.NewSyncLogRepository(pool)
	validate := utils.NewValidator()
	syncService := services.NewSyncService(
		utils.NewCSVReader(cfg.Files.PrimaryDir, cfg.Files.FallbackDir),
		syncLogs,
		repositories.NewRawStudentRepository(pool),
		repositories.NewRawGradeRepository(pool),
		cfg.Sync.Source,
	)
	handler := handlers.NewHandler(
		syncService,
		services.NewStudentService(validate),
		services.NewConnectionService(validate, repositories.NewRawConnectionRepository(pool)),
		syncLogs,
		cfg.Service.Name,
	)
	httpServer := api.NewHTTPServer(api.NewServer(handler, logger), cfg.Service)

	var task *scheduler.ScheduledTask
	if cfg.Sync.Schedule != "" {
		task, err = scheduler.NewScheduledTask(ctx, cfg.Sync.Schedule, logger, func(ctx context.Context) {
			_, _ = syncService.Sync(utils.WithLogger(ctx, logger.WithField("trigger", "schedule")))
		})
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.WithField("next_run", task.Next()).Info("Scheduled sync enabled")
	}

	cleanup := func() {
		if task != nil {
			task.Cancel()
		}
		pool.Close()
	}
	return serve(ctx, httpServer, logger, cleanup), nil
}

// serve runs httpServer until ctx is done or the listener fails. cleanup runs
// exactly once on either path, before the result is sent on the channel.
func serve(ctx context.Context, httpServer *http.Server, logger logrus.FieldLogger, cleanup func()) <-chan error {
	errC := make(chan error, 2)
	var once sync.Once

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		once.Do(cleanup)
		errC <- err
	}()

	go func() {
		logger.WithField("addr", httpServer.Addr).Info("LMS Connector service running")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			once.Do(cleanup)
			errC <- err
		}
	}()
	return errC
}

func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrations.Up(db)
}

func resolveSecrets(ctx context.Context, cfg *config.Config) error {
	if cfg.Secrets.DatabaseURLSecretID == "" {
		return nil
	}
	awsHandler, err := aws_handler.NewAWSHandler(cfg.Secrets.AWSRegion)
	if err != nil {
		return err
	}
	url, err := awsHandler.SecretManager.DatabaseURL(ctx, cfg.Secrets.DatabaseURLSecretID)
	if err != nil {
		return err
	}
	cfg.Databases.SQL.ConnectionString = url
	return nil
}
