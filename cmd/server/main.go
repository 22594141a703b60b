// @title         resume-screening API
// @version       1.0
// @description   Сервис оценки соответствия резюме описанию вакансии: навыки, опыт, семантическая близость и тип роли.
// @BasePath      /api
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен администратора. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	_ "github.com/artem13815/hr/screening/docs"

	// internal imports
	apihttp "github.com/artem13815/hr/screening/api/http"
	"github.com/artem13815/hr/screening/api/http/handlers"
	"github.com/artem13815/hr/screening/pkg/analysis"
	"github.com/artem13815/hr/screening/pkg/config"
	"github.com/artem13815/hr/screening/pkg/events"
	"github.com/artem13815/hr/screening/pkg/health"
	"github.com/artem13815/hr/screening/pkg/health/checkers"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/security/jwt"
	"github.com/artem13815/hr/screening/pkg/storage"
	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

func main() {
	// Load configuration from env/.env/config.yaml
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.AppEnv, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opened, err := storage.OpenModelStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer opened.Close()
	log.Info("model store ready", "store", opened.Store.Name(), "key", opened.Store.Key())

	instanceID := uuid.New()
	var notifier analysis.ModelNotifier = events.Nop{}
	var broker *events.Broker
	if cfg.RabbitMQURL != "" {
		broker, err = events.Dial(cfg.RabbitMQURL, instanceID, opened.Store.Name(), opened.Store.Key(), log)
		if err != nil {
			return err
		}
		defer broker.Close()
		notifier = broker
	}

	engine := analysis.NewEngine(opened.Store, analysis.WithLogger(log), analysis.WithNotifier(notifier))
	if err := engine.Load(ctx); err != nil {
		log.Warn("could not load persisted model, starting unfitted", "err", err)
	}
	if cfg.Pretrain && engine.ModelState() == vectorizer.Unfitted {
		if err := engine.Train(ctx); err != nil {
			log.Warn("pretrain", "err", err)
		}
	}

	var readiness health.ReadinessUseCase
	if opened.Pool != nil {
		readiness = health.NewService(checkers.NewPostgresChecker(opened.Pool))
	} else {
		readiness = health.NewService(checkers.NewModelStoreChecker(opened.Store))
	}

	maxBytes := int64(cfg.MaxUploadMB) << 20
	app := apihttp.NewApp(apihttp.Options{
		// multipart framing and the job description ride on top of the file
		BodyLimit:   int(maxBytes) + 1<<20,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
	})

	var trainGuard []fiber.Handler
	if cfg.AuthEnabled() {
		trainGuard = append(trainGuard, jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), jwt.RequireAdmin())
	} else {
		log.Warn("JWT_SECRET is empty, /api/train is not protected")
	}

	apihttp.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewResumeHandler(engine, maxBytes, log),
		handlers.NewAnalysisHandler(engine, log),
		trainGuard...,
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "port", cfg.Port, "env", cfg.AppEnv, "instance_id", instanceID)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	if broker != nil {
		g.Go(func() error {
			if err := broker.Consume(gctx, engine); err != nil {
				log.Error("model update consumer stopped", "err", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}
