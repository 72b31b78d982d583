package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_gateway/internal/auth"
	"github.com/shenikar/civic_gateway/internal/config"
	v1 "github.com/shenikar/civic_gateway/internal/handler/http/v1"
	"github.com/shenikar/civic_gateway/internal/ratelimit"
	"github.com/shenikar/civic_gateway/internal/repository"
	"github.com/shenikar/civic_gateway/internal/service"
	"github.com/shenikar/civic_gateway/internal/webhook"
	"github.com/shenikar/civic_gateway/pkg/logger"
	redisclient "github.com/shenikar/civic_gateway/pkg/redis"

	_ "github.com/shenikar/civic_gateway/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Gov-X India API
// @version 1.0.0
// @description AI-Powered Civic Engagement gateway: issues feed, reporting and profile endpoints.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Провайдер идентификации
	verifier := newVerifier(ctx, cfg, log)

	// Redis необязателен: без него события не публикуются и лимит отключен
	var (
		publisher   webhook.IssueEventPublisher = webhook.NoopPublisher{}
		limiter     ratelimit.Limiter
		workerDone  <-chan struct{}
		redisClient *goredis.Client
	)
	if cfg.RedisEnabled() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisEventPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		workerDone = webhook.NewWorker(redisClient, log, cfg).Start(ctx)

		if cfg.IssueRateLimit > 0 {
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.IssueRateLimit, cfg.IssueRateWindow)
			log.WithField("limit", cfg.IssueRateLimit).WithField("window", cfg.IssueRateWindow).Info("Issue rate limit enabled")
		}
	} else {
		log.Info("REDIS_ADDR is not set, issue events and rate limit are disabled")
	}

	// Инициализация репозиториев
	catalogRepo := repository.NewCatalogRepository()

	// Инициализация сервисов
	issueService := service.NewIssueService(catalogRepo, log, publisher)
	profileService := service.NewProfileService()

	// Инициализация хэндлеров
	handler := v1.NewHandler(issueService, profileService, verifier, limiter, log, cfg)

	// Настройка Gin роутера
	router := v1.NewRouter(handler)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и ждем завершения текущей доставки
	cancel()
	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}

// newVerifier выбирает провайдера по AUTH_PROVIDER. Ошибка инициализации
// Firebase не останавливает сервис: защищенные маршруты отвечают 401.
func newVerifier(ctx context.Context, cfg *config.Config, log *logrus.Logger) auth.TokenVerifier {
	if cfg.AuthProvider == config.AuthProviderJWT {
		log.Warn("Using local JWT verifier, not intended for production")
		return auth.NewJWTVerifier(cfg.JWTSecret)
	}

	if cfg.FirebaseConfig == "" {
		log.Warn("FIREBASE_CONFIG environment variable not set, authentication is disabled")
		return auth.UnavailableVerifier{}
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseConfig, cfg.FirebaseProjectID)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize Firebase, authentication is disabled")
		return auth.UnavailableVerifier{}
	}
	log.Info("Firebase Admin SDK initialized")
	return verifier
}
