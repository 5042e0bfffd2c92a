package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nabin00012/codecommons-sub000/internal/authorization"
	"github.com/nabin00012/codecommons-sub000/internal/cache"
	"github.com/nabin00012/codecommons-sub000/internal/config"
	"github.com/nabin00012/codecommons-sub000/internal/data"
	"github.com/nabin00012/codecommons-sub000/internal/db"
	"github.com/nabin00012/codecommons-sub000/internal/handler"
	"github.com/nabin00012/codecommons-sub000/internal/kafka"
	"github.com/nabin00012/codecommons-sub000/internal/middleware"
	"github.com/nabin00012/codecommons-sub000/internal/service"
	"github.com/nabin00012/codecommons-sub000/internal/storage"
	"github.com/nabin00012/codecommons-sub000/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	var responseCache handler.Cache
	if cfg.RedisURL != "" {
		redisConn := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		responseCache = cache.NewRedisCache(redisConn)
	}

	var events service.EventSender
	if cfg.KafkaBrokers != "" {
		sender := kafka.NewEventSender(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaEventTopic)
		defer func() { _ = sender.Close() }()
		events = sender
	}

	files, err := newFileStore(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create file store", zap.Error(err))
	}

	tokens := authorization.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	users := data.NewUserRepository(pool)
	classrooms := data.NewClassroomRepository(pool)
	assignments := data.NewAssignmentRepository(pool)
	submissions := data.NewSubmissionRepository(pool)
	questions := data.NewQuestionRepository(pool)
	discussions := data.NewDiscussionRepository(pool)
	groups := data.NewGroupRepository(pool)
	communityEvents := data.NewEventRepository(pool)
	projects := data.NewProjectRepository(pool)
	corner := data.NewCornerRepository(pool)

	userService := service.NewUserService(users, tokens, events)
	classroomService := service.NewClassroomService(classrooms, files, events)
	assignmentService := service.NewAssignmentService(classrooms, assignments, submissions, questions, files, events)
	communityService := service.NewCommunityService(discussions, groups, communityEvents, projects)
	cornerService := service.NewCornerService(corner)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 25<<20) // upload cap plus form overhead
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		handler.NewAuthHandler(userService).RegisterRoutes(r)
		handler.NewUserHandler(userService).RegisterRoutes(r, authMiddleware)
		handler.NewClassroomHandler(classroomService, responseCache).RegisterRoutes(r, authMiddleware)
		handler.NewAssignmentHandler(assignmentService).RegisterRoutes(r, authMiddleware)
		handler.NewCommunityHandler(communityService).RegisterRoutes(r, authMiddleware)
		handler.NewCornerHandler(cornerService).RegisterRoutes(r, authMiddleware)
	})

	if cfg.StorageBackend == "disk" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.With(authMiddleware).Get("/uploads/*", fs.ServeHTTP)
	}

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}

func newFileStore(ctx context.Context, cfg *config.Config) (service.FileStore, error) {
	if cfg.StorageBackend == "s3" {
		return storage.NewS3(ctx, cfg)
	}
	return storage.NewDisk(cfg.UploadDir)
}
