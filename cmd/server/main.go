package main

import (
	"context"
	"log"

	"github.com/devlinkhq/devlink/adapters/event"
	"github.com/devlinkhq/devlink/adapters/github"
	httpAdapter "github.com/devlinkhq/devlink/adapters/http"
	"github.com/devlinkhq/devlink/adapters/persistence"
	authUC "github.com/devlinkhq/devlink/internal/application/usecase/auth"
	postUC "github.com/devlinkhq/devlink/internal/application/usecase/post"
	profileUC "github.com/devlinkhq/devlink/internal/application/usecase/profile"
	"github.com/devlinkhq/devlink/internal/config"
	"github.com/devlinkhq/devlink/pkg/auth"
	"github.com/devlinkhq/devlink/pkg/logger"
	"github.com/devlinkhq/devlink/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devlink-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool)
	profileCache := persistence.NewRedisProfileCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	githubClient := github.NewClient(cfg)

	// Use cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)

	profileUseCase := profileUC.NewProfileUseCase(profileRepo, profileCache, appLogger)
	deleteAccountUseCase := profileUC.NewDeleteAccountUseCase(postRepo, profileRepo, userRepo, kafkaClient, profileCache, appLogger)
	githubReposUseCase := profileUC.NewGithubReposUseCase(githubClient, appLogger)

	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, userRepo, kafkaClient, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo, kafkaClient, appLogger)
	likePostUseCase := postUC.NewLikePostUseCase(postRepo)
	commentPostUseCase := postUC.NewCommentPostUseCase(postRepo, userRepo)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, currentUserUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, deleteAccountUseCase, githubReposUseCase, appLogger)
	postHandler := httpAdapter.NewPostHandler(
		createPostUseCase,
		listPostsUseCase,
		getPostUseCase,
		deletePostUseCase,
		likePostUseCase,
		commentPostUseCase,
	)

	router := httpAdapter.NewRouter(authHandler, profileHandler, postHandler, jwtSvc, appLogger)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
