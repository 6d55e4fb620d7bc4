package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todolist/internal/config"
	"todolist/internal/core"
	"todolist/internal/db"
	"todolist/internal/http/handler"
	"todolist/internal/http/payload"
	"todolist/internal/http/server"
	"todolist/internal/repository"
	"todolist/internal/session"
	"todolist/internal/view"
	"todolist/pkg/jwt"
	"todolist/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
)

const redisPingTimeout = 5 * time.Second

func Start() error {
	logger := log.NewZapLogger("todolist", zapcore.InfoLevel)

	if err := config.LoadDotEnv(); err != nil {
		logger.Errorw("failed to load .env file", "error", err)
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewTodoRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// sessions
	redisOpts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		logger.Errorw("invalid redis url", "error", err)
		return err
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Errorw("redis connection failed", "error", err)
		return err
	}

	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	sessions, err := session.NewStore(redisClient, jwtService, config.StoreSecret, session.Options{
		Secure: config.Production,
	})
	if err != nil {
		logger.Errorw("failed to create session store", "error", err)
		return err
	}

	// todo service
	todoService := core.NewTodoService(logger, repo)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.DecodeValidator{},
		todoService,
		sessions,
		renderer)

	router := handler.NewRouter(logger, todoHlr, sessions)

	srv := server.NewHTTP(logger, router, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
