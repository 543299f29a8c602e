package main

import (
	"TodoAuth/internal/auth"
	"TodoAuth/internal/config"
	"TodoAuth/internal/handlers"
	"TodoAuth/internal/middleware"
	"TodoAuth/internal/repo"
	"TodoAuth/internal/server"
	"TodoAuth/internal/service"
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig(config.DefaultTodoServiceAddr)

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// секрет общий с user-сервисом, иначе его токены здесь не пройдут
	codec, err := auth.NewCodec([]byte(cfg.AuthSecret), cfg.TokenTTL)
	if err != nil {
		sugar.Fatalw("invalid auth secret", "error", err)
	}

	var todoRepo repo.TodoRepository
	if cfg.DatabaseDSN == "" {
		sugar.Warnw("DATABASE_URI is empty, todos are kept in memory")
		todoRepo = repo.NewMemoryTodoRepository()
	} else {
		gormDB, err := repo.InitDB(cfg.DatabaseDSN)
		if err != nil {
			sugar.Fatalw("failed to initialize database", "error", err)
		}
		todoRepo = repo.NewTodoRepository(gormDB)
	}

	todoService := service.NewTodoService(todoRepo, sugar)
	h := handlers.NewTodoServiceHandler(todoService, codec, sugar)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"ServerURL", cfg.ServerURL,
	)

	if err := server.Run(ctx, cfg.BaseURL, h.Router, sugar); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
