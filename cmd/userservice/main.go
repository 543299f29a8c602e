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
	cfg := config.NewConfig(config.DefaultUserServiceAddr)

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	//сброс буфера логгера
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	codec, err := auth.NewCodec([]byte(cfg.AuthSecret), cfg.TokenTTL)
	if err != nil {
		sugar.Fatalw("invalid auth secret", "error", err)
	}

	var userRepo repo.UserRepository
	if cfg.DatabaseDSN == "" {
		sugar.Warnw("DATABASE_URI is empty, users are kept in memory")
		userRepo = repo.NewMemoryUserRepository()
	} else {
		gormDB, err := repo.InitDB(cfg.DatabaseDSN)
		if err != nil {
			sugar.Fatalw("failed to initialize database", "error", err)
		}
		userRepo = repo.NewUserRepository(gormDB)
	}

	userService := service.NewUserService(userRepo, codec, cfg.BcryptCost)
	h := handlers.NewUserServiceHandler(userService, sugar)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"ServerURL", cfg.ServerURL,
		"TokenTTL", cfg.TokenTTL,
		"BcryptCost", cfg.BcryptCost,
	)

	if err := server.Run(ctx, cfg.BaseURL, h.Router, sugar); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
