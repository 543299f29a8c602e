package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"TodoAuth/internal/cli/commands"
	"TodoAuth/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + flags; BaseURL клиенту не нужен, важны USER_SERVICE_URL и TODO_SERVICE_URL
	cfg := config.NewConfig(config.DefaultUserServiceAddr)

	if cfg.Version {
		printVersion()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("TodoAuth CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
