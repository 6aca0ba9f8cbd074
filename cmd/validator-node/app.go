package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/ValidateOutput/internal/appmode"
	"github.com/UnendingLoop/ValidateOutput/internal/config"
	"github.com/UnendingLoop/ValidateOutput/internal/logger"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", fmt.Sprintf("path to the node config file (or $%s)", config.EnvConfig))
	flag.Parse()

	// загружаем конфиг: дефолты -> файл -> окружение
	cfg, err := config.Load(*configPath, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to launch validator-node: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appmode.RunNode(ctx, stop, cfg, log); err != nil {
		log.Error("validator node exited with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
