package appmode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/ValidateOutput/internal/config"
	"github.com/UnendingLoop/ValidateOutput/internal/processor"
	"github.com/UnendingLoop/ValidateOutput/internal/transport"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// RunNode serves the validator node until ctx is cancelled or the server fails.
func RunNode(ctx context.Context, stop context.CancelFunc, cfg *config.NodeConfig, log *zap.Logger) error {
	defer stop()

	// получить экземпляр сервера
	srv := transport.NewNodeServer(cfg.Address, processor.New(nil, log), cfg.MaxContentBytes, log)

	// запуск сервера
	serveErr := make(chan error, 1)
	go func() {
		log.Info("validator node running", zap.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			serveErr <- err
			stop()
			return
		}
		serveErr <- nil
	}()

	<-ctx.Done()

	// закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown validator node correctly", zap.String("address", cfg.Address), zap.Error(err))
		return err
	}
	log.Info("validator node server is closed", zap.String("address", cfg.Address))

	return <-serveErr
}
