package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/denmor86/ya-loyalty/internal/config"
	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/services"
	"github.com/denmor86/ya-loyalty/internal/storage"
	"github.com/denmor86/ya-loyalty/internal/worker"
)

// Run - собирает сервис и крутит воркер расчёта начислений до сигнала останова.
// Хранилище открывается здесь и закрывается при завершении
func Run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.NewDatabase(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error close database", err)
		}
	}()

	if err := db.Initialize(ctx); err != nil {
		return err
	}

	store := storage.NewStorage(db)
	accrual := services.NewAccrualService(cfg.Accrual.AccrualAddr)
	orders := services.NewOrders(store, store, accrual, cfg.Accrual.AccrualTimeout)

	// Создание и запуск воркера
	settlement := worker.NewSettlementWorker(orders, cfg.Accrual.BatchSize, cfg.Accrual.PollInterval)
	settlement.Start(ctx)

	logger.Info("Settlement worker started, config:", cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutdown service")
	settlement.Stop()
	logger.Info("Service stopped")
	return nil
}
