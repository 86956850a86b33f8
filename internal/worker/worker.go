package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/services"
	"github.com/denmor86/ya-loyalty/internal/storage"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "accrual-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучаться до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s -> %s", name, from, to)
		},
	})
}

// SettlementWorker - фоновый воркер расчёта начислений по заказам
type SettlementWorker struct {
	Orders       services.OrdersService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewSettlementWorker - конструктор обработчика системы расчёта вознаграждений
func NewSettlementWorker(orders services.OrdersService, batchSize int, pollInterval time.Duration) *SettlementWorker {
	return &SettlementWorker{
		Orders:       orders,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    batchSize,
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *SettlementWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *SettlementWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *SettlementWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SettlementWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch - обработка пачки ожидающих заказов
func (w *SettlementWorker) ProcessBatch(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return
	}

	orderNumbers, err := w.Orders.GetPendingOrders(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error get orders for processing", err)
		return
	}

	for _, orderNumber := range orderNumbers {
		if err := w.processOrder(ctx, orderNumber); err != nil {
			logger.Error("Error order processing", orderNumber, err)
		}
	}
}

// processOrder - обработка одного заказа с ограниченным числом повторов.
// Повторяются только временные сбои (таймаут внешнего сервиса, недоступность),
// бизнес-ошибки отдаются сразу
func (w *SettlementWorker) processOrder(ctx context.Context, orderNumber string) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Orders.ProcessOrder(ctx, orderNumber)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, services.ErrAccrualTimeout) {
			return retry.RetryableError(err)
		}
		if errors.Is(err, storage.ErrIllegalTransition) || errors.Is(err, storage.ErrOrderNotFound) {
			return err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return err
		}
		return retry.RetryableError(err)
	})
}
