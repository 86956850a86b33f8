package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-loyalty/internal/config"
	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/services"
	"github.com/denmor86/ya-loyalty/internal/services/mocks"
	"github.com/denmor86/ya-loyalty/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestSettlementWorker_ProcessBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	worker := NewSettlementWorker(mockOrders, 10, time.Second)

	mockOrders.EXPECT().GetPendingOrders(gomock.Any(), 10).Return([]string{"123", "456"}, nil)
	mockOrders.EXPECT().ProcessOrder(gomock.Any(), "123").Return(nil)
	mockOrders.EXPECT().ProcessOrder(gomock.Any(), "456").Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	worker.ProcessBatch(ctx)
}

func TestSettlementWorker_ProcessBatch_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	worker := NewSettlementWorker(mockOrders, 10, time.Second)

	// при недоступном списке заказов пачка пропускается
	mockOrders.EXPECT().GetPendingOrders(gomock.Any(), 10).Return(nil, errors.New("failed to get pending orders"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	worker.ProcessBatch(ctx)
}

func TestSettlementWorker_RetryOnTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	worker := NewSettlementWorker(mockOrders, 10, time.Second)

	// таймаут внешнего сервиса - временный сбой, заказ пробуется повторно
	gomock.InOrder(
		mockOrders.EXPECT().ProcessOrder(gomock.Any(), "123").Return(services.ErrAccrualTimeout),
		mockOrders.EXPECT().ProcessOrder(gomock.Any(), "123").Return(nil),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := worker.processOrder(ctx, "123"); err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
}

func TestSettlementWorker_NoRetryOnIllegalTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	worker := NewSettlementWorker(mockOrders, 10, time.Second)

	// бизнес-ошибка не повторяется
	mockOrders.EXPECT().ProcessOrder(gomock.Any(), "123").Return(storage.ErrIllegalTransition).Times(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := worker.processOrder(ctx, "123")
	if !errors.Is(err, storage.ErrIllegalTransition) {
		t.Errorf("Expected ErrIllegalTransition, got '%v'", err)
	}
}
