package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-loyalty/internal/client"
	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/denmor86/ya-loyalty/internal/storage"
	"github.com/denmor86/ya-loyalty/internal/validators"
)

type OrdersService interface {
	AddOrder(ctx context.Context, login string, number string) (*models.OrderData, error)
	GetOrders(ctx context.Context, login string) ([]models.OrderData, error)
	GetPendingOrders(ctx context.Context, count int) ([]string, error)
	ProcessOrder(ctx context.Context, number string) error
}

type Orders struct {
	Orders  storage.OrdersStorage
	Users   storage.UsersStorage
	Accrual client.AccrualService
	Timeout time.Duration
}

var (
	ErrOrderAlreadyUploaded   = errors.New("order already uploaded by this user")
	ErrOrderUploadedByAnother = errors.New("order already uploaded by another user")
	ErrInvalidOrderNumber     = errors.New("invalid order number")

	// ErrAccrualTimeout - внешний сервис не ответил за отведённое время,
	// заказ остаётся в прежнем статусе
	ErrAccrualTimeout = errors.New("accrual request timed out")
)

// Создание сервиса
func NewOrders(orders storage.OrdersStorage, users storage.UsersStorage, accrual client.AccrualService, timeout time.Duration) *Orders {
	return &Orders{Orders: orders, Users: users, Accrual: accrual, Timeout: timeout}
}

// AddOrder - регистрация нового заказа, проверяя, не был ли он уже добавлен
// этим или другим пользователем
func (s *Orders) AddOrder(ctx context.Context, login string, number string) (*models.OrderData, error) {
	if !validators.CheckNumber(number) {
		return nil, ErrInvalidOrderNumber
	}

	// Получаем пользователя по логину
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}

	// Проверяем, был ли уже добавлен заказ с таким номером
	existingOrder, err := s.Orders.GetOrder(ctx, number)
	if err != nil && !errors.Is(err, storage.ErrOrderNotFound) {
		return nil, err
	}

	if existingOrder != nil {
		// Если заказ добавлен текущим пользователем
		if existingOrder.UserID == user.UserID {
			return nil, ErrOrderAlreadyUploaded
		}
		// Если заказ добавлен другим пользователем
		return nil, ErrOrderUploadedByAnother
	}

	order, err := s.Orders.AddOrder(ctx, number, user.UserID)
	if err != nil {
		// Гонка двух загрузок одного номера: заказ успел появиться
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrOrderUploadedByAnother
		}
		return nil, err
	}

	return order, nil
}

// GetOrders - список заказов пользователя в порядке загрузки
func (s *Orders) GetOrders(ctx context.Context, login string) ([]models.OrderData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}
	return s.Orders.GetOrders(ctx, user.UserID)
}

// GetPendingOrders - номера заказов, ожидающих расчёта начисления
func (s *Orders) GetPendingOrders(ctx context.Context, count int) ([]string, error) {
	return s.Orders.GetPendingOrders(ctx, count)
}

// ProcessOrder - прогон заказа по жизненному циклу расчёта.
// Повторный вызов для заказа в конечном статусе - no-op без побочных эффектов.
// Перевод статуса и зачисление выполняются хранилищем атомарно
func (s *Orders) ProcessOrder(ctx context.Context, number string) error {
	order, err := s.Orders.GetOrder(ctx, number)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	sum, rawStatus, err := s.Accrual.GetOrderAccrual(reqCtx, number)
	if err != nil {
		// заказ неизвестен системе расчёта - вознаграждения не будет
		if errors.Is(err, client.ErrOrderNotRegistered) {
			return s.Orders.AdvanceOrder(ctx, number, models.OrderStatusInvalid, 0)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("order %s: %w", number, ErrAccrualTimeout)
		}
		return err
	}

	target, err := models.ParseOrderStatus(rawStatus)
	if err != nil {
		return err
	}

	switch target {
	case models.OrderStatusRegistered, models.OrderStatusProcessing:
		// расчёт ещё идёт
		if order.Status == models.OrderStatusRegistered {
			return s.Orders.AdvanceOrder(ctx, number, models.OrderStatusProcessing, 0)
		}
		return nil
	case models.OrderStatusInvalid:
		return s.Orders.AdvanceOrder(ctx, number, models.OrderStatusInvalid, 0)
	case models.OrderStatusProcessed:
		// в PROCESSED можно попасть только из PROCESSING
		if order.Status == models.OrderStatusRegistered {
			if err := s.Orders.AdvanceOrder(ctx, number, models.OrderStatusProcessing, 0); err != nil {
				return err
			}
		}
		if err := s.Orders.AdvanceOrder(ctx, number, models.OrderStatusProcessed, sum); err != nil {
			return err
		}
		logger.Info("Order processed", number, "accrual", sum)
		return nil
	}
	return nil
}
