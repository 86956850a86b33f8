package storage

import (
	"context"
	"errors"

	"github.com/denmor86/ya-loyalty/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, login string, passwordHash string) (*models.UserData, error)
	GetUser(ctx context.Context, login string) (*models.UserData, error)
	GetUserBalance(ctx context.Context, login string) (*models.UserBalance, error)
}

type OrdersStorage interface {
	AddOrder(ctx context.Context, number string, userID string) (*models.OrderData, error)
	GetOrder(ctx context.Context, number string) (*models.OrderData, error)
	GetOrders(ctx context.Context, userID string) ([]models.OrderData, error)
	GetPendingOrders(ctx context.Context, count int) ([]string, error)
	AdvanceOrder(ctx context.Context, number string, target models.OrderStatus, sum int64) error
}

type WithdrawalsStorage interface {
	AddWithdrawal(ctx context.Context, userID string, orderNumber string, amount int64) (*models.WithdrawalData, error)
	GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error)
}

// Storage - агрегат всех хранилищ сервиса
type Storage struct {
	UsersStorage
	OrdersStorage
	WithdrawalsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		UsersStorage:       NewUsersStorage(db),
		OrdersStorage:      NewOrdersStorage(db),
		WithdrawalsStorage: NewWithdrawalsStorage(db),
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")

	// ErrIllegalTransition - недопустимый переход статуса заказа
	ErrIllegalTransition = errors.New("illegal order status transition")
	// ErrInsufficientFunds - на балансе недостаточно средств для списания
	ErrInsufficientFunds = errors.New("insufficient funds")
)
