package services

import (
	"context"
	"errors"

	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/denmor86/ya-loyalty/internal/storage"
	"github.com/denmor86/ya-loyalty/internal/validators"
	"go.uber.org/zap"
)

var (
	ErrInsufficientFunds       = errors.New("insufficient funds for withdrawal")
	ErrInvalidWithdrawalAmount = errors.New("invalid withdrawal amount")
)

type LoyaltyService interface {
	GetBalance(ctx context.Context, login string) (*models.UserBalance, error)
	GetWithdrawals(ctx context.Context, login string) ([]models.WithdrawalData, error)
	ProcessWithdraw(ctx context.Context, login string, orderNumber string, amount int64) (*models.WithdrawalData, error)
}

type Loyalty struct {
	Withdrawals storage.WithdrawalsStorage
	Users       storage.UsersStorage
}

// Создание сервиса
func NewLoyalty(withdrawals storage.WithdrawalsStorage, users storage.UsersStorage) LoyaltyService {
	return &Loyalty{Withdrawals: withdrawals, Users: users}
}

// GetBalance возвращает баланс баллов пользователя и сумму списаний
func (s *Loyalty) GetBalance(ctx context.Context, login string) (*models.UserBalance, error) {
	userBalance, err := s.Users.GetUserBalance(ctx, login)
	if err != nil {
		logger.Error("Failed to get user balance", zap.Error(err))
		return nil, err
	}

	return userBalance, nil
}

// GetWithdrawals возвращает список всех списаний пользователя по его логину
func (s *Loyalty) GetWithdrawals(ctx context.Context, login string) ([]models.WithdrawalData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", login)
			return nil, storage.ErrUserNotFound
		}
		logger.Error("Error getting user", zap.Error(err))
		return nil, err
	}

	withdrawals, err := s.Withdrawals.GetWithdrawals(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to get withdrawals:", zap.Error(err))
		return nil, err
	}

	return withdrawals, nil
}

// ProcessWithdraw - списание баллов за заказ. Сумма указывается в минимальных
// единицах валюты. Проверка достаточности средств и само списание выполняются
// хранилищем в одной транзакции под блокировкой строки пользователя
func (s *Loyalty) ProcessWithdraw(ctx context.Context, login string, orderNumber string, amount int64) (*models.WithdrawalData, error) {
	if amount <= 0 {
		return nil, ErrInvalidWithdrawalAmount
	}
	if !validators.CheckNumber(orderNumber) {
		return nil, ErrInvalidOrderNumber
	}

	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	withdrawal, err := s.Withdrawals.AddWithdrawal(ctx, user.UserID, orderNumber, amount)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}

	return withdrawal, nil
}
