package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	// Пользователь блокируется на время списания: проверка баланса не может
	// гоняться с параллельным списанием или зачислением
	lockUserBalance = `SELECT balance FROM users WHERE id=$1 FOR UPDATE;`

	checkOrderExists = `SELECT EXISTS(SELECT 1 FROM orders WHERE number=$1);`

	debitUserBalance = `UPDATE users
						SET balance = balance - $1,
						    updated_on = NOW()
						WHERE id = $2;`

	insertWithdrawal = `INSERT INTO withdraws (user_id, order_number, accrual)
						VALUES ($1, $2, $3)
						RETURNING order_number, user_id, accrual, updated_on;`

	getWithdrawals = `SELECT order_number, user_id, accrual, updated_on FROM withdraws
					  WHERE user_id=$1 ORDER BY updated_on;`
)

type WithdrawalDatabase struct {
	Pool PgxPool
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{Pool: db.Pool}
}

// AddWithdrawal - списание баллов за заказ и запись о выводе средств в одной
// транзакции. Баланс проверяется под блокировкой строки пользователя, заказ
// с неизвестным номером отклоняется
func (s *WithdrawalDatabase) AddWithdrawal(ctx context.Context, userID string, orderNumber string, amount int64) (*models.WithdrawalData, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("AddWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Проверяем существование заказа
	var orderExists bool
	err = tx.QueryRow(ctx, checkOrderExists, orderNumber).Scan(&orderExists)
	if err != nil {
		return nil, fmt.Errorf("failed to check order: %w", err)
	}
	if !orderExists {
		err = ErrOrderNotFound
		return nil, err
	}

	// 2. Блокируем строку пользователя и проверяем достаточность средств
	var balance int64
	err = tx.QueryRow(ctx, lockUserBalance, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrUserNotFound
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock user balance: %w", err)
	}
	if amount > balance {
		err = ErrInsufficientFunds
		return nil, err
	}

	// 3. Уменьшаем баланс пользователя
	_, err = tx.Exec(ctx, debitUserBalance, amount, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to debit user balance: %w", err)
	}

	// 4. Добавляем запись о выводе
	var withdrawal models.WithdrawalData
	err = tx.QueryRow(ctx, insertWithdrawal, userID, orderNumber, amount).Scan(
		&withdrawal.OrderNumber,
		&withdrawal.UserID,
		&withdrawal.Accrual,
		&withdrawal.UpdatedOn,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert withdrawal: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("AddWithdrawal. Commit failed: %w", err)
	}

	return &withdrawal, nil
}

func (s *WithdrawalDatabase) GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error) {
	var withdrawals []models.WithdrawalData
	rows, err := s.Pool.Query(ctx, getWithdrawals, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var withdrawal models.WithdrawalData
		err := rows.Scan(
			&withdrawal.OrderNumber,
			&withdrawal.UserID,
			&withdrawal.Accrual,
			&withdrawal.UpdatedOn,
		)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, withdrawal)
	}
	return withdrawals, rows.Err()
}
