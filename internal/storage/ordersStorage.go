package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	insertOrder = `INSERT INTO orders (number, user_id, status, sum)
				   VALUES ($1, $2, $3, $4)
				   RETURNING number, user_id, status, sum, created_on, updated_on;`
	getOrder  = `SELECT number, user_id, status, sum, created_on, updated_on FROM orders WHERE number=$1;`
	getOrders = `SELECT number, user_id, status, sum, created_on, updated_on FROM orders
				 WHERE user_id=$1 ORDER BY created_on;`
	getPendingOrders = `SELECT number FROM orders
						WHERE status = 'REGISTERED' OR status = 'PROCESSING'
						ORDER BY created_on
						LIMIT $1;`

	// Заказ блокируется на время перехода, конкурирующие расчёты
	// по одному номеру выполняются строго по очереди
	lockOrder = `SELECT user_id, status FROM orders WHERE number=$1 FOR UPDATE;`

	updateOrderStatus = `UPDATE orders
						 SET status = $1,
						     sum = $2,
						     updated_on = NOW()
						 WHERE number = $3;`
	creditUserBalance = `UPDATE users
						 SET balance = balance + $1,
						     updated_on = NOW()
						 WHERE id = $2;`
)

type OrderDatabase struct {
	Pool PgxPool
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{Pool: db.Pool}
}

// AddOrder - добавление заказа в начальном статусе REGISTERED
func (s *OrderDatabase) AddOrder(ctx context.Context, number string, userID string) (*models.OrderData, error) {
	var (
		order  models.OrderData
		status string
	)
	err := s.Pool.QueryRow(ctx, insertOrder, number, userID, string(models.OrderStatusRegistered), 0).Scan(
		&order.Number,
		&order.UserID,
		&status,
		&order.Sum,
		&order.CreatedOn,
		&order.UpdatedOn,
	)

	if err == nil {
		order.Status = models.OrderStatus(status)
		return &order, nil
	}

	// Проверяем именно нарушение уникальности номера
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrAlreadyExists
	}

	// Все остальные ошибки
	return nil, fmt.Errorf("failed to add order: %w", err)
}

func (s *OrderDatabase) GetOrder(ctx context.Context, number string) (*models.OrderData, error) {
	var (
		order  models.OrderData
		status string
	)

	err := s.Pool.QueryRow(ctx, getOrder, number).Scan(
		&order.Number,
		&order.UserID,
		&status,
		&order.Sum,
		&order.CreatedOn,
		&order.UpdatedOn,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Status, err = models.ParseOrderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order status: %w", err)
	}
	return &order, nil
}

func (s *OrderDatabase) GetOrders(ctx context.Context, userID string) ([]models.OrderData, error) {
	var orders []models.OrderData
	rows, err := s.Pool.Query(ctx, getOrders, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			order  models.OrderData
			status string
		)
		err := rows.Scan(
			&order.Number,
			&order.UserID,
			&status,
			&order.Sum,
			&order.CreatedOn,
			&order.UpdatedOn,
		)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		order.Status = models.OrderStatus(status)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// GetPendingOrders - номера заказов, ожидающих расчёта начисления
func (s *OrderDatabase) GetPendingOrders(ctx context.Context, count int) ([]string, error) {
	var numbers []string
	rows, err := s.Pool.Query(ctx, getPendingOrders, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderNumber string
		err := rows.Scan(&orderNumber)
		if err != nil {
			return numbers, fmt.Errorf("failed scan pending order number: %w", err)
		}
		numbers = append(numbers, orderNumber)
	}
	return numbers, rows.Err()
}

// AdvanceOrder - перевод заказа в статус target в одной транзакции.
// Допустимость перехода проверяется под блокировкой строки заказа.
// Переход в PROCESSED записывает сумму начисления и зачисляет её на баланс
// владельца той же транзакцией: сбой между записью статуса и зачислением
// невозможен. Переход в текущий статус - no-op.
func (s *OrderDatabase) AdvanceOrder(ctx context.Context, number string, target models.OrderStatus, sum int64) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("AdvanceOrder. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Блокируем строку заказа и читаем текущий статус
	var (
		userID    string
		rawStatus string
	)
	err = tx.QueryRow(ctx, lockOrder, number).Scan(&userID, &rawStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrOrderNotFound
			return err
		}
		return fmt.Errorf("failed to lock order: %w", err)
	}

	current, err := models.ParseOrderStatus(rawStatus)
	if err != nil {
		return fmt.Errorf("failed to parse order status: %w", err)
	}

	// Повторный перевод в тот же статус - идемпотентный no-op
	if current == target {
		err = tx.Commit(ctx)
		return err
	}

	if !current.CanAdvance(target) {
		err = fmt.Errorf("order %s: %s -> %s: %w", number, current, target, ErrIllegalTransition)
		return err
	}

	// Сумма заказа фиксируется только при завершении расчёта
	if target != models.OrderStatusProcessed {
		sum = 0
	}
	_, err = tx.Exec(ctx, updateOrderStatus, string(target), sum, number)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	// Зачисление вознаграждения владельцу заказа. Выполняется не более
	// одного раза: повторный вход в PROCESSED запрещён таблицей переходов
	if target == models.OrderStatusProcessed && sum > 0 {
		_, err = tx.Exec(ctx, creditUserBalance, sum, userID)
		if err != nil {
			return fmt.Errorf("failed to credit user balance: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("AdvanceOrder. Commit failed: %w", err)
	}

	return nil
}
