package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUser = `INSERT INTO users (id, login, password)
				  VALUES ($1, $2, $3)
				  RETURNING id, login, password, balance, created_on, updated_on;`
	getUser = `SELECT id, login, password, balance, created_on, updated_on FROM users WHERE login=$1;`

	getUserBalance = `SELECT users.balance AS balance, COALESCE(SUM(withdraws.accrual), 0) AS withdrawn
					  FROM
					      users
					  LEFT JOIN
					      withdraws ON users.id = withdraws.user_id
					  WHERE
					      users.login = $1
					  GROUP BY
					      users.balance;`
)

type UserDatabase struct {
	Pool PgxPool
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{Pool: db.Pool}
}

// AddUser - регистрация нового пользователя. Временные метки выставляет
// хранилище (DEFAULT NOW()), баланс при создании нулевой
func (s *UserDatabase) AddUser(ctx context.Context, login string, passwordHash string) (*models.UserData, error) {
	var user models.UserData
	userID := uuid.New().String()

	err := s.Pool.QueryRow(ctx, insertUser, userID, login, passwordHash).Scan(
		&user.UserID,
		&user.Login,
		&user.PasswordHash,
		&user.Balance,
		&user.CreatedOn,
		&user.UpdatedOn,
	)

	if err == nil {
		return &user, nil
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrAlreadyExists
	}

	// Все остальные ошибки
	return nil, fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	var user models.UserData
	err := s.Pool.QueryRow(ctx, getUser, login).Scan(
		&user.UserID,
		&user.Login,
		&user.PasswordHash,
		&user.Balance,
		&user.CreatedOn,
		&user.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserBalance - получение баланса и суммы списанных баллов пользователя
func (s *UserDatabase) GetUserBalance(ctx context.Context, login string) (*models.UserBalance, error) {
	var (
		current   int64
		withdrawn int64
	)

	err := s.Pool.QueryRow(ctx, getUserBalance, login).Scan(
		&current,
		&withdrawn,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user balance: %w", err)
	}

	return &models.UserBalance{
		Current:   current,
		Withdrawn: withdrawn,
	}, nil
}
