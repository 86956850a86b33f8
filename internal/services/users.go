package services

import (
	"context"
	"errors"

	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/denmor86/ya-loyalty/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UsersService interface {
	RegisterUser(ctx context.Context, login string, password string) (*models.UserData, error)
}

type Users struct {
	Users storage.UsersStorage
}

// Создание сервиса
func NewUsers(users storage.UsersStorage) *Users {
	return &Users{Users: users}
}

// RegisterUser - регистрация нового пользователя.
// Пароль в хранилище не попадает, сохраняется только bcrypt-хэш
func (s *Users) RegisterUser(ctx context.Context, login string, password string) (*models.UserData, error) {
	logger.Info("Register user:", login)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return nil, err
	}

	user, err := s.Users.AddUser(ctx, login, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", login)
			return nil, ErrUserAlreadyExists
		}
		logger.Error("Error registering user", login, err)
		return nil, err
	}
	return user, nil
}
