package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse - ответ внешнего сервиса расчёта начислений.
// Сумма приходит дробным числом, разбирается без потери точности
type OrderResponse struct {
	Order   string          `json:"order"`
	Status  string          `json:"status"`
	Accrual decimal.Decimal `json:"accrual,omitempty"`
}

// AccrualService - клиент внешнего сервиса расчёта начислений.
// Возвращает сумму начисления в минимальных единицах валюты и статус расчёта
type AccrualService interface {
	GetOrderAccrual(ctx context.Context, orderNumber string) (int64, string, error)
}

var (
	ErrServiceUnavailable = errors.New("accrual service unavailable")
	ErrOrderNotRegistered = errors.New("order not registered")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
