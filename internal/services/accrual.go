package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/denmor86/ya-loyalty/internal/client"
	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/shopspring/decimal"
)

// Сумма во внешнем сервисе - дробное число баллов,
// в хранилище - целое число минимальных единиц
var minorUnitsFactor = decimal.NewFromInt(100)

type AccrualService struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

func NewAccrualService(baseURL string) client.AccrualService {
	return &AccrualService{
		Client:  client.NewClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

// GetOrderAccrual - запрос расчёта начисления по заказу у внешнего сервиса.
// Сумма возвращается в минимальных единицах валюты
func (s *AccrualService) GetOrderAccrual(ctx context.Context, orderNumber string) (int64, string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return 0, "", err
	}

	resp, err := s.Client.GetOrder(ctx, orderNumber)
	if err != nil {
		// проверка большого количества запросов
		if rateLimitErr, ok := err.(*client.RateLimitError); ok {
			logger.Warn("Too many requests to accrual service:", orderNumber)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return 0, string(models.OrderStatusProcessing), nil
		}
		// при ошибке статус не возвращаем: сбой запроса - не вердикт по заказу
		return 0, "", err
	}
	// проверяем возможные статусы
	if _, parseErr := models.ParseOrderStatus(resp.Status); parseErr != nil {
		logger.Error("Undefined status request:", resp.Status)
		return 0, "", fmt.Errorf("undefined status request %s", resp.Status)
	}
	return resp.Accrual.Mul(minorUnitsFactor).IntPart(), resp.Status, nil
}
