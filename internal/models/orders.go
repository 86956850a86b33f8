package models

import (
	"fmt"
	"time"
)

// OrderStatus - статус расчёта вознаграждения по заказу
type OrderStatus string

// Статусы заказов
const (
	// OrderStatusRegistered - заказ зарегистрирован, начисление не рассчитано
	OrderStatusRegistered OrderStatus = "REGISTERED"
	// OrderStatusProcessing - расчёт начисления в процессе
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusProcessed - расчёт завершён, вознаграждение зачислено
	OrderStatusProcessed OrderStatus = "PROCESSED"
	// OrderStatusInvalid - заказ не принят к расчёту, вознаграждения не будет
	OrderStatusInvalid OrderStatus = "INVALID"
)

// Таблица допустимых переходов статусов:
// REGISTERED -> PROCESSING | INVALID
// PROCESSING -> PROCESSED  | INVALID
// PROCESSED и INVALID - конечные состояния
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusRegistered: {
		OrderStatusProcessing: true,
		OrderStatusInvalid:    true,
	},
	OrderStatusProcessing: {
		OrderStatusProcessed: true,
		OrderStatusInvalid:   true,
	},
	OrderStatusProcessed: {},
	OrderStatusInvalid:   {},
}

// ParseOrderStatus - преобразует строку из хранилища в статус заказа
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(value)
	if _, ok := orderTransitions[status]; !ok {
		return "", fmt.Errorf("unknown order status %q", value)
	}
	return status, nil
}

// Terminal - сообщает, является ли статус конечным
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanAdvance - проверяет допустимость перехода в статус target.
// Переход в текущий статус переходом не считается.
func (s OrderStatus) CanAdvance(target OrderStatus) bool {
	return orderTransitions[s][target]
}

// OrderData - модель заказа пользователя из хранилища
type OrderData struct {
	Number    string
	UserID    string
	Status    OrderStatus
	Sum       int64
	CreatedOn time.Time
	UpdatedOn time.Time
}
