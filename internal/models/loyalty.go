package models

import "time"

// WithdrawalData - модель записи о списании баллов за заказ.
// Accrual - списанная сумма в минимальных единицах валюты
type WithdrawalData struct {
	OrderNumber string
	UserID      string
	Accrual     int64
	UpdatedOn   time.Time
}
