package models

import "time"

// UserData - модель пользователя из хранилища.
// Balance хранится в минимальных единицах валюты (копейках)
type UserData struct {
	UserID       string
	Login        string
	PasswordHash string
	Balance      int64
	CreatedOn    time.Time
	UpdatedOn    time.Time
}

// UserBalance - текущий баланс пользователя и сумма списанных средств
type UserBalance struct {
	Current   int64 `json:"current"`
	Withdrawn int64 `json:"withdrawn"`
}
