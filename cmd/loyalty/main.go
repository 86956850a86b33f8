package main

import (
	"fmt"

	"github.com/denmor86/ya-loyalty/internal/app"
	"github.com/denmor86/ya-loyalty/internal/config"
	"github.com/denmor86/ya-loyalty/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск сервиса
	if err := app.Run(config); err != nil {
		logger.Panic("service failed:", err)
	}
}
