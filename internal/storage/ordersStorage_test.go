package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/ya-loyalty/internal/config"
	"github.com/denmor86/ya-loyalty/internal/logger"
	"github.com/denmor86/ya-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestOrderDatabase_AdvanceOrder(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	const (
		orderNumber = "79927398713"
		userID      = "6a5d8f2e-3d3f-4a19-9c22-8a1f6f1f9b01"
	)

	testCases := []struct {
		TestName  string
		Target    models.OrderStatus
		Sum       int64
		SetupMock func(mock pgxmock.PgxPoolIface)
		Error     error
	}{
		{
			TestName: "Success. Settle credits owner balance #1",
			Target:   models.OrderStatusProcessed,
			Sum:      500,
			SetupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT user_id, status FROM orders").
					WithArgs(orderNumber).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "status"}).
						AddRow(userID, "PROCESSING"))
				mock.ExpectExec("UPDATE orders").
					WithArgs("PROCESSED", int64(500), orderNumber).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				// зачисление владельцу в той же транзакции
				mock.ExpectExec("UPDATE users").
					WithArgs(int64(500), userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			Error: nil,
		},
		{
			TestName: "Success. Sum dropped for non-settled target #2",
			Target:   models.OrderStatusInvalid,
			Sum:      500,
			SetupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT user_id, status FROM orders").
					WithArgs(orderNumber).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "status"}).
						AddRow(userID, "PROCESSING"))
				// сумма обнуляется, баланс не трогаем
				mock.ExpectExec("UPDATE orders").
					WithArgs("INVALID", int64(0), orderNumber).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			Error: nil,
		},
		{
			TestName: "Success. Same status is no-op #3",
			Target:   models.OrderStatusProcessing,
			Sum:      0,
			SetupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT user_id, status FROM orders").
					WithArgs(orderNumber).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "status"}).
						AddRow(userID, "PROCESSING"))
				mock.ExpectCommit()
			},
			Error: nil,
		},
		{
			TestName: "Error. Transition out of terminal status #4",
			Target:   models.OrderStatusProcessing,
			Sum:      0,
			SetupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT user_id, status FROM orders").
					WithArgs(orderNumber).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "status"}).
						AddRow(userID, "PROCESSED"))
				mock.ExpectRollback()
			},
			Error: ErrIllegalTransition,
		},
		{
			TestName: "Error. Unknown order #5",
			Target:   models.OrderStatusProcessing,
			Sum:      0,
			SetupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT user_id, status FROM orders").
					WithArgs(orderNumber).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			Error: ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("Failed to create pool mock: %v", err)
			}
			defer mock.Close()
			tc.SetupMock(mock)

			store := &OrderDatabase{Pool: mock}
			err = store.AdvanceOrder(context.Background(), orderNumber, tc.Target, tc.Sum)

			if tc.Error == nil {
				if err != nil {
					t.Errorf("Expected no error, got '%v'", err)
				}
			} else if !errors.Is(err, tc.Error) {
				t.Errorf("Expected error '%v', got '%v'", tc.Error, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("Unfulfilled expectations: %v", err)
			}
		})
	}
}
