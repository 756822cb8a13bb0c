package repository

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"
	"fmt"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/shared/constant"
	"todolist/shared/logger"

	"github.com/jmoiron/sqlx"
)

// TxFunc runs inside a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, sqltx *sqlx.Tx) error

type Transactor interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type transactor struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewTransactor(dbConnection *postgres.Connection, otl otel.Otel) Transactor {
	return &transactor{
		db:   dbConnection,
		otel: otl,
	}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (t *transactor) WithinTx(ctx context.Context, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithinTx")
	defer scope.End()

	sqltx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer sqltx.Rollback() //nolint:errcheck

	if err = fn(ctx, sqltx); err != nil {
		scope.TraceError(err)

		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
