package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/shared/constant"
	"todolist/shared/dto"
	"todolist/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

// runner is satisfied by both *sqlx.DB and *sqlx.Tx.
type runner interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Query narrows a read. An empty Columns selects every mapped column and an
// empty OrderBy leaves ordering to the database.
type Query struct {
	Where   dto.Where
	Columns []string
	OrderBy string
	Page    dto.QueryParams
}

// Repository maps the db tagged fields of T onto a single table.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	columns []string
}

func NewRepository[T any](entity, table string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:      db,
		otel:    otl,
		table:   table,
		entity:  entity,
		columns: columnsOf(reflect.TypeFor[T]()),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) selectQuery(q Query) (string, map[string]any) {
	columns := repo.columns
	if len(q.Columns) > 0 {
		columns = slices.DeleteFunc(slices.Clone(repo.columns), func(col string) bool {
			return !slices.Contains(q.Columns, col)
		})
	}

	qualified := make([]string, len(columns))
	for i, col := range columns {
		qualified[i] = repo.table + "." + col
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(qualified, ", "), repo.table)

	where, args := q.Where.Clause()
	if where != "" {
		sb.WriteString(" WHERE " + where)
	}

	if q.OrderBy != "" {
		sb.WriteString(" ORDER BY " + q.OrderBy)
	}

	if q.Page.Paginated() {
		args["limit"] = q.Page.Limit
		args["offset"] = q.Page.Offset()

		sb.WriteString(" LIMIT :limit OFFSET :offset")
	}

	return sb.String(), args
}

func (repo *Repository[T]) insert(ctx context.Context, run runner, arg any) error {
	ctx, scope := repo.scope(ctx, "insert")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := run.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

// InsertBulkTx writes all models in one statement.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, sqltx, models)
}

func (repo *Repository[T]) get(ctx context.Context, run runner, q Query) (T, error) {
	ctx, scope := repo.scope(ctx, "get")
	defer scope.End()

	var model T

	query, args := repo.selectQuery(q)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := run.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// Get returns the zero value when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, q Query) (T, error) {
	return repo.get(ctx, repo.db.Read, q)
}

func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, q Query) (T, error) {
	return repo.get(ctx, sqltx, q)
}

func (repo *Repository[T]) list(ctx context.Context, run runner, q Query) ([]T, error) {
	ctx, scope := repo.scope(ctx, "list")
	defer scope.End()

	models := []T{}

	query, args := repo.selectQuery(q)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := run.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "list data", err)
	}

	return models, nil
}

func (repo *Repository[T]) List(ctx context.Context, q Query) ([]T, error) {
	return repo.list(ctx, repo.db.Read, q)
}

func (repo *Repository[T]) ListTx(ctx context.Context, sqltx *sqlx.Tx, q Query) ([]T, error) {
	return repo.list(ctx, sqltx, q)
}

// UpdateTx sets fields on every row matching where. Matching nothing is not
// an error.
func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, where dto.Where) error {
	ctx, scope := repo.scope(ctx, "update")
	defer scope.End()

	clause, args := where.Clause()
	if clause == "" || len(fields) == 0 {
		return errRequiredFilter
	}

	columns := slices.Sorted(maps.Keys(fields))

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = :set_%s", col, col)
		args["set_"+col] = fields[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", repo.table, strings.Join(assignments, ", "), clause)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) delete(ctx context.Context, run runner, where dto.Where) error {
	ctx, scope := repo.scope(ctx, "delete")
	defer scope.End()

	clause, args := where.Clause()
	if clause == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", repo.table, clause)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := run.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

// Delete refuses to run without a filter.
func (repo *Repository[T]) Delete(ctx context.Context, where dto.Where) error {
	return repo.delete(ctx, repo.db.Write, where)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, where dto.Where) error {
	return repo.delete(ctx, sqltx, where)
}

func columnsOf(typ reflect.Type) []string {
	columns := []string{}

	for i := range typ.NumField() {
		tag := typ.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}

		columns = append(columns, tag)
	}

	return columns
}
