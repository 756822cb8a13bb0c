package repository

//go:generate go run go.uber.org/mock/mockgen -source=./todo.go -destination=../mocks/todo_repository_mock.go -package=mocks

import (
	"context"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/internal/domains/todo/model"
	"todolist/shared"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	gRepo "todolist/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Todo is scoped by owner on every call.
type Todo interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, todo model.Todo) error
	FindAll(ctx context.Context, owner string, params gDto.QueryParams) ([]model.Todo, error)
	FindByID(ctx context.Context, owner, id string) (model.Todo, error)
	FindByIDTx(ctx context.Context, sqltx *sqlx.Tx, owner, id string) (model.Todo, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, owner, id string, fields map[string]any) error
	Delete(ctx context.Context, owner, id string) error
}

type todoRepository struct {
	gRepo.Repository[model.Todo]
	otel otel.Otel
}

func NewTodo(db *postgres.Connection, otel otel.Otel) Todo {
	return &todoRepository{
		Repository: gRepo.NewRepository[model.Todo](model.TodoEntityName, model.TodoTableName, db, otel),
		otel:       otel,
	}
}

func ownedTodo(owner, id string) gDto.Where {
	return shared.FilterByFields(model.TodoTableName, map[string]any{
		model.FieldID:    id,
		model.FieldOwner: owner,
	})
}

func (r *todoRepository) FindAll(ctx context.Context, owner string, params gDto.QueryParams) ([]model.Todo, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindAll")
	defer scope.End()

	return r.List(ctx, gRepo.Query{ //nolint:wrapcheck
		Where:   gDto.Where{gDto.Eq(model.TodoTableName, model.FieldOwner, owner)},
		Columns: model.TodoColumns,
		OrderBy: model.TodoTableName + "." + model.FieldCreated + " ASC",
		Page:    params,
	})
}

func (r *todoRepository) FindByID(ctx context.Context, owner, id string) (model.Todo, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindByID")
	defer scope.End()

	return r.Get(ctx, gRepo.Query{Where: ownedTodo(owner, id), Columns: model.TodoColumns}) //nolint:wrapcheck
}

func (r *todoRepository) FindByIDTx(ctx context.Context, sqltx *sqlx.Tx, owner, id string) (model.Todo, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindByIDTx")
	defer scope.End()

	return r.GetTx(ctx, sqltx, gRepo.Query{Where: ownedTodo(owner, id), Columns: model.TodoColumns}) //nolint:wrapcheck
}

// UpdateTx touches nothing when (owner, id) has no row.
func (r *todoRepository) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, owner, id string, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.UpdateTx")
	defer scope.End()

	return r.Repository.UpdateTx(ctx, sqltx, fields, ownedTodo(owner, id)) //nolint:wrapcheck
}

// Delete is idempotent. Tasks go with the todo through the foreign key cascade.
func (r *todoRepository) Delete(ctx context.Context, owner, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Delete")
	defer scope.End()

	return r.Repository.Delete(ctx, ownedTodo(owner, id)) //nolint:wrapcheck
}
