package repository

//go:generate go run go.uber.org/mock/mockgen -source=./task.go -destination=../mocks/task_repository_mock.go -package=mocks

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

// Task has no owner column. Writes are scoped by (id, todo id) so a task id
// taken from another todo never matches.
type Task interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, task model.Task) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, tasks []model.Task) error
	FindByTodoID(ctx context.Context, todoID string) ([]model.Task, error)
	FindByTodoIDTx(ctx context.Context, sqltx *sqlx.Tx, todoID string) ([]model.Task, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, id, todoID string, fields map[string]any) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, id, todoID string) error
}

type taskRepository struct {
	gRepo.Repository[model.Task]
	otel otel.Otel
}

func NewTask(db *postgres.Connection, otel otel.Otel) Task {
	return &taskRepository{
		Repository: gRepo.NewRepository[model.Task](model.TaskEntityName, model.TaskTableName, db, otel),
		otel:       otel,
	}
}

func taskOfTodo(id, todoID string) gDto.Where {
	return shared.FilterByFields(model.TaskTableName, map[string]any{
		model.FieldID:     id,
		model.FieldTodoID: todoID,
	})
}

func tasksOfTodo(todoID string) gRepo.Query {
	return gRepo.Query{
		Where:   gDto.Where{gDto.Eq(model.TaskTableName, model.FieldTodoID, todoID)},
		OrderBy: model.TaskTableName + "." + model.FieldPosition + " ASC",
	}
}

func (r *taskRepository) FindByTodoID(ctx context.Context, todoID string) ([]model.Task, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.FindByTodoID")
	defer scope.End()

	return r.List(ctx, tasksOfTodo(todoID)) //nolint:wrapcheck
}

func (r *taskRepository) FindByTodoIDTx(ctx context.Context, sqltx *sqlx.Tx, todoID string) ([]model.Task, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.FindByTodoIDTx")
	defer scope.End()

	return r.ListTx(ctx, sqltx, tasksOfTodo(todoID)) //nolint:wrapcheck
}

func (r *taskRepository) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, id, todoID string, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.UpdateTx")
	defer scope.End()

	return r.Repository.UpdateTx(ctx, sqltx, fields, taskOfTodo(id, todoID)) //nolint:wrapcheck
}

func (r *taskRepository) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, id, todoID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.DeleteTx")
	defer scope.End()

	return r.Repository.DeleteTx(ctx, sqltx, taskOfTodo(id, todoID)) //nolint:wrapcheck
}
