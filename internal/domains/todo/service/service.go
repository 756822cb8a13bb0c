package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"todolist/infras/otel"
	"todolist/internal/domains/todo/model"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/repository"
	"todolist/shared"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	gRepo "todolist/shared/repository"
	"todolist/shared/result"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errMessageEmptyTodo  = "name or description is required"
	errMessageIDOnCreate = "id must not be set when creating a todo"
	errMessageMissingID  = "id is required when updating a todo"
	errMessageNotFound   = "todo not found"
)

// Todo reconciles submitted todos against stored ones. Every call is scoped to owner.
type Todo interface {
	Create(ctx context.Context, owner string, req dto.TodoRequest) (result.Result[dto.TodoResponse], error)
	Update(ctx context.Context, owner, id string, req dto.TodoRequest) (result.Result[dto.TodoResponse], error)
	Delete(ctx context.Context, owner, id string) (result.Result[dto.TodoResponse], error)
	Get(ctx context.Context, owner, id string) (dto.TodoResponse, error)
	GetAll(ctx context.Context, owner string, params gDto.QueryParams) ([]dto.TodoResponse, error)
}

type serviceImpl struct {
	todoRepo   repository.Todo
	taskRepo   repository.Task
	transactor gRepo.Transactor
	otel       otel.Otel
}

func New(todoRepo repository.Todo, taskRepo repository.Task, transactor gRepo.Transactor, otel otel.Otel) Todo {
	return &serviceImpl{
		todoRepo:   todoRepo,
		taskRepo:   taskRepo,
		transactor: transactor,
		otel:       otel,
	}
}

// Location is where a todo can be fetched and updated.
func Location(id string) string {
	return constant.RouteTodos + "/" + id
}

// Create stores the todo with fresh ids. Empty tasks are dropped but the
// remaining ones keep the position they had in the request.
func (s *serviceImpl) Create(ctx context.Context, owner string, req dto.TodoRequest) (res result.Result[dto.TodoResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.UnprocessableEntity(errMessageEmptyTodo) // nolint:wrapcheck
	}

	if req.ID != "" {
		return res, failure.UnprocessableEntity(errMessageIDOnCreate) // nolint:wrapcheck
	}

	todo := req.ToModel(owner)

	tasks := make([]model.Task, 0, len(req.Tasks))
	for position, task := range req.Tasks {
		if task.IsEmpty() {
			continue
		}

		task.ID = uuid.NewString()
		tasks = append(tasks, task.ToModel(todo.ID, position))
	}

	scope.SetAttributes(map[string]any{
		"todo.id":     todo.ID,
		"tasks.count": len(tasks),
	})

	var created dto.TodoResponse

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := s.todoRepo.InsertTx(ctx, sqltx, todo); err != nil {
			log.Error().Err(err).Msg("failed to insert todo")

			return fmt.Errorf("failed to insert todo: %w", err)
		}

		if err := s.taskRepo.InsertBulkTx(ctx, sqltx, tasks); err != nil {
			log.Error().Err(err).Msg("failed to insert tasks")

			return fmt.Errorf("failed to insert tasks: %w", err)
		}

		reloaded, err := s.load(ctx, sqltx, owner, todo.ID)
		if err != nil {
			return err
		}

		created = reloaded

		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	return result.Created(created), nil
}

// Update applies req to the stored todo and its tasks. A body id that differs
// from id is answered with a redirect to the body's location and nothing is written.
func (s *serviceImpl) Update(ctx context.Context, owner, id string, req dto.TodoRequest) (res result.Result[dto.TodoResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	if req.IsEmpty() {
		return res, failure.UnprocessableEntity(errMessageEmptyTodo) // nolint:wrapcheck
	}

	if req.ID == "" {
		return res, failure.UnprocessableEntity(errMessageMissingID) // nolint:wrapcheck
	}

	if req.ID != id {
		scope.AddEvent("redirect")

		return result.Redirect[dto.TodoResponse](Location(req.ID)), nil
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		todo, err := s.todoRepo.FindByIDTx(ctx, sqltx, owner, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get todo")

			return fmt.Errorf("failed to get todo: %w", err)
		}

		if todo.ID == "" {
			return failure.NotFound(errMessageNotFound) // nolint:wrapcheck
		}

		if err := s.todoRepo.UpdateTx(ctx, sqltx, owner, id, shared.TransformFields(req.ToUpdate())); err != nil {
			log.Error().Err(err).Msg("failed to update todo")

			return fmt.Errorf("failed to update todo: %w", err)
		}

		return s.reconcileTasks(ctx, sqltx, id, req.Tasks)
	})
	if err != nil {
		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	return result.NoContent[dto.TodoResponse](), nil
}

// reconcileTasks inserts tasks without id, updates the others in place and
// deletes every stored task the request no longer lists.
func (s *serviceImpl) reconcileTasks(ctx context.Context, sqltx *sqlx.Tx, todoID string, tasks []dto.TaskRequest) error {
	kept := make(map[string]struct{}, len(tasks))

	for position, task := range tasks {
		if task.IsEmpty() {
			continue
		}

		if task.ID == "" {
			task.ID = uuid.NewString()

			if err := s.taskRepo.InsertTx(ctx, sqltx, task.ToModel(todoID, position)); err != nil {
				log.Error().Err(err).Msg("failed to insert task")

				return fmt.Errorf("failed to insert task: %w", err)
			}
		} else {
			// scoped by todo id, so an id from another todo matches nothing
			if err := s.taskRepo.UpdateTx(ctx, sqltx, task.ID, todoID, shared.TransformFields(task.ToUpdate(position))); err != nil {
				log.Error().Err(err).Msg("failed to update task")

				return fmt.Errorf("failed to update task: %w", err)
			}
		}

		kept[task.ID] = struct{}{}
	}

	stored, err := s.taskRepo.FindByTodoIDTx(ctx, sqltx, todoID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return fmt.Errorf("failed to get tasks: %w", err)
	}

	for _, task := range stored {
		if _, ok := kept[task.ID]; ok {
			continue
		}

		if err := s.taskRepo.DeleteTx(ctx, sqltx, task.ID, todoID); err != nil {
			log.Error().Err(err).Msg("failed to delete task")

			return fmt.Errorf("failed to delete task: %w", err)
		}
	}

	return nil
}

// Delete does not check that the todo exists.
func (s *serviceImpl) Delete(ctx context.Context, owner, id string) (res result.Result[dto.TodoResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.todoRepo.Delete(ctx, owner, id); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return res, fmt.Errorf("failed to delete todo: %w", err)
	}

	return result.NoContent[dto.TodoResponse](), nil
}

func (s *serviceImpl) Get(ctx context.Context, owner, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.todoRepo.FindByID(ctx, owner, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	tasks, err := s.taskRepo.FindByTodoID(ctx, todo.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res.FromModel(todo, tasks)

	return res, nil
}

// GetAll lists the owner's todos oldest first. No todos is an empty list.
func (s *serviceImpl) GetAll(ctx context.Context, owner string, params gDto.QueryParams) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.todoRepo.FindAll(ctx, owner, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	res = make([]dto.TodoResponse, len(todos))
	for i, todo := range todos {
		tasks, err := s.taskRepo.FindByTodoID(ctx, todo.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get tasks")

			return nil, fmt.Errorf("failed to get tasks: %w", err)
		}

		res[i].FromModel(todo, tasks)
	}

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, sqltx *sqlx.Tx, owner, id string) (res dto.TodoResponse, err error) {
	todo, err := s.todoRepo.FindByIDTx(ctx, sqltx, owner, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload todo")

		return res, fmt.Errorf("failed to reload todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	tasks, err := s.taskRepo.FindByTodoIDTx(ctx, sqltx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload tasks")

		return res, fmt.Errorf("failed to reload tasks: %w", err)
	}

	res.FromModel(todo, tasks)

	return res, nil
}
