package todo

import (
	"net/http"
	"todolist/infras/otel"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/service"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	"todolist/shared/validator"
	"todolist/transport/http/middleware"
	"todolist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const errMessageNotFound = "todo not found"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteTodos, func(routerGroup chi.Router) {
		routerGroup.Get("/whoami", handler.WhoAmI)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// pathID returns the id path parameter. Anything that is not a UUID cannot
// name a stored todo and is reported as not found.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)
	if err := uuid.Validate(id); err != nil {
		return "", failure.NotFound(errMessageNotFound)
	}

	return id, nil
}

// WhoAmI returns the authenticated owner.
// @Summary Current owner
// @Description Returns the name todos are stored under for the authenticated caller.
// @Tags Todo
// @Produce json
// @Success 200 {string} string "Owner name"
// @Failure 401 {object} response.Error
// @Router /todos/whoami [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WhoAmI")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, middleware.Owner(r.Context()))
}

// GetTodos retrieves the caller's todos.
// @Summary List todos
// @Description Retrieve every todo of the caller in creation order, optionally paginated.
// @Tags Todo
// @Produce json
// @Param page query int false "Page number, 1-based. Implies limit=10 when limit is absent"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.TodoResponse "List of todos"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	todos, err := handler.service.GetAll(ctx, middleware.Owner(ctx), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID retrieves a todo by its ID.
// @Summary Get a todo
// @Description Retrieve one todo with its tasks in order.
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Todo details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [get]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, err := pathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Get(ctx, middleware.Owner(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get todo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo retrieved successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// CreateTodo handles the creation of a new todo.
// @Summary Create a todo
// @Description Store a todo and its tasks. Ids are assigned by the server.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.TodoRequest true "Todo without ids"
// @Success 201 {object} dto.TodoResponse "Stored todo"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [post]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.TodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	owner := middleware.Owner(ctx)

	res, err := handler.service.Create(ctx, owner, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created successfully by " + owner)

	response.WithResult(w, res)
}

// UpdateTodo reconciles a stored todo with the submitted one.
// @Summary Update a todo
// @Description Replace name, description and tasks. Tasks without an id are added, missing ones are removed.
// @Tags Todo
// @Accept json
// @Param id path string true "Todo ID"
// @Param request body dto.TodoRequest true "Todo with its id"
// @Success 204 "Todo updated"
// @Success 301 "Body id differs from the path, resubmit at Location"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, err := pathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.TodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	owner := middleware.Owner(ctx)

	res, err := handler.service.Update(ctx, owner, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully by " + owner)

	response.WithResult(w, res)
}

// DeleteTodo deletes a todo by its ID.
// @Summary Delete a todo
// @Description Delete a todo and its tasks. Deleting an unknown id succeeds.
// @Tags Todo
// @Param id path string true "Todo ID"
// @Success 204 "Todo deleted"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, err := pathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	owner := middleware.Owner(ctx)

	res, err := handler.service.Delete(ctx, owner, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully by " + owner)

	response.WithResult(w, res)
}
