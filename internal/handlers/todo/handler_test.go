package todo_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todolist/infras/otel/mocks"
	"todolist/internal/domains/todo/model/dto"
	serviceMocks "todolist/internal/domains/todo/service/mocks"
	"todolist/internal/handlers/todo"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	"todolist/shared/result"
	"todolist/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	owner   = "alice"
	todoID  = "7d4a1c2e-5b9f-4c1a-9e3d-2f6b8a0c1d11"
	otherID = "9e1f2a3b-4c5d-4e6f-8a7b-0c1d2e3f4a55"
)

func newRouter(t *testing.T) (*serviceMocks.MockTodo, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockTodo(ctrl)

	handler := todo.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithOwner(r.Context(), owner)))
		})
	})
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_WhoAmI(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodGet, "/todos/whoami", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"alice"`, rec.Body.String())
}

func TestHandler_GetTodos(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), owner, gDto.QueryParams{Page: 2, Limit: 5}).
		Return([]dto.TodoResponse{{ID: todoID, Name: "A", Tasks: []dto.TaskResponse{}}}, nil)

	rec := serve(router, http.MethodGet, "/todos?page=2&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"`+todoID+`","name":"A","tasks":[]}]`, rec.Body.String())
}

func TestHandler_GetTodoByID(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(svc *serviceMocks.MockTodo)
		wantCode int
		wantBody string
	}{
		{
			name: "found",
			path: "/todos/" + todoID,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Get(gomock.Any(), owner, todoID).
					Return(dto.TodoResponse{ID: todoID, Name: "A", Tasks: []dto.TaskResponse{}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"id":"` + todoID + `","name":"A","tasks":[]}`,
		},
		{
			name: "not found",
			path: "/todos/" + todoID,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Get(gomock.Any(), owner, todoID).Return(dto.TodoResponse{}, failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"todo not found"}`,
		},
		{
			name:     "not a uuid",
			path:     "/todos/42",
			setup:    func(_ *serviceMocks.MockTodo) {},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"todo not found"}`,
		},
		{
			name: "storage error",
			path: "/todos/" + todoID,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Get(gomock.Any(), owner, todoID).Return(dto.TodoResponse{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *serviceMocks.MockTodo)
		wantCode int
	}{
		{
			name: "created",
			body: `{"name":"A","tasks":[{"name":"t1"}]}`,
			setup: func(svc *serviceMocks.MockTodo) {
				req := dto.TodoRequest{Name: "A", Tasks: []dto.TaskRequest{{Name: "t1"}}}
				svc.EXPECT().Create(gomock.Any(), owner, req).
					Return(result.Created(dto.TodoResponse{ID: todoID, Name: "A"}), nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			setup:    func(_ *serviceMocks.MockTodo) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "name too long",
			body:     `{"name":"` + strings.Repeat("x", dto.NameLength+1) + `"}`,
			setup:    func(_ *serviceMocks.MockTodo) {},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "empty todo",
			body: `{"tasks":[{"name":"t1"}]}`,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Create(gomock.Any(), owner, gomock.Any()).
					Return(result.Result[dto.TodoResponse]{}, failure.UnprocessableEntity("name or description is required"))
			},
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodPost, "/todos", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateTodo(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(svc *serviceMocks.MockTodo)
		wantCode     int
		wantLocation string
	}{
		{
			name: "updated",
			body: `{"id":"` + todoID + `","name":"B"}`,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Update(gomock.Any(), owner, todoID, dto.TodoRequest{ID: todoID, Name: "B"}).
					Return(result.NoContent[dto.TodoResponse](), nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "redirect",
			body: `{"id":"` + otherID + `","name":"B"}`,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Update(gomock.Any(), owner, todoID, gomock.Any()).
					Return(result.Redirect[dto.TodoResponse]("/todos/"+otherID), nil)
			},
			wantCode:     http.StatusMovedPermanently,
			wantLocation: "/todos/" + otherID,
		},
		{
			name: "not found",
			body: `{"id":"` + todoID + `","name":"B"}`,
			setup: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Update(gomock.Any(), owner, todoID, gomock.Any()).
					Return(result.Result[dto.TodoResponse]{}, failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "task id not a uuid",
			body:     `{"id":"` + todoID + `","name":"B","tasks":[{"id":"x","name":"t"}]}`,
			setup:    func(_ *serviceMocks.MockTodo) {},
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodPut, "/todos/"+todoID, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), owner, todoID).Return(result.NoContent[dto.TodoResponse](), nil)

	rec := serve(router, http.MethodDelete, "/todos/"+todoID, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
