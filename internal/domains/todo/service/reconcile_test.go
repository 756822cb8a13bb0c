package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/infras/otel/mocks"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/repository"
	"todolist/internal/domains/todo/service"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	gRepo "todolist/shared/repository"
	"todolist/shared/result"
	"todolist/shared/testutil"
)

func newStoredService(t *testing.T) service.Todo {
	t.Helper()

	db := testutil.NewConnection(t)
	ot := mocks.NewOtel()

	return service.New(
		repository.NewTodo(db, ot),
		repository.NewTask(db, ot),
		gRepo.NewTransactor(db, ot),
		ot,
	)
}

func create(t *testing.T, svc service.Todo, who string, req dto.TodoRequest) dto.TodoResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), who, req)
	require.NoError(t, err)
	require.Equal(t, result.KindCreated, res.Kind)
	require.NotNil(t, res.Body)

	return *res.Body
}

func toRequest(todo dto.TodoResponse) dto.TodoRequest {
	req := dto.TodoRequest{ID: todo.ID, Name: todo.Name, Description: todo.Description, Tasks: []dto.TaskRequest{}}
	for _, task := range todo.Tasks {
		req.Tasks = append(req.Tasks, dto.TaskRequest{ID: task.ID, Name: task.Name, Description: task.Description})
	}

	return req
}

func TestReconcile_Scenario(t *testing.T) {
	ctx := context.Background()
	svc := newStoredService(t)

	created := create(t, svc, owner, dto.TodoRequest{Name: "A", Tasks: []dto.TaskRequest{{Name: "t1"}}})
	require.Len(t, created.Tasks, 1)
	assert.NotEmpty(t, created.Tasks[0].ID)
	oldTaskID := created.Tasks[0].ID

	fetched, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.True(t, created.Equal(fetched), "expected %+v, got %+v", created, fetched)

	res, err := svc.Update(ctx, owner, created.ID, dto.TodoRequest{
		ID:    created.ID,
		Name:  "A",
		Tasks: []dto.TaskRequest{{Name: "t2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, result.KindNoContent, res.Kind)

	fetched, err = svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tasks, 1)
	assert.Equal(t, "t2", fetched.Tasks[0].Name)
	assert.NotEqual(t, oldTaskID, fetched.Tasks[0].ID)

	res, err = svc.Update(ctx, owner, created.ID, dto.TodoRequest{ID: taskA, Name: "A"})
	require.NoError(t, err)
	assert.True(t, res.IsRedirect())
	assert.Equal(t, "/todos/"+taskA, res.Location)

	_, err = svc.Update(ctx, owner, todoID, dto.TodoRequest{ID: todoID, Name: "A"})
	assert.True(t, failure.IsNotFound(err))

	res, err = svc.Delete(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, result.KindNoContent, res.Kind)

	_, err = svc.Get(ctx, owner, created.ID)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Delete(ctx, owner, created.ID)
	assert.NoError(t, err)
}

func TestReconcile_CreateKeepsOriginalPositions(t *testing.T) {
	svc := newStoredService(t)

	created := create(t, svc, owner, dto.TodoRequest{
		Description: "only a description",
		Tasks: []dto.TaskRequest{
			{Name: "first"},
			{Name: "  ", Description: ""},
			{Description: "third"},
		},
	})

	require.Len(t, created.Tasks, 2)
	assert.Equal(t, "first", created.Tasks[0].Name)
	assert.Equal(t, "third", created.Tasks[1].Description)
	assert.NotEqual(t, created.Tasks[0].ID, created.Tasks[1].ID)
}

func TestReconcile_ReorderKeepsIdentifiers(t *testing.T) {
	ctx := context.Background()
	svc := newStoredService(t)

	created := create(t, svc, owner, dto.TodoRequest{
		Name:  "A",
		Tasks: []dto.TaskRequest{{Name: "one"}, {Name: "two"}, {Name: "three"}},
	})

	req := toRequest(created)
	req.Tasks[0], req.Tasks[2] = req.Tasks[2], req.Tasks[0]

	_, err := svc.Update(ctx, owner, created.ID, req)
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tasks, 3)
	assert.Equal(t, []string{"three", "two", "one"}, []string{fetched.Tasks[0].Name, fetched.Tasks[1].Name, fetched.Tasks[2].Name})
	assert.Equal(t, created.Tasks[2].ID, fetched.Tasks[0].ID)
	assert.Equal(t, created.Tasks[0].ID, fetched.Tasks[2].ID)
}

func TestReconcile_ForeignTaskIsUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newStoredService(t)

	mine := create(t, svc, owner, dto.TodoRequest{Name: "mine", Tasks: []dto.TaskRequest{{Name: "keep"}}})
	theirs := create(t, svc, "bob", dto.TodoRequest{Name: "theirs", Tasks: []dto.TaskRequest{{Name: "private"}}})
	foreignID := theirs.Tasks[0].ID

	req := toRequest(mine)
	req.Tasks = append(req.Tasks, dto.TaskRequest{ID: foreignID, Name: "hijacked"})

	_, err := svc.Update(ctx, owner, mine.ID, req)
	require.NoError(t, err)

	fetchedTheirs, err := svc.Get(ctx, "bob", theirs.ID)
	require.NoError(t, err)
	assert.True(t, theirs.Equal(fetchedTheirs))

	fetchedMine, err := svc.Get(ctx, owner, mine.ID)
	require.NoError(t, err)
	assert.True(t, mine.Equal(fetchedMine))
}

func TestReconcile_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	svc := newStoredService(t)

	theirs := create(t, svc, "bob", dto.TodoRequest{Name: "theirs"})

	_, err := svc.Get(ctx, owner, theirs.ID)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Update(ctx, owner, theirs.ID, dto.TodoRequest{ID: theirs.ID, Name: "mine now"})
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Delete(ctx, owner, theirs.ID)
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, "bob", theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "theirs", fetched.Name)
}

func TestReconcile_ListOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	svc := newStoredService(t)

	empty, err := svc.GetAll(ctx, owner, gDto.QueryParams{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := create(t, svc, owner, dto.TodoRequest{Name: "first", Tasks: []dto.TaskRequest{{Name: "a"}}})
	second := create(t, svc, owner, dto.TodoRequest{Name: "second"})
	create(t, svc, "bob", dto.TodoRequest{Name: "not mine"})

	todos, err := svc.GetAll(ctx, owner, gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.True(t, first.Equal(todos[0]))
	assert.True(t, second.Equal(todos[1]))
	assert.True(t, dto.ContainsTodo(todos, second))

	page, err := svc.GetAll(ctx, owner, gDto.QueryParams{Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)
}
