package dto_test

import (
	"net/http/httptest"
	"testing"
	"todolist/shared/constant"
	"todolist/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected dto.QueryParams
	}{
		{
			name:     "page and limit",
			query:    "?page=2&limit=20",
			expected: dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:     "no parameters",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:     "limit only",
			query:    "?limit=5",
			expected: dto.QueryParams{Limit: 5},
		},
		{
			name:     "page only uses default limit",
			query:    "?page=3",
			expected: dto.QueryParams{Page: 3, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "invalid values are ignored",
			query:    "?page=abc&limit=-4",
			expected: dto.QueryParams{},
		},
		{
			name:     "zero page is ignored",
			query:    "?page=0&limit=7",
			expected: dto.QueryParams{Limit: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/todos"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.False(t, dto.QueryParams{Page: 3}.Paginated())
	assert.True(t, dto.QueryParams{Limit: 1}.Paginated())
}

func TestCondition_Clause(t *testing.T) {
	tests := []struct {
		name      string
		condition dto.Condition
		clause    string
		args      map[string]any
	}{
		{
			name:      "eq with table",
			condition: dto.Eq("todo", "id", "abc"),
			clause:    "todo.id = :todo_id",
			args:      map[string]any{"todo_id": "abc"},
		},
		{
			name:      "not eq without table",
			condition: dto.Condition{Column: "name", Operator: dto.OperatorNotEq, Value: "milk"},
			clause:    "name != :name",
			args:      map[string]any{"name": "milk"},
		},
		{
			name:      "in",
			condition: dto.In("task", "id", []string{"a", "b"}),
			clause:    "task.id IN (:task_id_0, :task_id_1)",
			args:      map[string]any{"task_id_0": "a", "task_id_1": "b"},
		},
		{
			name:      "empty in",
			condition: dto.In("task", "id", []string{}),
			clause:    "1 = 0",
			args:      map[string]any{},
		},
		{
			name:      "in with scalar",
			condition: dto.In("task", "id", "a"),
			clause:    "",
			args:      map[string]any{},
		},
		{
			name:      "unknown operator",
			condition: dto.Condition{Column: "name", Operator: "LIKE", Value: "x"},
			clause:    "",
			args:      map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.condition.Clause()

			assert.Equal(t, tt.clause, clause)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestWhere_Clause(t *testing.T) {
	where := dto.Where{
		dto.Eq("todo", "id", "abc"),
		dto.Condition{Column: "bogus", Operator: "~"},
		dto.Eq("todo", "username", "alice"),
	}

	clause, args := where.Clause()

	assert.Equal(t, "todo.id = :todo_id AND todo.username = :todo_username", clause)
	assert.Equal(t, map[string]any{"todo_id": "abc", "todo_username": "alice"}, args)

	empty, emptyArgs := dto.Where{}.Clause()
	assert.Empty(t, empty)
	assert.Empty(t, emptyArgs)
}
