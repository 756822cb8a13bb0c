package shared_test

import (
	"reflect"
	"testing"
	"todolist/shared"
)

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Name        string `db:"name"`
		Description string `db:"description"`
		Position    int    `db:"position"`
		NoDBTag     string
		IgnoredTag  string `db:"-"`
	}

	tests := []struct {
		name     string
		data     interface{}
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Name:        "groceries",
				Description: "weekly",
				Position:    2,
				NoDBTag:     "ignored",
				IgnoredTag:  "ignored",
			},
			expected: map[string]any{
				"name":        "groceries",
				"description": "weekly",
				"position":    2,
			},
		},
		{
			name: "zero values are kept",
			data: TestStruct{Name: "groceries"},
			expected: map[string]any{
				"name":        "groceries",
				"description": "",
				"position":    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFilterByFields(t *testing.T) {
	result := shared.FilterByFields("task", map[string]any{
		"todo_id": "todo-1",
		"id":      "task-1",
	})

	where, args := result.Clause()

	if where != "task.id = :task_id AND task.todo_id = :task_todo_id" {
		t.Errorf("unexpected where clause: %s", where)
	}

	expectedArgs := map[string]any{"task_id": "task-1", "task_todo_id": "todo-1"}
	if !reflect.DeepEqual(args, expectedArgs) {
		t.Errorf("expected args %v, got %v", expectedArgs, args)
	}

	if len(shared.FilterByFields("task", nil)) != 0 {
		t.Error("expected no conditions for no fields")
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "all parts", parts: []string{"limiter", "127.0.0.1", "curl"}, expected: "limiter:127.0.0.1:curl"},
		{name: "empty parts skipped", parts: []string{"limiter", "", "curl"}, expected: "limiter:curl"},
		{name: "no parts", parts: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
