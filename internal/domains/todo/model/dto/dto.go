package dto

import (
	"slices"
	"strings"
	"todolist/internal/domains/todo/model"
	"todolist/shared/timezone"

	"github.com/google/uuid"
)

const (
	NameLength        = 120
	DescriptionLength = 2048
)

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

type TaskRequest struct {
	ID          string `json:"id,omitempty"          validate:"omitempty,uuid"`
	Name        string `json:"name,omitempty"        validate:"max=120"`
	Description string `json:"description,omitempty" validate:"max=2048"`
}

// IsEmpty reports a task with neither name nor description. Such tasks are never stored.
func (t *TaskRequest) IsEmpty() bool {
	return isBlank(t.Name) && isBlank(t.Description)
}

func (t *TaskRequest) ToModel(todoID string, position int) model.Task {
	return model.Task{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		TodoID:      todoID,
		Position:    position,
	}
}

// TaskUpdate holds the columns rewritten when a task is reconciled in place.
type TaskUpdate struct {
	Name        string `db:"name"`
	Description string `db:"description"`
	Position    int    `db:"position"`
}

func (t *TaskRequest) ToUpdate(position int) TaskUpdate {
	return TaskUpdate{
		Name:        t.Name,
		Description: t.Description,
		Position:    position,
	}
}

type TodoRequest struct {
	ID          string        `json:"id,omitempty"          validate:"omitempty,uuid"`
	Name        string        `json:"name,omitempty"        validate:"max=120"`
	Description string        `json:"description,omitempty" validate:"max=2048"`
	Tasks       []TaskRequest `json:"tasks"                 validate:"dive"`
}

// IsEmpty reports a todo with neither name nor description.
func (t *TodoRequest) IsEmpty() bool {
	return isBlank(t.Name) && isBlank(t.Description)
}

// ToModel assigns a fresh id. Any id on the request is ignored.
func (t *TodoRequest) ToModel(owner string) model.Todo {
	return model.Todo{
		ID:          uuid.NewString(),
		Owner:       owner,
		Name:        t.Name,
		Description: t.Description,
		Created:     timezone.Now(),
	}
}

// TodoUpdate holds the columns rewritten on every update.
type TodoUpdate struct {
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (t *TodoRequest) ToUpdate() TodoUpdate {
	return TodoUpdate{
		Name:        t.Name,
		Description: t.Description,
	}
}

type TaskResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
}

func (r TaskResponse) Equal(other TaskResponse) bool {
	return r == other
}

type TodoResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Tasks       []TaskResponse `json:"tasks"`
}

// FromModel expects tasks already ordered by position.
func (r *TodoResponse) FromModel(todo model.Todo, tasks []model.Task) {
	r.ID = todo.ID
	r.Name = todo.Name
	r.Description = todo.Description

	r.Tasks = make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		r.Tasks[i].FromModel(task)
	}
}

// Equal compares id, name, description and the ordered task list.
func (r TodoResponse) Equal(other TodoResponse) bool {
	if r.ID != other.ID || r.Name != other.Name || r.Description != other.Description {
		return false
	}

	return slices.EqualFunc(r.Tasks, other.Tasks, TaskResponse.Equal)
}

// ContainsTodo reports whether todos holds a value equal to todo.
func ContainsTodo(todos []TodoResponse, todo TodoResponse) bool {
	return slices.ContainsFunc(todos, todo.Equal)
}
