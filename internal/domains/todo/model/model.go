package model

import "time"

const (
	TodoTableName  = "todo"
	TodoEntityName = "todo"

	TaskTableName  = "task"
	TaskEntityName = "task"

	FieldID          = "id"
	FieldOwner       = "username"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCreated     = "created"
	FieldTodoID      = "todo_id"
	FieldPosition    = "position"
)

// TodoColumns leaves out created, which only drives ordering.
var TodoColumns = []string{FieldID, FieldOwner, FieldName, FieldDescription}

type Todo struct {
	ID          string    `db:"id"`
	Owner       string    `db:"username"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Created     time.Time `db:"created"`
}

type Task struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	TodoID      string `db:"todo_id"`
	Position    int    `db:"position"`
}
