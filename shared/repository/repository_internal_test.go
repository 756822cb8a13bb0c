package repository

import (
	"context"
	"testing"
	"todolist/infras/otel/mocks"
	"todolist/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID       string `db:"id"`
	Body     string `db:"body"`
	Position int    `db:"position"`
	Skipped  string `db:"-"`
	Untagged string
}

func newNotes() Repository[note] {
	return NewRepository[note]("note", "notes", nil, mocks.NewOtel())
}

func TestColumnsOf(t *testing.T) {
	assert.Equal(t, []string{"id", "body", "position"}, newNotes().columns)
}

func TestRepository_InsertQuery(t *testing.T) {
	repo := newNotes()

	assert.Equal(t, "INSERT INTO notes (id, body, position) VALUES (:id, :body, :position)", repo.insertQuery())
}

func TestRepository_SelectQuery(t *testing.T) {
	repo := newNotes()

	tests := []struct {
		name  string
		query Query
		sql   string
		args  map[string]any
	}{
		{
			name:  "everything",
			query: Query{},
			sql:   "SELECT notes.id, notes.body, notes.position FROM notes",
			args:  map[string]any{},
		},
		{
			name: "filtered and ordered",
			query: Query{
				Where:   dto.Where{dto.Eq("notes", "id", "n1")},
				Columns: []string{"position", "id"},
				OrderBy: "notes.position ASC",
			},
			sql:  "SELECT notes.id, notes.position FROM notes WHERE notes.id = :notes_id ORDER BY notes.position ASC",
			args: map[string]any{"notes_id": "n1"},
		},
		{
			name:  "paginated",
			query: Query{Page: dto.QueryParams{Page: 3, Limit: 5}},
			sql:   "SELECT notes.id, notes.body, notes.position FROM notes LIMIT :limit OFFSET :offset",
			args:  map[string]any{"limit": 5, "offset": 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := repo.selectQuery(tt.query)

			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestRepository_RequiresFilter(t *testing.T) {
	repo := newNotes()
	ctx := context.Background()

	require.ErrorIs(t, repo.UpdateTx(ctx, nil, map[string]any{"body": "x"}, nil), errRequiredFilter)
	require.ErrorIs(t, repo.UpdateTx(ctx, nil, nil, dto.Where{dto.Eq("notes", "id", "n1")}), errRequiredFilter)
	require.ErrorIs(t, repo.DeleteTx(ctx, nil, dto.Where{}), errRequiredFilter)
}
