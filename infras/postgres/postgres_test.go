package postgres_test

import (
	"testing"
	"todolist/config"
	"todolist/infras/postgres"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	endpoint := config.Endpoint{
		Host:     "db",
		Port:     "5432",
		Username: "todo",
		Password: "secret",
		Name:     "todolist",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://todo:secret@db:5432/todolist?sslmode=disable", postgres.DSN(cfg, endpoint))

	cfg.DB.Postgres.Prefix = "test_"
	assert.Equal(t, "postgres://todo:secret@db:5432/test_todolist?sslmode=disable", postgres.DSN(cfg, endpoint))

	endpoint.Host = "::1"
	assert.Equal(t, "postgres://todo:secret@[::1]:5432/test_todolist?sslmode=disable", postgres.DSN(cfg, endpoint))
}
