//go:build wireinject
// +build wireinject

package di

import (
	"todolist/config"
	"todolist/infras/jwt"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/infras/redis"
	authHandler "todolist/internal/handlers/auth"
	healthHandler "todolist/internal/handlers/health"
	todoHandler "todolist/internal/handlers/todo"
	"todolist/permissions"
	"todolist/shared/cache"
	"todolist/shared/repository"
	"todolist/transport/http"
	"todolist/transport/http/middleware"
	"todolist/transport/http/router"
	"todolist/transport/http/state"

	todoRepository "todolist/internal/domains/todo/repository"
	todoService "todolist/internal/domains/todo/service"

	"github.com/google/wire"

	authService "todolist/internal/domains/auth/service"
	healthService "todolist/internal/domains/health/service"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	state.New,
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
	wire.Struct(new(router.Middlewares), "*"),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCounter,
	repository.NewTransactor,
)

var todoDomain = wire.NewSet(
	todoRepository.NewTodo,
	todoRepository.NewTask,
	todoService.New,
)

var authDomain = wire.NewSet(
	authService.NewReversedNameAuthenticator,
	authService.New,
)

var healthDomain = wire.NewSet(
	healthService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
	healthDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	authHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
