package router

import (
	"todolist/config"
	"todolist/internal/handlers/auth"
	"todolist/internal/handlers/health"
	"todolist/internal/handlers/todo"
	"todolist/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "todolist/docs" // swagger spec
)

const swaggerDocPath = "/swagger/doc.json"

type DomainHandlers struct {
	Health health.Handler
	Auth   auth.Handler
	Todo   todo.Handler
}

type Middlewares struct {
	App  middleware.AppMiddleware
	Auth middleware.Auth
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		r.Middlewares.App.Readiness,
		r.Middlewares.App.CORS(),
		r.Middlewares.App.Tracing,
		r.Middlewares.App.RateLimit(),
		r.Middlewares.Auth.Auth,
	)

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)

	if r.Config.App.Swagger.Enable {
		router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocPath)))
	}
}

func New(domainHandlers DomainHandlers, middlewares Middlewares, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
		Config:         cfg,
	}
}
