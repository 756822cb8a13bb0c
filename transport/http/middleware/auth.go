package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"todolist/config"
	"todolist/infras/jwt"
	"todolist/infras/otel"
	"todolist/internal/domains/auth/service"
	"todolist/permissions"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the owner of a request from basic or bearer credentials.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	authenticator service.Authenticator
	jwtService    jwt.JWT
	otel          otel.Otel
	permission    *permissions.PermissionData
	cfg           *config.Config
}

func NewAuthMiddleware(
	authenticator service.Authenticator,
	jwtService jwt.JWT,
	otel otel.Otel,
	permissions *permissions.PermissionData,
	cfg *config.Config,
) Auth {
	return &authImpl{
		authenticator: authenticator,
		jwtService:    jwtService,
		otel:          otel,
		permission:    permissions,
		cfg:           cfg,
	}
}

// Owner returns the authenticated owner stored on ctx.
func Owner(ctx context.Context) string {
	owner, _ := ctx.Value(constant.ContextKeyOwner).(string)

	return owner
}

// WithOwner stores owner on ctx the way Auth does.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyOwner, owner)
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		method := request.Method
		path := routePattern(request)

		if m.permission.IsPublic(path, method) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)

		var (
			owner   string
			tokenID string
			err     error
		)

		switch {
		case authHeader == "":
			err = failure.Unauthorized("Missing authorization header")
		case strings.HasPrefix(authHeader, constant.AuthSchemeBasic+" "):
			owner, err = m.basic(ctx, request)
		case strings.HasPrefix(authHeader, constant.AuthSchemeBearer+" "):
			owner, tokenID, err = m.bearer(authHeader)
		default:
			err = failure.Unauthorized("Unsupported authorization scheme")
		}

		if err != nil {
			response.WithUnauthorized(writer, m.cfg.Auth.Realm, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = WithOwner(ctx, owner)
		if tokenID != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyTokenID, tokenID)
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) basic(ctx context.Context, request *http.Request) (string, error) {
	username, password, ok := request.BasicAuth()
	if !ok {
		return "", failure.Unauthorized("Invalid authorization header format")
	}

	owner, err := m.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		log.Warn().Str("username", username).Msg("basic authentication failed")

		return "", failure.Unauthorized("Invalid credentials")
	}

	return owner, nil
}

func (m *authImpl) bearer(authHeader string) (string, string, error) {
	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return "", "", failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Token validation failed"
		}

		return "", "", failure.Unauthorized(message)
	}

	return claims.Owner, claims.TokenID, nil
}

// routePattern resolves the chi pattern the request will be dispatched to,
// or "" when the router has no match.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return ""
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
