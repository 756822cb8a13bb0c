package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"todolist/config"
	"todolist/infras/jwt"
	jwtMocks "todolist/infras/jwt/mocks"
	"todolist/infras/otel/mocks"
	"todolist/internal/domains/auth/service"
	"todolist/permissions"
	"todolist/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, mockJWT *jwtMocks.MockJWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.Realm = "To do list"

	auth := middleware.NewAuthMiddleware(
		service.NewReversedNameAuthenticator(),
		mockJWT,
		mocks.NewOtel(),
		permissions.Get(),
		cfg,
	)

	router := chi.NewRouter()
	router.Use(auth.Auth)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(middleware.Owner(r.Context())))
	})

	return router
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setup     func(r *http.Request, mockJWT *jwtMocks.MockJWT)
		wantCode  int
		wantOwner string
	}{
		{
			name:     "public route without credentials",
			path:     "/healthz",
			setup:    func(_ *http.Request, _ *jwtMocks.MockJWT) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing credentials",
			path:     "/todos/1",
			setup:    func(_ *http.Request, _ *jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "valid basic credentials",
			path: "/todos/1",
			setup: func(r *http.Request, _ *jwtMocks.MockJWT) {
				r.SetBasicAuth("alice", "ecila")
			},
			wantCode:  http.StatusOK,
			wantOwner: "alice",
		},
		{
			name: "wrong basic password",
			path: "/todos/1",
			setup: func(r *http.Request, _ *jwtMocks.MockJWT) {
				r.SetBasicAuth("alice", "alice")
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "valid bearer token",
			path: "/todos/1",
			setup: func(r *http.Request, mockJWT *jwtMocks.MockJWT) {
				r.Header.Set("Authorization", "Bearer good")
				mockJWT.EXPECT().ValidateToken("good", jwt.AccessToken).
					Return(&jwt.Claims{Owner: "bob", TokenID: "t1", Type: jwt.AccessToken}, nil)
			},
			wantCode:  http.StatusOK,
			wantOwner: "bob",
		},
		{
			name: "expired bearer token",
			path: "/todos/1",
			setup: func(r *http.Request, mockJWT *jwtMocks.MockJWT) {
				r.Header.Set("Authorization", "Bearer old")
				mockJWT.EXPECT().ValidateToken("old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unsupported scheme",
			path: "/todos/1",
			setup: func(r *http.Request, _ *jwtMocks.MockJWT) {
				r.Header.Set("Authorization", "Digest abc")
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.setup(req, mockJWT)

			rec := httptest.NewRecorder()
			newAuthRouter(t, mockJWT).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="To do list"`, rec.Header().Get("WWW-Authenticate"))

				return
			}

			assert.Equal(t, tt.wantOwner, rec.Body.String())
		})
	}
}
