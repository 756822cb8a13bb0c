package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todolist/config"
	"todolist/infras/otel/mocks"
	"todolist/internal/domains/auth/model/dto"
	serviceMocks "todolist/internal/domains/auth/service/mocks"
	"todolist/internal/handlers/auth"
	"todolist/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*serviceMocks.MockAuth, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockAuth(ctrl)

	cfg := &config.Config{}
	cfg.Auth.Realm = "To do list"

	handler := auth.New(svc, mocks.NewOtel(), cfg)

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_Token(t *testing.T) {
	tests := []struct {
		name      string
		basicAuth bool
		setup     func(svc *serviceMocks.MockAuth)
		wantCode  int
	}{
		{
			name:      "issued",
			basicAuth: true,
			setup: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().IssueToken(gomock.Any(), "alice", "ecila").
					Return(dto.TokenResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing credentials",
			setup:    func(_ *serviceMocks.MockAuth) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "rejected credentials",
			basicAuth: true,
			setup: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().IssueToken(gomock.Any(), "alice", "ecila").
					Return(dto.TokenResponse{}, failure.Unauthorized("invalid username or password"))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
			if tt.basicAuth {
				req.SetBasicAuth("alice", "ecila")
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="To do list"`, rec.Header().Get("WWW-Authenticate"))

				return
			}

			assert.JSONEq(t, `{"access_token":"a","refresh_token":"r","token_type":"Bearer","expires_in":0}`, rec.Body.String())
		})
	}
}

func TestHandler_RefreshToken(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *serviceMocks.MockAuth)
		wantCode int
	}{
		{
			name: "refreshed",
			body: `{"refresh_token":"r"}`,
			setup: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "r"}).
					Return(dto.TokenResponse{AccessToken: "a2"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing refresh token",
			body:     `{}`,
			setup:    func(_ *serviceMocks.MockAuth) {},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid refresh token",
			body: `{"refresh_token":"bad"}`,
			setup: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().RefreshToken(gomock.Any(), gomock.Any()).
					Return(dto.TokenResponse{}, failure.Unauthorized("invalid refresh token"))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
