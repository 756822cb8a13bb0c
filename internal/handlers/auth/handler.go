package auth

import (
	"net/http"
	"todolist/config"
	"todolist/infras/otel"
	"todolist/internal/domains/auth/model/dto"
	"todolist/internal/domains/auth/service"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/validator"
	"todolist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Auth, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", handler.Token)
		r.Post("/refresh-token", handler.RefreshToken)
	})
}

// Token exchanges basic credentials for a bearer token pair
// @Summary Issue tokens
// @Description Exchange basic credentials for an access and refresh token pair.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.TokenResponse "Token pair"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/token [post]
// @Security BasicAuth
func (handler *Handler) Token(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Token")
	defer scope.End()

	username, password, ok := r.BasicAuth()
	if !ok {
		err := failure.Unauthorized("Missing basic credentials")
		scope.TraceError(err)

		response.WithUnauthorized(w, handler.cfg.Auth.Realm, err)

		return
	}

	res, err := handler.service.IssueToken(ctx, username, password)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to issue token")

		if failure.GetCode(err) == http.StatusUnauthorized {
			response.WithUnauthorized(w, handler.cfg.Auth.Realm, err)

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token issued successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.TokenResponse "Token pair"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
