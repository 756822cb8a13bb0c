package service

import (
	"context"
	"fmt"
	"todolist/infras/jwt"
	"todolist/infras/otel"
	"todolist/internal/domains/auth/model/dto"
	"todolist/shared/constant"
	"todolist/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

type Auth interface {
	IssueToken(ctx context.Context, username, password string) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	authenticator Authenticator
	otel          otel.Otel
	jwtService    jwt.JWT
}

func New(authenticator Authenticator, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		authenticator: authenticator,
		otel:          otel,
		jwtService:    jwt,
	}
}

// IssueToken exchanges basic credentials for a bearer token pair.
func (s *serviceImpl) IssueToken(ctx context.Context, username, password string) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		log.Warn().Str("username", username).Msg("token request with bad credentials")

		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(owner)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
