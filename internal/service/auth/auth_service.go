package auth

import (
	"context"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/google/uuid"
)

type AuthUseCase interface {
	Issue(ctx context.Context, key, secret string) (string, error)
	Authenticate(ctx context.Context, token string) error
}

// TokenStore is the registry of every token this process has issued.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	accessKey    string
	accessSecret string
	tokens       TokenStore
	log          logger.Logger
}

func NewAuthService(accessKey, accessSecret string, tokens TokenStore, log logger.Logger) *AuthService {
	return &AuthService{
		accessKey:    accessKey,
		accessSecret: accessSecret,
		tokens:       tokens,
		log:          log,
	}
}

// Issue validates the submitted key/secret pair and mints a fresh access
// token. Guards run in order; only the first failure is reported.
func (s *AuthService) Issue(ctx context.Context, key, secret string) (string, error) {
	if key == "" {
		return "", domain.NewValidationError("Missing authentication key")
	}
	if secret == "" {
		return "", domain.NewValidationError("Missing authentication secret")
	}
	if key != s.accessKey || secret != s.accessSecret {
		return "", domain.NewValidationError("Authentication credentials are not valid.")
	}

	token := uuid.NewString()
	if err := s.tokens.Add(ctx, token); err != nil {
		return "", err
	}

	s.log.Info("access token issued")
	return token, nil
}

// Authenticate accepts only tokens previously minted by Issue.
func (s *AuthService) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorised
	}
	ok, err := s.tokens.Exists(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorised
	}
	return nil
}

var _ AuthUseCase = (*AuthService)(nil)
