package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// TokenService issues access tokens and resolves presented tokens to identities.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(identity model.Identity) (string, error) {
	token, err := s.manager.GenerateAccessToken(identity)
	if err != nil {
		s.logger.Error("Token service: failed to sign access token",
			"user_id", identity.ID,
			"error", err.Error())
		return "", fmt.Errorf("issue access: %w", err)
	}

	return token, nil
}

// GetIdentity verifies the token and returns the identity it carries.
func (s *TokenService) GetIdentity(ctx context.Context, token string) (model.Identity, error) {
	identity, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return model.Identity{}, err
	}

	if identity.ID == uuid.Nil {
		return model.Identity{}, fmt.Errorf("token carries no user id")
	}

	return identity, nil
}
