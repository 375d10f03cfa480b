package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// dummyHash is compared against on unknown emails so that login latency
// does not reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Email and name are trimmed before the required check. The password is not.
func validateRegister(params model.RegisterParams) error {
	return validation.Errors{
		"email":    validation.Validate(strings.TrimSpace(params.Email), validation.Required),
		"password": validation.Validate(params.Password, validation.Required),
		"name":     validation.Validate(strings.TrimSpace(params.Name), validation.Required),
	}.Filter()
}

func validateLogin(params model.LoginParams) error {
	return validation.Errors{
		"email":    validation.Validate(strings.TrimSpace(params.Email), validation.Required),
		"password": validation.Validate(params.Password, validation.Required),
	}.Filter()
}

// Register creates a user and returns a token for it.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if err := validateRegister(params); err != nil {
		return model.AuthResult{}, apiErrors.NewErrValidation("Email, password, and name are required", err)
	}

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.AuthResult{}, apiErrors.NewErrEmailIsTaken(params.Email)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: hash,
		Name:         params.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: user created concurrently",
			"email", params.Email)
		return model.AuthResult{}, apiErrors.NewErrEmailIsTaken(params.Email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(savedUser.Identity())
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"email", savedUser.Email,
		"user_id", savedUser.ID)

	return model.AuthResult{Token: token, User: savedUser.Public()}, nil
}

// Login verifies credentials. Unknown email and wrong password fail identically.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", params.Email)

	if err := validateLogin(params); err != nil {
		return model.AuthResult{}, apiErrors.NewErrValidation("Email and password are required", err)
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		_ = a.hasher.Compare(dummyHash, params.Password)
		a.logger.Info("Auth service: login for unknown email",
			"email", params.Email)
		return model.AuthResult{}, apiErrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, params.Password); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, apiErrors.NewErrInvalidCredentials()
	}

	token, err := a.tokenService.Issue(user.Identity())
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: login successful",
		"user_id", user.ID)

	return model.AuthResult{Token: token, User: user.Public()}, nil
}
