package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

type AuthUseCase struct {
	userRepo repositories.UserRepository
	identity IdentityVerifier
}

func NewAuthUseCase(userRepo repositories.UserRepository, identity IdentityVerifier) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		identity: identity,
	}
}

// Login validates local credentials. A missing user, a provider-only
// account and a wrong password all report the same error.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register creates a local account with a hashed password.
func (uc *AuthUseCase) Register(ctx context.Context, username, email, password string) (*entities.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &entities.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginWithProvider verifies the provider token and resolves it to a
// local account: by provider subject first, then by email (linking the
// subject onto the existing account), finally by creating a fresh
// passwordless account.
func (uc *AuthUseCase) LoginWithProvider(ctx context.Context, idToken string) (*entities.User, error) {
	if idToken == "" {
		return nil, ErrMissingFields
	}

	ident, err := uc.identity.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	user, err := uc.userRepo.GetByGoogleID(ctx, ident.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user, err = uc.userRepo.GetByEmail(ctx, ident.Email)
	if err == nil {
		user.GoogleID = ident.Subject
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to link provider identity: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	user = &entities.User{
		ID:        uuid.New().String(),
		Username:  ident.Name,
		Email:     ident.Email,
		GoogleID:  ident.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
