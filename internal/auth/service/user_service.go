package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/ShesaiXD/auth-service/internal/auth/domain UserRepository,TokenBlacklist

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ShesaiXD/auth-service/config"
	"github.com/ShesaiXD/auth-service/internal/auth/domain"
	"github.com/ShesaiXD/auth-service/internal/auth/dto"
	autherror "github.com/ShesaiXD/auth-service/internal/errors"
	authconstant "github.com/ShesaiXD/auth-service/pkg/constant"
)

type UserService struct {
	repo      domain.UserRepository
	tokens    TokenGenerator
	blacklist domain.TokenBlacklist
	cfg       *config.Config
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator,
	blacklist domain.TokenBlacklist, cfg *config.Config) *UserService {
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		blacklist: blacklist,
		cfg:       cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	existingUser, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and mints a fresh token pair. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	email := normalizeEmail(input.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.GeneratePair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a live refresh token for a new pair. With the default
// policy the presented token is revoked atomically before minting, so a
// replayed token loses the race and gets ErrTokenRevoked.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	claims, err := s.tokens.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	if !s.cfg.RotateOnRefresh {
		revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, autherror.ErrTokenRevoked
		}

		accessToken, err := s.tokens.Generate(claims.UserID, claims.Email, authconstant.TokenTypeAccess)
		if err != nil {
			return nil, err
		}

		return &dto.TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: input.RefreshToken,
		}, nil
	}

	if s.cfg.RevokeAfterRotation {
		// Insert-if-absent is the commit point of the rotation. Exactly one
		// of any concurrent callers presenting the same token gets past it.
		won, err := s.blacklist.RevokeIfAbsent(ctx, claims.ID, claims.ExpiresAt.Time)
		if err != nil {
			return nil, err
		}
		if !won {
			return nil, autherror.ErrTokenRevoked
		}
	} else {
		// Rotation without blacklisting still honours explicit logouts.
		revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, autherror.ErrTokenRevoked
		}
	}

	accessToken, refreshToken, err := s.tokens.GeneratePair(claims.UserID, claims.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes the presented refresh token. Malformed, forged or
// wrong-type tokens are silently ignored; the client is discarding the
// token either way.
func (s *UserService) Logout(ctx context.Context, input dto.LogoutInput) error {
	claims, err := s.tokens.DecodeExpired(input.RefreshToken)
	if err != nil {
		return nil
	}

	if claims.TokenType != authconstant.TokenTypeRefresh || claims.ExpiresAt == nil {
		return nil
	}

	return s.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
