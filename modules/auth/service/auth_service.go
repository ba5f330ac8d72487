package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"guestdesk/core/cache"
	"guestdesk/core/config"
	"guestdesk/core/constants"
	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/utils"
	"guestdesk/modules/auth/dto"
	"guestdesk/modules/auth/entity"
	"guestdesk/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	repo  *repository.HostRepository
	cache *cache.Cache
}

func NewAuthService(repo *repository.HostRepository, c *cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "valid email is required", nil)
	}
	if len(req.Password) < 8 {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "password must be at least 8 characters", nil)
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to check email", err)
	}
	if exists {
		return nil, appErrors.NewAppError(appErrors.ErrAlreadyExists, "email already registered", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "failed to hash password", err)
	}

	host := &entity.Host{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, host); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to create host", err)
	}
	return s.issueTokens(host)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	host, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same answer as a bad password so emails cannot be probed.
			return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "invalid credentials", nil)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get host", err)
	}

	if !utils.ComparePassword(host.PasswordHash, req.Password) {
		return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "invalid credentials", nil)
	}
	return s.issueTokens(host)
}

func (s *AuthService) issueTokens(host *entity.Host) (*dto.TokenResponse, error) {
	cfg := config.Get()

	access, err := utils.GenerateToken(host.ID, constants.ScopeTokenAccess,
		time.Duration(cfg.AccessTokenExpiry)*time.Minute)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "failed to sign token", err)
	}
	refresh, err := utils.GenerateToken(host.ID, constants.ScopeTokenRefresh,
		time.Duration(cfg.RefreshTokenExpiry)*time.Hour)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "failed to sign token", err)
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Host:         *host,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := utils.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "wrong token scope", nil)
	}

	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		logger.Warn("AuthService:Refresh:BlacklistCheckFailed", "error", err)
	} else if blacklisted {
		return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "token revoked", nil)
	}

	host, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "host no longer exists", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get host", err)
	}

	// Rotate: the presented refresh token dies with the exchange.
	s.blacklistClaims(ctx, claims)
	return s.issueTokens(host)
}

// Logout revokes the presented access token via the Redis blacklist.
func (s *AuthService) Logout(ctx context.Context, claims *utils.TokenClaims) error {
	s.blacklistClaims(ctx, claims)
	return nil
}

func (s *AuthService) blacklistClaims(ctx context.Context, claims *utils.TokenClaims) {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err := s.cache.AddToTokenBlacklist(ctx, claims.ID, ttl); err != nil {
		logger.Warn("AuthService:BlacklistFailed", "jti", claims.ID, "error", err)
	}
}

// Me returns the authenticated host's profile.
func (s *AuthService) Me(ctx context.Context, hostID uuid.UUID) (*entity.Host, error) {
	host, err := s.repo.GetByID(ctx, hostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "host not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get host", err)
	}
	return host, nil
}
