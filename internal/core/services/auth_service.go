package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	profileRepo    ports.ProfileRepository
	authRepo       ports.AuthRepository
	tokenVerifier  ports.TokenVerifier
	jwtSecret      []byte
	googleClientID string
}

func NewAuthService(profileRepo ports.ProfileRepository, authRepo ports.AuthRepository, tokenVerifier ports.TokenVerifier, jwtSecret []byte, googleClientID string) *AuthService {
	return &AuthService{
		profileRepo:    profileRepo,
		authRepo:       authRepo,
		tokenVerifier:  tokenVerifier,
		jwtSecret:      jwtSecret,
		googleClientID: googleClientID,
	}
}

func (s *AuthService) LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error) {
	payload, err := s.tokenVerifier.Verify(ctx, googleToken, s.googleClientID)
	if err != nil {
		return "", "", fmt.Errorf("invalid google token: %w", err)
	}

	return s.login(ctx, payload.Email, payload.Name)
}

func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) {
	entity, err := s.authRepo.GetRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return "", "", fmt.Errorf("failed to get refresh token: %w", err)
	}
	if entity == nil {
		return "", "", errors.New("refresh token not found")
	}
	if entity.Revoked {
		return "", "", errors.New("refresh token revoked")
	}
	if entity.ExpiresAt.Before(time.Now()) {
		return "", "", errors.New("refresh token expired")
	}

	profile, err := s.profileRepo.GetByID(ctx, entity.UserID.String())
	if err != nil {
		return "", "", fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return "", "", domain.ErrProfileNotFound
	}

	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	// Refresh tokens are not rotated; the same one is valid until expiry.
	return accessToken, refreshToken, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	entity, err := s.authRepo.GetRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return fmt.Errorf("failed to get refresh token: %w", err)
	}
	if entity == nil {
		return nil
	}

	return s.authRepo.RevokeRefreshToken(ctx, entity.ID.String())
}

func (s *AuthService) login(ctx context.Context, email, name string) (string, string, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		profile = &domain.Profile{Email: email}
		if name != "" {
			profile.FullName = &name
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return "", "", fmt.Errorf("failed to create profile: %w", err)
		}
	}

	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	entity := &domain.RefreshToken{
		UserID:    profile.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		Revoked:   false,
	}
	if err := s.authRepo.StoreRefreshToken(ctx, entity); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *AuthService) generateAccessToken(profile *domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":   profile.ID.String(),
		"email": profile.Email,
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
