package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/ipshare911/Payroll-Management-System/internal/auth/errors"
)

// Config carries the single operator account this deployment accepts.
// PasswordHash (bcrypt) wins over the plain Password fallback; the plain
// form exists for local development only.
type Config struct {
	Username     string
	PasswordHash string
	Password     string
	JWTSecret    string
	TokenTTL     time.Duration
}

type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	Me(ctx context.Context, username string) (MeResponse, error)
}

type service struct {
	cfg Config
}

func NewService(cfg Config) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 12 * time.Hour
	}
	return &service{cfg: cfg}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	if s.cfg.Username == "" || s.cfg.JWTSecret == "" {
		return LoginResponse{}, autherrors.ErrNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) != 1 {
		// Still burn a bcrypt round so a wrong username is not
		// distinguishable from a wrong password by timing.
		_ = bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !s.passwordMatches(password) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(username, s.cfg.TokenTTL)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken: token,
		Username:    username,
		ExpiresIn:   int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

func (s *service) Me(ctx context.Context, username string) (MeResponse, error) {
	if username == "" {
		return MeResponse{}, autherrors.ErrInvalidToken
	}
	return MeResponse{Username: username}, nil
}

func (s *service) passwordMatches(password string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	if s.cfg.Password != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
	}
	return false
}

func (s *service) generateToken(username string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
