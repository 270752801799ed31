package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/zoomtube-backend/internal/platform/ctxutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type IdentityConfig struct {
	// JWTSecret verifies HS256 tokens issued by the identity provider.
	JWTSecret string
	Issuer    string
	LoginURL  string
	LogoutURL string
}

type AuthStatus struct {
	LoggedIn  bool   `json:"loggedIn"`
	Email     string `json:"email,omitempty"`
	LoginURL  string `json:"loginUrl,omitempty"`
	LogoutURL string `json:"logoutUrl,omitempty"`
}

type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type IdentityService interface {
	// Resolve verifies token and returns ctx carrying the caller's email.
	Resolve(ctx context.Context, token string) (context.Context, error)
	Status(ctx context.Context, returnTo string) AuthStatus
	// IssueToken signs a token the way the identity provider does. Used by
	// local tooling and tests.
	IssueToken(email string, ttl time.Duration) (string, error)
}

type identityService struct {
	log *logger.Logger
	cfg IdentityConfig
}

func NewIdentityService(log *logger.Logger, cfg IdentityConfig) IdentityService {
	return &identityService{log: log.With("service", "IdentityService"), cfg: cfg}
}

func (s *identityService) Resolve(ctx context.Context, token string) (context.Context, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx, nil
	}
	if s.cfg.JWTSecret == "" {
		return ctx, fmt.Errorf("identity provider not configured")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	parsed, err := jwt.ParseWithClaims(token, &IdentityClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return ctx, fmt.Errorf("parse identity token: %w", err)
	}
	claims, ok := parsed.Claims.(*IdentityClaims)
	if !ok || !parsed.Valid {
		return ctx, fmt.Errorf("invalid or expired identity token")
	}
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return ctx, fmt.Errorf("identity token has no email")
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{Email: email}), nil
}

func (s *identityService) Status(ctx context.Context, returnTo string) AuthStatus {
	if returnTo == "" {
		returnTo = "/"
	}
	if email := ctxutil.Email(ctx); email != "" {
		return AuthStatus{LoggedIn: true, Email: email, LogoutURL: withContinue(s.cfg.LogoutURL, returnTo)}
	}
	return AuthStatus{LoggedIn: false, LoginURL: withContinue(s.cfg.LoginURL, returnTo)}
}

func (s *identityService) IssueToken(email string, ttl time.Duration) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", fmt.Errorf("identity provider not configured")
	}
	now := time.Now()
	claims := IdentityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func withContinue(base, returnTo string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("continue", returnTo)
	u.RawQuery = q.Encode()
	return u.String()
}
