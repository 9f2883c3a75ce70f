package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

// Claims are the access token claims.
type Claims struct {
	Scopes []string `json:"scp,omitempty"`
	// Version must match the subject's session version when a VersionStore
	// is configured; issuing a new token bumps it.
	Version int64 `json:"ver,omitempty"`
	jwt.RegisteredClaims
}

// Issued is a freshly signed token.
type Issued struct {
	Token     string
	ID        string
	ExpiresAt time.Time
	Version   int64
}

// Blocklist stores revoked token ids.
type Blocklist interface {
	Block(ctx context.Context, jti string, ttl time.Duration) error
	IsBlocked(ctx context.Context, jti string) (bool, error)
}

// VersionStore keeps one monotonic session version per subject.
type VersionStore interface {
	Incr(ctx context.Context, subject string) (int64, error)
	Get(ctx context.Context, subject string) (int64, error)
}

// Service issues and verifies tokens. Every verification failure is an
// AUTH taxonomy error.
type Service struct {
	cfg       Config
	method    jwt.SigningMethod
	blocklist Blocklist
	versions  VersionStore
}

// NewService validates cfg. blocklist and versions are optional.
func NewService(cfg Config, blocklist Blocklist, versions VersionStore) (*Service, error) {
	cfg.Defaults()
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	method, ok := jwt.GetSigningMethod(cfg.Alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing method %q", cfg.Alg)
	}
	return &Service{cfg: cfg, method: method, blocklist: blocklist, versions: versions}, nil
}

// Issue signs a token for subject. With a VersionStore, tokens issued
// earlier for the same subject stop verifying.
func (s *Service) Issue(ctx context.Context, subject string, scopes ...string) (*Issued, error) {
	if subject == "" {
		return nil, SubjectMissing()
	}
	var version int64
	if s.versions != nil {
		v, err := s.versions.Incr(ctx, subject)
		if err != nil {
			return nil, StoreUnavailable("incr version", err)
		}
		version = v
	}
	now := time.Now()
	claims := Claims{
		Scopes:  scopes,
		Version: version,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}
	token, err := jwt.NewWithClaims(s.method, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, SigningFailed(err)
	}
	return &Issued{Token: token, ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time, Version: version}, nil
}

// Verify parses and validates token, then consults the blocklist and the
// session version.
func (s *Service) Verify(ctx context.Context, token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, TokenMissing()
	}
	opts := []jwt.ParserOption{jwt.WithLeeway(s.cfg.ClockSkew), jwt.WithExpirationRequired()}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, s.keyFunc, opts...); err != nil {
		return nil, Classify(err)
	}
	if claims.Subject == "" {
		return nil, SubjectMissing()
	}
	if s.blocklist != nil && claims.ID != "" {
		blocked, err := s.blocklist.IsBlocked(ctx, claims.ID)
		if err != nil {
			return nil, StoreUnavailable("check blocklist", err)
		}
		if blocked {
			return nil, TokenRevoked(claims.ID)
		}
	}
	if s.versions != nil {
		current, err := s.versions.Get(ctx, claims.Subject)
		if err != nil {
			return nil, StoreUnavailable("get version", err)
		}
		if current > 0 && claims.Version != current {
			return nil, SessionSuperseded(claims.Subject, claims.Version, current)
		}
	}
	return claims, nil
}

// Revoke blocks the token id until the token would have expired anyway.
func (s *Service) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return errors.New("missing token id")
	}
	if s.blocklist == nil {
		return errors.New("blocklist not configured")
	}
	ttl := s.cfg.TTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := s.blocklist.Block(ctx, claims.ID, ttl); err != nil {
		return StoreUnavailable("block", err)
	}
	return nil
}

// RevokeAll invalidates every token of subject by bumping its version.
func (s *Service) RevokeAll(ctx context.Context, subject string) error {
	if s.versions == nil {
		return errors.New("version store not configured")
	}
	if _, err := s.versions.Incr(ctx, subject); err != nil {
		return StoreUnavailable("incr version", err)
	}
	return nil
}

// RequireScope fails with AUTH-008 unless claims carry scope.
func RequireScope(claims *Claims, scope string) error {
	if claims == nil {
		return TokenMissing()
	}
	if slices.Contains(claims.Scopes, scope) {
		return nil
	}
	return InsufficientScope(claims.Subject, scope)
}

type algorithmError struct {
	alg string
}

func (e *algorithmError) Error() string { return "signing method " + e.alg + " not allowed" }

func (s *Service) keyFunc(t *jwt.Token) (any, error) {
	if t.Method == nil || t.Method.Alg() != s.cfg.Alg {
		alg := "none"
		if t.Method != nil {
			alg = t.Method.Alg()
		}
		return nil, &algorithmError{alg: alg}
	}
	return []byte(s.cfg.Secret), nil
}

// Classify maps a token parsing error onto the AUTH catalog. Taxonomy
// errors are returned unchanged.
func Classify(err error) *apperr.Error {
	if err == nil {
		return nil
	}
	if e, ok := apperr.From(err); ok {
		return e
	}
	var algErr *algorithmError
	switch {
	case errors.As(err, &algErr):
		return AlgorithmNotAllowed(algErr.alg)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return TokenSignatureInvalid(err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenExpired(err)
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return TokenNotYetValid(err)
	default:
		return TokenMalformed(err)
	}
}
