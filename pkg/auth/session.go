// Package auth resolves the signed-in user from an identity provider
// session token. Sign-in itself happens outside this program; the
// dashboard only consumes the ID token the provider issued.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leadboard/pkg/logging"
)

var (
	ErrNoSession    = errors.New("no stored session")
	ErrTokenExpired = errors.New("session token expired")
	ErrInvalidToken = errors.New("invalid session token")
)

// User is the signed-in identity shown in the dashboard. A nil User means
// signed out.
type User struct {
	ID    string
	Email string
	Name  string
}

// DisplayName prefers the profile name, then the email, then the subject.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

// IdentityClaims are the ID-token claims this dashboard reads. Signature
// verification is the API's job; the client only derives the display
// identity and enforces expiry.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email           string `json:"email"`
	Name            string `json:"name"`
	CognitoUsername string `json:"cognito:username"`
}

// ParseIdentityToken extracts the user from a raw ID token. Expired or
// malformed tokens resolve to signed-out.
func ParseIdentityToken(raw string) (*User, error) {
	claims := &IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	sub := claims.Subject
	if sub == "" {
		sub = claims.CognitoUsername
	}
	if sub == "" && claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return &User{
		ID:    sub,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

// Provider owns the current session: the raw token and the resolved user.
type Provider struct {
	tokenPath string
	token     string
	user      *User
	logger    *logging.Logger
}

// ProviderOption is a functional option for configuring the Provider.
type ProviderOption func(*Provider)

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a provider storing its session token at tokenPath.
func NewProvider(tokenPath string, opts ...ProviderOption) *Provider {
	p := &Provider{
		tokenPath: tokenPath,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve establishes the session. An explicit token (flag or env) wins
// over the stored one; a valid explicit token is persisted for the next
// run.
func (p *Provider) Resolve(explicitToken string) error {
	token := strings.TrimSpace(explicitToken)
	stored := false

	if token == "" {
		loaded, err := p.loadStoredToken()
		if err != nil {
			return err
		}
		token = loaded
		stored = true
	}

	user, err := ParseIdentityToken(token)
	if err != nil {
		p.logger.Warn("session token rejected", "error", err)
		return err
	}

	p.token = token
	p.user = user
	p.logger.Info("session resolved", "user", user.DisplayName())

	if !stored {
		if err := p.storeToken(token); err != nil {
			p.logger.Warn("could not persist session token", "error", err)
		}
	}
	return nil
}

// CurrentUser returns the signed-in user, nil when signed out.
func (p *Provider) CurrentUser() *User {
	return p.user
}

// Token returns the raw session token for API calls.
func (p *Provider) Token() string {
	return p.token
}

// SignOut clears the session and removes the stored token. The remote
// data is untouched; only client state goes away.
func (p *Provider) SignOut() error {
	p.user = nil
	p.token = ""

	if err := os.Remove(p.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("auth: remove stored token: %w", err)
	}
	p.logger.Info("signed out")
	return nil
}

func (p *Provider) loadStoredToken() (string, error) {
	data, err := os.ReadFile(p.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("auth: read stored token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

func (p *Provider) storeToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(p.tokenPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(p.tokenPath, []byte(token+"\n"), 0600)
}
