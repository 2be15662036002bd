package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role tags stored per user record. Authorization compares against these
// exactly: an admin does not implicitly satisfy an HR requirement.
const (
	RoleAdmin    = "admin"
	RoleHR       = "HR"
	RoleEmployee = "Employee"
)

// DefaultTokenTTL reflects the long-lived session model of the app.
const DefaultTokenTTL = 365 * 24 * time.Hour

var (
	// ErrMissingSecret indicates the signing secret is not configured.
	// Treated as fatal at startup, never as a per-request error.
	ErrMissingSecret = errors.New("auth: signing secret is not configured")

	// ErrNoToken indicates no credential was presented.
	ErrNoToken = errors.New("auth: no credential presented")

	// ErrInvalidToken covers both tampered and expired credentials. The two
	// cases are deliberately indistinguishable to the caller.
	ErrInvalidToken = errors.New("auth: invalid or expired credential")

	// ErrEmptyIdentity indicates an issue request with no identity payload.
	ErrEmptyIdentity = errors.New("auth: empty identity payload")
)

// Claims is the identity payload embedded in a signed token. Role is
// deliberately absent: it is resolved from the user store on every
// authorization check, so a role change binds on the very next request
// without re-issuing the token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// TokenManager issues and verifies bearer tokens with a fixed TTL against a
// single HMAC secret loaded once at startup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager fails when the secret is absent so a misconfigured
// deployment dies at startup instead of rejecting every request.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the lifetime applied to issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a signed token for the given identity. The caller is trusted
// to have already authenticated the user through the client-side auth
// provider; this only packages that assertion.
func (m *TokenManager) Issue(email, name string) (string, error) {
	if email == "" {
		return "", ErrEmptyIdentity
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: email,
		Name:  name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the decoded claims.
// Tampered and expired tokens collapse into the same rejection so the
// response never leaks which check failed.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Older clients signed the email only into the subject
	if claims.Email == "" && claims.Subject != "" {
		claims.Email = claims.Subject
	}

	return claims, nil
}
