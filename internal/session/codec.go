package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// Payload carries the authenticated identity for one browser session.
type Payload struct {
	UserID    int64
	Email     string
	Role      string
	ExpiresAt time.Time
}

// claims is the wire form of a session token.
type claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Codec signs and verifies session tokens. Tokens are HS256 JWTs with a
// fixed issuer and audience; verification failure of any kind maps to
// ErrInvalidSession so callers can treat it uniformly as "no session".
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec that issues tokens valid for ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime of tokens issued by this codec.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode signs a session token for the given identity. The payload's
// ExpiresAt is set to the token expiry.
func (c *Codec) Encode(p *Payload) (string, error) {
	now := time.Now()
	p.ExpiresAt = now.Add(c.ttl)

	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "jobsethiopia",
			Audience:  jwt.ClaimStrings{"jobsethiopia-web"},
			ExpiresAt: jwt.NewNumericDate(p.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: p.UserID,
		Email:  p.Email,
		Role:   p.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	return token.SignedString(c.secret)
}

// Decode verifies a session token and returns its payload. A malformed
// token, bad signature, or expired token yields ErrInvalidSession.
func (c *Codec) Decode(tokenString string) (*Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return c.secret, nil
	}, jwt.WithIssuer("jobsethiopia"), jwt.WithAudience("jobsethiopia-web"))
	if err != nil {
		return nil, ErrInvalidSession
	}

	cl, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	return &Payload{
		UserID:    cl.UserID,
		Email:     cl.Email,
		Role:      cl.Role,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}
