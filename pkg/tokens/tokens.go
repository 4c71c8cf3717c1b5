package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the payload of an access token: sub is the username, id the user id.
type AccessClaims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

type Manager struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{Secret: secret, TTL: ttl}
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) ttl(override time.Duration) time.Duration {
	switch {
	case override > 0:
		return override
	case m.TTL > 0:
		return m.TTL
	default:
		return DefaultAccessTTL
	}
}

// Issue signs an HS256 access token for the user. A non-positive ttl falls back to the manager's TTL.
func (m *Manager) Issue(username string, userID uint, ttl time.Duration) (string, time.Time, error) {
	accessExp := m.now().Add(m.ttl(ttl))
	accessClaims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(accessExp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, accessExp, nil
}

// Parse verifies the signature and expiry of tokenStr and requires both sub and id claims.
func (m *Manager) Parse(tokenStr string) (*AccessClaims, error) {
	return AccessClaimsFromToken(tokenStr, m.Secret, jwt.WithTimeFunc(m.now))
}

func AccessClaimsFromToken(tokenStr string, accessSecret []byte, opts ...jwt.ParserOption) (*AccessClaims, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return accessSecret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing sub or id claim", ErrInvalidToken)
	}
	return &claims, nil
}
