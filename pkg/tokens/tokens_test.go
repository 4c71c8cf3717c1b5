package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestManager_Issue_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	m := &Manager{Secret: testSecret, Now: fixedClock(issuedAt)}

	token, exp, err := m.Issue("alice", 7, 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, issuedAt.Add(DefaultAccessTTL), exp)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.EqualValues(t, 7, claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestManager_Expiry(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	issuer := &Manager{Secret: testSecret, TTL: 15 * time.Minute, Now: fixedClock(issuedAt)}

	token, _, err := issuer.Issue("alice", 7, 0)
	require.NoError(t, err)

	before := &Manager{Secret: testSecret, Now: fixedClock(issuedAt.Add(14 * time.Minute))}
	_, err = before.Parse(token)
	require.NoError(t, err)

	after := &Manager{Secret: testSecret, Now: fixedClock(issuedAt.Add(16 * time.Minute))}
	_, err = after.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_Issue_CustomTTL(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	m := &Manager{Secret: testSecret, Now: fixedClock(issuedAt)}

	_, exp, err := m.Issue("alice", 7, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), exp)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	m := NewManager(testSecret, time.Minute)
	good, _, err := m.Issue("alice", 7, 0)
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		UserID:           7,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}).SignedString(testSecret)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, AccessClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{name: "garbage", token: "not-a-valid-jwt", secret: testSecret},
		{name: "wrong secret", token: good, secret: []byte("other-secret")},
		{name: "missing id", token: noID, secret: testSecret},
		{name: "missing exp", token: noExp, secret: testSecret},
		{name: "other algorithm", token: hs512, secret: testSecret},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := AccessClaimsFromToken(tt.token, tt.secret)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}
