package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenManager(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		_, err := NewTokenManager("", time.Hour)
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		m, err := NewTokenManager(testSecret, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultTokenTTL, m.TTL())
	})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("a@x.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestIssueEmptyIdentity(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = m.Issue("", "")
	assert.ErrorIs(t, err, ErrEmptyIdentity)
}

func TestVerifyRejections(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("NoToken", func(t *testing.T) {
		_, err := m.Verify("")
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other, err := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)
		require.NoError(t, err)

		token, err := other.Issue("a@x.com", "")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := &TokenManager{secret: []byte(testSecret), ttl: -time.Minute}
		token, err := expired.Issue("a@x.com", "")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

// Expired and tampered tokens must be indistinguishable from the caller's
// point of view.
func TestVerifyUniformRejection(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	expired := &TokenManager{secret: []byte(testSecret), ttl: -time.Minute}
	expiredToken, err := expired.Issue("a@x.com", "")
	require.NoError(t, err)

	other := &TokenManager{secret: []byte("another-another-another-another!"), ttl: time.Hour}
	tamperedToken, err := other.Issue("a@x.com", "")
	require.NoError(t, err)

	_, errExpired := m.Verify(expiredToken)
	_, errTampered := m.Verify(tamperedToken)

	assert.Equal(t, errExpired, errTampered)
}

func TestClaimsSurviveLogout(t *testing.T) {
	// Logout is client-side only: a copy of the token taken before logout
	// still verifies until its natural expiry.
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("a@x.com", "")
	require.NoError(t, err)

	// Nothing server-side changes on logout; the same token verifies again.
	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSubjectFallback(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("b@x.com", "")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", claims.Subject)
	assert.Equal(t, "b@x.com", claims.Email)
}
