package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/incident_reporting_system/internal/models"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("s3cret-pass", "not-a-hash"))
}

func TestVerifyPassword_UnknownUserCostsAsMuchAsWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	VerifyPassword("warm-up", "") // фиктивный хэш создается при первом вызове

	start := time.Now()
	assert.False(t, VerifyPassword("wrong", hash))
	known := time.Since(start)

	start = time.Now()
	assert.False(t, VerifyPassword("wrong", ""))
	unknown := time.Since(start)

	assert.Greater(t, unknown, known/4, "unknown user must still pay for a bcrypt comparison")
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_Invalid(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = HashPassword(strings.Repeat("x", 100))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", "test", time.Hour)

	token, claims, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	verified, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", verified.Subject)
	assert.Equal(t, claims.ID, verified.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", "test", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenManager_BadSignature(t *testing.T) {
	issuer := NewTokenManager("secret", "test", time.Hour)
	other := NewTokenManager("other-secret", "test", time.Hour)
	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("secret", "test", time.Hour)

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, models.ErrInvalidToken, token)
	}
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	m := NewTokenManager("secret", "test", time.Hour)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "test",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
