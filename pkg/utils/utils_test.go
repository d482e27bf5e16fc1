package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "customer")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, ComparePasswords(hash, "secret1"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(20)
	require.NoError(t, err)
	assert.Len(t, token, 40)

	other, err := GenerateSecureToken(20)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestElapsedMinutes(t *testing.T) {
	start := int64(1_700_000_000)

	assert.Equal(t, int64(0), ElapsedMinutes(start, start))
	assert.Equal(t, int64(0), ElapsedMinutes(start, start+59))
	assert.Equal(t, int64(1), ElapsedMinutes(start, start+60))
	assert.Equal(t, int64(1), ElapsedMinutes(start, start+119))
	assert.Equal(t, int64(0), ElapsedMinutes(start, start-100))
}

func TestFromUnixSecondsKR(t *testing.T) {
	assert.True(t, FromUnixSecondsKR(0).IsZero())

	ts := FromUnixSecondsKR(1_700_000_000)
	_, offset := ts.Zone()
	assert.Equal(t, 9*3600, offset)
}

func TestFormatRFC3339KR(t *testing.T) {
	assert.Equal(t, "", FormatRFC3339KR(time.Time{}))
	assert.NotEmpty(t, FormatRFC3339KR(time.Unix(1_700_000_000, 0)))
}
