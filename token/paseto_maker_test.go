package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSymmetricKey = "12345678901234567890123456789012"

func TestPasetoMakerRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	created, err := maker.CreateToken("reception", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, created)

	payload, err := maker.VerifyToken(created)
	require.NoError(t, err)
	assert.Equal(t, "reception", payload.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), payload.ExpiredAt, 5*time.Second)
}

func TestPasetoMakerRejectsNonPositiveDuration(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	_, err = maker.CreateToken("reception", -time.Minute)
	require.Error(t, err)
}

func TestPayloadValidOnExpiry(t *testing.T) {
	payload := &Payload{
		Username:  "reception",
		IssuedAt:  time.Now().Add(-2 * time.Minute),
		ExpiredAt: time.Now().Add(-time.Minute),
	}
	assert.ErrorIs(t, payload.Valid(), ErrExpired)
}

func TestPasetoMakerRejectsShortKey(t *testing.T) {
	_, err := NewPasetoMaker(strings.Repeat("x", 16))
	require.Error(t, err)
}

func TestPasetoMakerRejectsTamperedToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	created, err := maker.CreateToken("reception", time.Minute)
	require.NoError(t, err)

	tampered := created[:len(created)-4] + "abcd"
	_, err = maker.VerifyToken(tampered)
	require.Error(t, err)
}
