package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	tok, err := NewResetToken(32)
	require.NoError(t, err)
	require.Len(t, tok, 64)

	_, err = hex.DecodeString(tok)
	require.NoError(t, err)

	other, err := NewResetToken(32)
	require.NoError(t, err)
	require.NotEqual(t, tok, other)
}

func TestNewVerificationCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, 100000)
		require.LessOrEqual(t, code, 999999)
	}
}
