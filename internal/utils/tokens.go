package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// NewResetToken — случайный hex-токен, по умолчанию 32 байта (256 бит).
func NewResetToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewVerificationCode — 6-значный код из [100000, 999999], crypto/rand.
func NewVerificationCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, fmt.Errorf("verification code: %w", err)
	}
	return int(n.Int64()) + 100000, nil
}
