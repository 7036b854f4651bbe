package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

const refreshTokenBytes = 32 // 256 бит

// GenerateRefreshToken возвращает случайный refresh токен в base64url
func GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashRefreshToken - sha256 хеш токена для хранения в базе
func HashRefreshToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// VerifyRefreshToken сверяет токен с хешем за константное время
func VerifyRefreshToken(token string, hash string) bool {
	return subtle.ConstantTimeCompare(
		[]byte(HashRefreshToken(token)),
		[]byte(hash),
	) == 1
}
