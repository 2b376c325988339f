package auth

import (
	"errors"
	"log"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the original platform's fixed 10-round salt.
const bcryptCost = 10

var jwtSecret []byte

// InitAuth loads the token signing secret from the environment.
func InitAuth() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

// SetSecret overrides the signing secret; used by tests.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// HashPassword hashes a plaintext credential with a per-record random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewToken issues a signed session token binding the user id. Tokens carry
// no expiry; sessions end only when the cookie does.
func NewToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": userID,
	})
	return token.SignedString(jwtSecret)
}

// ParseToken verifies a session token and returns the bound user id.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", errors.New("token has no user id")
	}
	return id, nil
}
