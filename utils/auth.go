package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/imobcrm/imobcrm_end/config"
	"github.com/imobcrm/imobcrm_end/models"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// HashPassword hashes a password with sha256
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword compares a plaintext password against a stored hash
func VerifyPassword(password string, hashedPassword string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedPassword)) == 1
}

// GenerateToken issues a JWT for a team member, valid for 30 days
func GenerateToken(member *models.TeamMember) (string, error) {
	claims := jwt.MapClaims{
		"id":        member.ID.Hex(),
		"nome":      member.Nome,
		"role":      string(member.Role),
		"companyId": member.CompanyID,
		"exp":       time.Now().Add(time.Hour * 24 * 30).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	return tokenString, nil
}

// ParseToken parses and validates a JWT
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token inválido")
	}

	return claims, nil
}
