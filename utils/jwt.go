package utils

import (
	"errors"
	"fmt"
	"time"

	"slotify/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT with the given subject (host ID) and
// email. The token expires after the specified duration.
func GenerateToken(subject, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken validates a token and returns the subject, email
// and name claims.
func ExtractClaimsFromToken(tokenString string) (subject, email string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	mail, _ := claims["email"].(string)

	return sub, mail, nil
}

// GenerateManageToken issues a signed, time-limited capability token that
// authorizes one management action (reschedule or cancel) on one booking.
// It replaces guessable static action strings with a verifiable credential.
func GenerateManageToken(bookingID, purpose string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     bookingID,
		"purpose": purpose,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// VerifyManageToken checks that the token authorizes the given purpose on
// the given booking.
func VerifyManageToken(tokenString, bookingID, purpose string) error {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return fmt.Errorf("invalid manage token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid manage token")
	}
	if sub, _ := claims["sub"].(string); sub != bookingID {
		return errors.New("manage token is for a different booking")
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return errors.New("manage token does not authorize this action")
	}
	return nil
}
