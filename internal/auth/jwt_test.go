package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"parcel-service/internal/model"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestParseValidToken(t *testing.T) {
	userID := uuid.New()
	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": userID.String(),
		"email":   "owner@example.com",
		"role":    "LANDOWNER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := NewParser("test-secret").Parse(tokenString)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user id = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != model.RoleLandowner {
		t.Errorf("role = %v, want %v", claims.Role, model.RoleLandowner)
	}
}

func TestParseWrongSecret(t *testing.T) {
	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	if _, err := NewParser("test-secret").Parse(tokenString); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseExpiredToken(t *testing.T) {
	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "ADMIN",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := NewParser("test-secret").Parse(tokenString); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseMissingUserID(t *testing.T) {
	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	if _, err := NewParser("test-secret").Parse(tokenString); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
