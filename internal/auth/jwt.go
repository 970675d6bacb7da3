package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"parcel-service/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the access-token claims this service consumes. Token issuance
// belongs to the identity service.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   model.Role
}

type rawClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(tokenString string) (*Claims, error) {
	var raw rawClaims

	token, err := jwt.ParseWithClaims(tokenString, &raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(raw.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID: userID,
		Email:  raw.Email,
		Role:   model.Role(raw.Role),
	}, nil
}
