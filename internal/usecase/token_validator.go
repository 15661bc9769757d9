package usecase

import (
	"parkease/internal/domain/user"
	"parkease/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is what a bearer token claims about its holder. Lifecycle
// commands reload the actor from storage instead of trusting the role.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	if claims.UserID == uuid.Nil {
		return Principal{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
