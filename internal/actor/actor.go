// Package actor resolves the authenticated caller from JWT claims into a
// typed (id, role) pair consumed by the service layer.
package actor

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor identifies the authenticated caller of an operation. Services
// branch on Role rather than re-reading it from claims.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// User builds a citizen actor. Used directly in tests.
func User(id uuid.UUID) Actor { return Actor{ID: id, Role: RoleUser} }

// Admin builds an administrator actor. Used directly in tests.
func Admin(id uuid.UUID) Actor { return Actor{ID: id, Role: RoleAdmin} }

// FromContext extracts the actor from the JWT stored in Fiber locals by
// the auth middleware.
func FromContext(c *fiber.Ctx) (Actor, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Actor{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Actor{}, errors.New("missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Actor{}, err
	}

	role := RoleUser
	if r, ok := claims["role"].(string); ok && Role(r) == RoleAdmin {
		role = RoleAdmin
	}

	return Actor{ID: id, Role: role}, nil
}
