package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles. Route decisions dispatch on
// this type rather than on raw strings scattered through handlers.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleLandlord   Role = "landlord"
	RoleTenant     Role = "tenant"
	RoleContractor Role = "contractor"
	RoleUser       Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleLandlord, RoleTenant, RoleContractor, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// roleDestinations is the single dispatch table mapping a role to its
// post-login landing route.
var roleDestinations = map[Role]string{
	RoleAdmin:      "/admin/dashboard",
	RoleLandlord:   "/landlord/listings",
	RoleTenant:     "/search",
	RoleContractor: "/construction/projects",
	RoleUser:       "/search",
}

// DestinationFor returns the landing route for a role. Unknown roles
// fall back to the plain user destination.
func DestinationFor(r Role) string {
	if d, ok := roleDestinations[r]; ok {
		return d
	}
	return roleDestinations[RoleUser]
}

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone,omitempty" bson:"phone"`
	Role      Role               `json:"role" bson:"role"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
