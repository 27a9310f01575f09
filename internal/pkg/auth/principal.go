package auth

import (
	"net/http"

	"github.com/yigit/unirecords/internal/app/models"
)

// Principal is the authenticated caller of a single request
type Principal struct {
	UserID int64
	Name   string
	Email  string
	Role   models.Role
}

// Valid reports whether the principal identifies a user
func (p *Principal) Valid() bool {
	return p != nil && p.UserID > 0
}

// HasRole reports whether the principal holds the given role
func (p *Principal) HasRole(role models.Role) bool {
	return p.Valid() && p.Role == role
}

// Resolver resolves the identity behind an HTTP request
type Resolver interface {
	Resolve(r *http.Request) (*Principal, error)
}
