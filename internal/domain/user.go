package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"password"`
	Active            bool      `json:"active"`
	RoleID            int       `json:"role_id"`
	SalespersonFilter *string   `json:"salesperson_filter"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Scope retorna o escopo de acesso do usuário
func (u *User) Scope() AccessScope {
	if u.SalespersonFilter == nil {
		return Unrestricted()
	}
	return ScopeFor(*u.SalespersonFilter)
}

type Claims struct {
	UserID            int
	Username          string
	UserRoleID        int
	SalespersonFilter *string
	jwt.RegisteredClaims
}

// Scope retorna o escopo de acesso contido no token
func (c *Claims) Scope() AccessScope {
	if c.SalespersonFilter == nil {
		return Unrestricted()
	}
	return ScopeFor(*c.SalespersonFilter)
}
