package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/imobcrm/imobcrm_end/models"
)

// Session resolved identity of the caller: who they are, their role and the
// company scope. Built once per request from the JWT claims and passed
// explicitly into whatever needs it.
type Session struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId"`
}

// IsAdmin reports whether the session holds the admin role
func (s *Session) IsAdmin() bool {
	return models.UserRole(s.Role) == models.UserRoleADMIN
}

// GetSession resolves the caller's session from the gin context populated by
// the auth middleware.
func GetSession(c *gin.Context) (*Session, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, CreateUnauthorizedError()
	}

	claims, ok := currentUser.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("formato de claims inválido")
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("id de usuário inválido")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("papel de usuário inválido")
	}

	nome, _ := claims["nome"].(string)
	companyID, _ := claims["companyId"].(string)

	return &Session{
		ID:        id,
		Nome:      nome,
		Role:      role,
		CompanyID: companyID,
	}, nil
}
