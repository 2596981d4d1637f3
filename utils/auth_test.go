package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imobcrm/imobcrm_end/models"
)

func TestHashPassword(t *testing.T) {
	hash := HashPassword("segredo123")

	assert.NotEqual(t, "segredo123", hash)
	assert.Len(t, hash, 64)
	// deterministic
	assert.Equal(t, hash, HashPassword("segredo123"))
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("segredo123")

	assert.True(t, VerifyPassword("segredo123", hash))
	assert.False(t, VerifyPassword("outra", hash))
	assert.False(t, VerifyPassword("segredo123", "not-a-hash"))
}

func TestGenerateAndParseToken(t *testing.T) {
	member := &models.TeamMember{
		ID:        primitive.NewObjectID(),
		Nome:      "Maria",
		Role:      models.UserRoleADMIN,
		CompanyID: "company1",
	}

	token, err := GenerateToken(member)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, member.ID.Hex(), claims["id"])
	assert.Equal(t, "Maria", claims["nome"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "company1", claims["companyId"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
