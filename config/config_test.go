package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigNormalizesAdminEmail(t *testing.T) {
	t.Setenv("INITIAL_ADMIN_EMAIL", "  Admin@ImobCRM.com.BR ")

	cfg := LoadConfig()
	assert.Equal(t, "admin@imobcrm.com.br", cfg.InitialAdminEmail)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("INITIAL_ADMIN_EMAIL", "")

	cfg := LoadConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "imobcrm", cfg.MongoDB)
	assert.Equal(t, "admin@imobcrm.com.br", cfg.InitialAdminEmail)
}
