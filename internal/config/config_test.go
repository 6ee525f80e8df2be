package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvBotToken, "token-123")
	t.Setenv(EnvAdminUserID, "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.BotToken)
	assert.Equal(t, "42", cfg.AdminUserID)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DefaultDBName, cfg.DBName)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_MissingBotToken(t *testing.T) {
	t.Setenv(EnvBotToken, "")
	t.Setenv(EnvAdminUserID, "42")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvBotToken)
}

func TestLoad_MissingAdminID(t *testing.T) {
	t.Setenv(EnvBotToken, "token-123")
	t.Setenv(EnvAdminUserID, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAdminUserID)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv(EnvBotToken, "token-123")
	t.Setenv(EnvAdminUserID, "42")
	t.Setenv(EnvPort, "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPort)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "shop",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "skins",
	}
	assert.Equal(t, "postgres://shop:secret@db:5433/skins?sslmode=disable", cfg.GetDBConnString())
}
