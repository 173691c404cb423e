package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vip_gate_bot/internal/config"
	"vip_gate_bot/internal/models"
)

func TestConnectCreatesUsersTable(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "users.db")}

	db, err := Connect(cfg)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.User{}))

	// Startup migration must be idempotent.
	_, err = Connect(cfg)
	require.NoError(t, err)
}
