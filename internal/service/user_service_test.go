package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vip_gate_bot/internal/models"
	"vip_gate_bot/internal/repository"
)

func newTestService(t *testing.T) UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewUserService(repository.NewUserRepository(db))
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.EnsureUser(111, "alice"))
	require.NoError(t, svc.GrantVIP(111))
	require.NoError(t, svc.EnsureUser(111, "alice"))

	isVIP, err := svc.IsVIP(111)
	require.NoError(t, err)
	assert.True(t, isVIP)
}

func TestGrantThenRevokeVIP(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.EnsureUser(111, "alice"))

	require.NoError(t, svc.GrantVIP(111))
	isVIP, err := svc.IsVIP(111)
	require.NoError(t, err)
	assert.True(t, isVIP)

	require.NoError(t, svc.RevokeVIP(111))
	isVIP, err = svc.IsVIP(111)
	require.NoError(t, err)
	assert.False(t, isVIP)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.EnsureUser(1, "a"))
	require.NoError(t, svc.EnsureUser(2, "b"))
	require.NoError(t, svc.GrantVIP(2))

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.VIPUsers)
}
