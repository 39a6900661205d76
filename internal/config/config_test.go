package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenEnvEmpty(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
}

func TestLoad_ReadsPrefixedEnv(t *testing.T) {
	t.Setenv("DOGGO_SERVER_PORT", "9090")
	t.Setenv("DOGGO_DATABASE_DRIVER", "SQLite")
	t.Setenv("DOGGO_DATABASE_DSN", "file:doggo.db")
	t.Setenv("DOGGO_DATABASE_QUERY_TIMEOUT", "750ms")
	t.Setenv("DOGGO_LOG_LEVEL", "debug")
	t.Setenv("DOGGO_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:doggo.db", cfg.Database.DSN)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.QueryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DOGGO_DATABASE_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Driver")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("DOGGO_SERVER_PORT"))
	assert.Equal(t, "database.conn_max_idle_time", envKey("DOGGO_DATABASE_CONN_MAX_IDLE_TIME"))
	assert.Equal(t, "app", envKey("DOGGO_APP"))
}
