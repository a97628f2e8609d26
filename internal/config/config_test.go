package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "PORT", "SEED_USERS", "RATE_LIMIT_BURST", "SESSION_STORE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "schedule.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Len(t, cfg.SeedUsers, 3)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("SEED_USERS", " alice, ,bob ")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, []string{"alice", "bob"}, cfg.SeedUsers)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoad_DBPortFollowsDriver(t *testing.T) {
	t.Setenv("DB_PORT", "")

	t.Setenv("DB_DRIVER", DriverPostgres)
	assert.Equal(t, "5432", Load().DBPort)

	t.Setenv("DB_DRIVER", DriverMySQL)
	assert.Equal(t, "3306", Load().DBPort)

	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_PORT", "6543")
	assert.Equal(t, "6543", Load().DBPort)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		DBDriver:   DriverMySQL,
		DBHost:     "db",
		DBPort:     "3306",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "schedule",
	}

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(db:3306)/schedule?charset=utf8mb4&parseTime=True&loc=Local", dsn)

	cfg.DBDriver = DriverSQLite
	cfg.DBPath = "test.db"
	dsn, err = cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "test.db?_foreign_keys=on", dsn)

	cfg.DBDriver = DriverPostgres
	dsn, err = cfg.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "dbname=schedule")

	cfg.DBDriver = "oracle"
	_, err = cfg.DSN()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOARD_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BOARD_TEST_VALUE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("BOARD_TEST_VALUE"))
}
