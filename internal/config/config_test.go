package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"sqlite with path", Config{DBDriver: DriverSQLite, DBPath: "questions.db", TracingSamplerRatio: 1}, false},
		{"sqlite without path", Config{DBDriver: DriverSQLite}, true},
		{"unknown driver", Config{DBDriver: "mysql", DBPath: "x"}, true},
		{"postgres development defaults", Config{
			Env: "development", DBDriver: DriverPostgres, DBHost: "localhost", DBName: "questions",
			DBPassword: "password", DBSSLMode: "disable", DBMaxOpenConns: 25, DBMaxIdleConns: 5,
		}, false},
		{"postgres production weak password", Config{
			Env: "production", DBDriver: DriverPostgres, DBHost: "db", DBName: "questions",
			DBPassword: "password", DBSSLMode: "require", DBMaxOpenConns: 25,
		}, true},
		{"postgres production without tls", Config{
			Env: "prod", DBDriver: DriverPostgres, DBHost: "db", DBName: "questions",
			DBPassword: "s3cure-and-long", DBSSLMode: "disable", DBMaxOpenConns: 25,
		}, true},
		{"postgres production ok", Config{
			Env: "production", DBDriver: DriverPostgres, DBHost: "db", DBName: "questions",
			DBPassword: "s3cure-and-long", DBSSLMode: "verify-full", DBMaxOpenConns: 25,
		}, false},
		{"postgres zero pool", Config{
			DBDriver: DriverPostgres, DBHost: "db", DBName: "questions",
		}, true},
		{"sampler ratio out of range", Config{DBDriver: DriverSQLite, DBPath: "q.db", TracingSamplerRatio: 1.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_DefaultsAndNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_DRIVER")
	defer os.Unsetenv("DB_PATH")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_DRIVER", "  SQLite ")
	os.Setenv("DB_PATH", ":memory:")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, ":memory:", c.DBPath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 200, c.DBSlowQueryMS)
	assert.True(t, c.DBAutoMigrate)
	assert.Empty(t, c.RedisURL)
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PATH=from-dotenv.db\nLOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)
	defer os.Unsetenv("DB_PATH")
	defer os.Unsetenv("LOG_LEVEL")
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", c.DBPath)
	assert.Equal(t, "debug", c.LogLevel)
}
