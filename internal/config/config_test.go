package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helper function tests
// ---------------------------------------------------------------------------

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		setVal   *string // nil = don't set; pointer to distinguish "" from unset
		fallback string
		want     string
	}{
		{name: "returns fallback when unset", key: "BHV360_TEST_GETENV_UNSET", setVal: nil, fallback: "default", want: "default"},
		{name: "returns env value when set", key: "BHV360_TEST_GETENV_SET", setVal: strPtr("custom"), fallback: "default", want: "custom"},
		{name: "returns fallback when empty string", key: "BHV360_TEST_GETENV_EMPTY", setVal: strPtr(""), fallback: "default", want: "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setVal != nil {
				t.Setenv(tc.key, *tc.setVal)
			}

			got := getEnv(tc.key, tc.fallback)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		setVal   *string
		fallback int
		want     int
		wantErr  bool
	}{
		{name: "returns fallback when unset", key: "BHV360_TEST_INT_UNSET", setVal: nil, fallback: 42, want: 42},
		{name: "parses valid int", key: "BHV360_TEST_INT_VALID", setVal: strPtr("8080"), fallback: 0, want: 8080},
		{name: "parses negative int", key: "BHV360_TEST_INT_NEG", setVal: strPtr("-1"), fallback: 0, want: -1},
		{name: "returns fallback for empty string", key: "BHV360_TEST_INT_EMPTY", setVal: strPtr(""), fallback: 25, want: 25},
		{name: "errors on non-numeric", key: "BHV360_TEST_INT_NAN", setVal: strPtr("abc"), fallback: 0, wantErr: true},
		{name: "errors on float", key: "BHV360_TEST_INT_FLOAT", setVal: strPtr("3.14"), fallback: 0, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setVal != nil {
				t.Setenv(tc.key, *tc.setVal)
			}

			got, err := getEnvInt(tc.key, tc.fallback)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		setVal   *string
		fallback time.Duration
		want     time.Duration
		wantErr  bool
	}{
		{name: "returns fallback when unset", key: "BHV360_TEST_DUR_UNSET", setVal: nil, fallback: 5 * time.Second, want: 5 * time.Second},
		{name: "parses seconds", key: "BHV360_TEST_DUR_SEC", setVal: strPtr("30s"), fallback: 0, want: 30 * time.Second},
		{name: "parses composite", key: "BHV360_TEST_DUR_COMP", setVal: strPtr("1h30m"), fallback: 0, want: 90 * time.Minute},
		{name: "errors on invalid", key: "BHV360_TEST_DUR_INV", setVal: strPtr("notaduration"), fallback: 0, wantErr: true},
		{name: "errors on bare number", key: "BHV360_TEST_DUR_BARE", setVal: strPtr("30"), fallback: 0, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setVal != nil {
				t.Setenv(tc.key, *tc.setVal)
			}

			got, err := getEnvDuration(tc.key, tc.fallback)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetEnvList(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		setVal   *string
		fallback []string
		want     []string
	}{
		{name: "returns fallback when unset", key: "BHV360_TEST_LIST_UNSET", setVal: nil, fallback: []string{"a"}, want: []string{"a"}},
		{name: "splits on comma", key: "BHV360_TEST_LIST_SPLIT", setVal: strPtr("a,b,c"), fallback: nil, want: []string{"a", "b", "c"}},
		{name: "trims whitespace", key: "BHV360_TEST_LIST_TRIM", setVal: strPtr(" a , b "), fallback: nil, want: []string{"a", "b"}},
		{name: "drops empty entries", key: "BHV360_TEST_LIST_EMPTY", setVal: strPtr("a,,b,"), fallback: nil, want: []string{"a", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setVal != nil {
				t.Setenv(tc.key, *tc.setVal)
			}

			got := getEnvList(tc.key, tc.fallback)
			assert.Equal(t, tc.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// Load() error cases
// ---------------------------------------------------------------------------

func TestLoad_MissingJWTSecret(t *testing.T) {
	// All defaults apply; JWT secret is empty => must fail.
	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BHV360_JWT_SECRET")
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("BHV360_JWT_SECRET", "too-short")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoad_InvalidEnvVars(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
	}{
		{name: "DB_PORT not a number", envKey: "BHV360_DB_PORT", envVal: "abc"},
		{name: "DB_PORT zero", envKey: "BHV360_DB_PORT", envVal: "0"},
		{name: "DB_PORT too high", envKey: "BHV360_DB_PORT", envVal: "65536"},
		{name: "DB_MAX_CONNS zero", envKey: "BHV360_DB_MAX_CONNS", envVal: "0"},
		{name: "JWT_ACCESS_TTL invalid", envKey: "BHV360_JWT_ACCESS_TTL", envVal: "badval"},
		{name: "JWT_ACCESS_TTL zero", envKey: "BHV360_JWT_ACCESS_TTL", envVal: "0s"},
		{name: "JWT_REFRESH_TTL negative", envKey: "BHV360_JWT_REFRESH_TTL", envVal: "-1h"},
		{name: "SERVER_READ_TIMEOUT zero", envKey: "BHV360_SERVER_READ_TIMEOUT", envVal: "0s"},
		{name: "SERVER_WRITE_TIMEOUT invalid", envKey: "BHV360_SERVER_WRITE_TIMEOUT", envVal: "notduration"},
		{name: "REDIS_DB not a number", envKey: "BHV360_REDIS_DB", envVal: "abc"},
		{name: "SELF_HOSTED not a bool", envKey: "BHV360_SELF_HOSTED", envVal: "yes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Always set JWT secret so failures are from the var under test.
			t.Setenv("BHV360_JWT_SECRET", "test-secret-for-error-cases-32ch!")
			t.Setenv(tc.envKey, tc.envVal)

			cfg, err := Load()
			require.Error(t, err, "expected error for %s=%q", tc.envKey, tc.envVal)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.envKey)
		})
	}
}

// ---------------------------------------------------------------------------
// Load() happy path
// ---------------------------------------------------------------------------

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BHV360_JWT_SECRET", "test-secret-that-is-at-least-32ch")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.SelfHosted)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BHV360_JWT_SECRET", "test-secret-that-is-at-least-32ch")
	t.Setenv("BHV360_DB_HOST", "db.internal")
	t.Setenv("BHV360_DB_PORT", "5433")
	t.Setenv("BHV360_SERVER_ADDR", ":9090")
	t.Setenv("BHV360_CORS_ORIGINS", "https://app.bhv360.nl,https://partner.bhv360.nl")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://app.bhv360.nl", "https://partner.bhv360.nl"}, cfg.Server.CORSOrigins)
}

func TestLoad_License(t *testing.T) {
	t.Run("parses license vars", func(t *testing.T) {
		t.Setenv("BHV360_JWT_SECRET", "test-secret-that-is-at-least-32ch")
		t.Setenv("BHV360_SELF_HOSTED", "true")
		t.Setenv("BHV360_LICENSE_ORG", "Acme BV")
		t.Setenv("BHV360_LICENSE_MODULES", "rapportage-analytics,white-label")
		t.Setenv("BHV360_LICENSE_MAX_USERS", "100")
		t.Setenv("BHV360_LICENSE_MAX_BUILDINGS", "10")
		t.Setenv("BHV360_LICENSE_EXPIRES", "2027-01-01T00:00:00Z")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "Acme BV", cfg.License.Org)
		assert.Equal(t, []string{"rapportage-analytics", "white-label"}, cfg.License.Modules)
		assert.Equal(t, 100, cfg.License.MaxUsers)
		assert.Equal(t, 10, cfg.License.MaxBuildings)
		assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), cfg.License.ExpiresAt)
	})

	t.Run("unset license stays empty", func(t *testing.T) {
		t.Setenv("BHV360_JWT_SECRET", "test-secret-that-is-at-least-32ch")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Empty(t, cfg.License.Org)
		assert.True(t, cfg.License.ExpiresAt.IsZero())
	})

	t.Run("errors on invalid expiry", func(t *testing.T) {
		t.Setenv("BHV360_JWT_SECRET", "test-secret-that-is-at-least-32ch")
		t.Setenv("BHV360_LICENSE_ORG", "Acme BV")
		t.Setenv("BHV360_LICENSE_EXPIRES", "tomorrow")

		cfg, err := Load()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BHV360_LICENSE_EXPIRES")
	})

	t.Run("errors on license without expiry", func(t *testing.T) {
		t.Setenv("BHV360_JWT_SECRET", "test-secret-that-is-at-least-32ch")
		t.Setenv("BHV360_LICENSE_ORG", "Acme BV")

		cfg, err := Load()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BHV360_LICENSE_EXPIRES")
	})
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "bhv360",
		Password: "secret", DBName: "bhv360_dev", SSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=bhv360 password=secret dbname=bhv360_dev sslmode=disable",
		c.DSN(),
	)
}

func strPtr(s string) *string { return &s }
