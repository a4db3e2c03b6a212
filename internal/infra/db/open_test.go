package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestPoolConfigFromEnv_Defaults(t *testing.T) {
	_ = os.Unsetenv("DB_MAX_OPEN_CONNS")
	_ = os.Unsetenv("DB_MAX_IDLE_CONNS")
	_ = os.Unsetenv("DB_CONN_MAX_LIFETIME")
	_ = os.Unsetenv("DB_CONN_MAX_IDLE_TIME")

	cfg := PoolConfigFromEnv()

	assert.Equal(t, DefaultPoolConfig(), cfg)
}

func TestPoolConfigFromEnv_MaxOpenConns(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{
			name:     "valid value",
			envValue: "50",
			expected: 50,
		},
		{
			name:     "non-numeric falls back to default",
			envValue: "invalid",
			expected: 25,
		},
		{
			name:     "zero falls back to default",
			envValue: "0",
			expected: 25,
		},
		{
			name:     "negative falls back to default",
			envValue: "-10",
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_OPEN_CONNS", tt.envValue)

			cfg := PoolConfigFromEnv()
			assert.Equal(t, tt.expected, cfg.MaxOpenConns)
		})
	}
}

func TestPoolConfigFromEnv_ConnMaxLifetime(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{
			name:     "hours",
			envValue: "2h",
			expected: 2 * time.Hour,
		},
		{
			name:     "mixed units",
			envValue: "1h30m",
			expected: 90 * time.Minute,
		},
		{
			name:     "not a duration falls back to default",
			envValue: "invalid",
			expected: 1 * time.Hour,
		},
		{
			name:     "zero falls back to default",
			envValue: "0s",
			expected: 1 * time.Hour,
		},
		{
			name:     "negative falls back to default",
			envValue: "-1h",
			expected: 1 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_CONN_MAX_LIFETIME", tt.envValue)

			cfg := PoolConfigFromEnv()
			assert.Equal(t, tt.expected, cfg.ConnMaxLifetime)
		})
	}
}

func TestPoolConfigFromEnv_AllCustomValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "100")
	t.Setenv("DB_MAX_IDLE_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "2h")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45m")

	cfg := PoolConfigFromEnv()

	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, 50, cfg.MaxIdleConns)
	assert.Equal(t, 2*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 45*time.Minute, cfg.ConnMaxIdleTime)
}

func TestPoolConfigFromEnv_PartialCustomValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "75")
	t.Setenv("DB_CONN_MAX_LIFETIME", "3h")

	cfg := PoolConfigFromEnv()

	assert.Equal(t, 75, cfg.MaxOpenConns)
	assert.Equal(t, 3*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestOpen_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	db, err := Open(context.Background())
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

/* ───────── integration (requires a running database) ───────── */

func TestOpen_SuccessfulConnection(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestOpen_AppliesPoolConfiguration(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_MAX_IDLE_CONNS", "25")

	db, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	assert.Equal(t, 50, db.Stats().MaxOpenConnections)
}
