package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigurePool(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ConfigurePool(db, DBConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	require.Equal(t, 7, db.Stats().MaxOpenConnections)

	// нули не трогают уже выставленные лимиты
	ConfigurePool(db, DBConfig{})
	require.Equal(t, 7, db.Stats().MaxOpenConnections)
}

// Интеграционный тест с настоящей базой
func TestOpenDB_WithDSN(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping integration test")
	}

	cfg := &Config{DB: DBConfig{DSN: dsn, MaxOpenConns: 2}}
	db, err := OpenDB(context.Background(), cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var x int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&x))
	require.Equal(t, 1, x)
}
