package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/config"
)

func TestOpen_AppliesPoolLimits(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Host:         "localhost",
		Port:         5432,
		User:         "admin",
		Password:     "securepass",
		Name:         "hospital",
		SSLMode:      "disable",
		MaxOpenConns: 10,
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "postgres", db.DriverName())
	assert.Equal(t, 10, db.Stats().MaxOpenConnections)
}
