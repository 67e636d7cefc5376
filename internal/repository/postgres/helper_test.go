package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *metrics.Metrics) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mockDB.Close()
	})

	return sqlx.NewDb(mockDB, "sqlmock"), mock, metrics.New(prometheus.NewRegistry(), "test")
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }
