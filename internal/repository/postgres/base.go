package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository. m may be nil.
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

func (r *BaseRepository) observe(operation string, start time.Time, err error) {
	r.metrics.ObserveDB(operation, start, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// wrapError prefixes err with msg. Server-side errors also carry their
// SQLSTATE and constraint so constraint failures are readable in the logs.
func wrapError(msg string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Constraint != "" {
			return fmt.Errorf("%s: %s [%s, constraint %s]: %w", msg, pqErr.Message, pqErr.Code, pqErr.Constraint, err)
		}
		return fmt.Errorf("%s: %s [%s]: %w", msg, pqErr.Message, pqErr.Code, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
