package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"time"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"oqa/internal/results"
)

// ExportMeta identifies the dataset the exported rows were computed from.
type ExportMeta struct {
	Dataset     string
	Fingerprint string
}

// Open opens (or creates) a DuckDB export database and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// Export appends per-run entropy rows into the runs and trajectories
// tables. Each (model, run_id) pair becomes one runs row keyed by a fresh
// UUID; its trajectory rows are bulk-inserted through a DuckDB appender.
func Export(ctx context.Context, db *sql.DB, meta ExportMeta, rows []results.RunRow) error {
	if ctx == nil {
		return errors.New("store: context is nil")
	}
	if db == nil {
		return errors.New("store: db is nil")
	}
	if len(rows) == 0 {
		return errors.New("store: no rows to export")
	}

	type runKey struct {
		model string
		runID string
	}
	grouped := map[runKey][]results.RunRow{}
	order := make([]runKey, 0)
	for _, row := range rows {
		key := runKey{model: row.Model, runID: row.RunID}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], row)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].model != order[j].model {
			return order[i].model < order[j].model
		}
		return order[i].runID < order[j].runID
	})

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	appender, err := newTrajectoryAppender(conn)
	if err != nil {
		return err
	}

	createdAt := time.Now().UTC()
	for _, key := range order {
		runUUID := uuid.New()
		if _, err := conn.ExecContext(
			ctx,
			`INSERT INTO runs (run_uuid, model, run_id, dataset, dataset_fingerprint, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runUUID,
			key.model,
			key.runID,
			meta.Dataset,
			meta.Fingerprint,
			createdAt,
		); err != nil {
			appender.Close()
			return fmt.Errorf("insert run %s/%s: %w", key.model, key.runID, err)
		}
		trajectory := grouped[key]
		sort.Slice(trajectory, func(i, j int) bool { return trajectory[i].Step < trajectory[j].Step })
		for _, row := range trajectory {
			if err := appender.AppendRow(duckdbdriver.UUID(runUUID), int32(row.Step), row.Bits); err != nil {
				appender.Close()
				return fmt.Errorf("append trajectory row: %w", err)
			}
		}
	}
	if err := appender.Close(); err != nil {
		return fmt.Errorf("flush appender: %w", err)
	}
	return nil
}

// newTrajectoryAppender creates a DuckDB appender for bulk trajectory inserts.
func newTrajectoryAppender(conn *sql.Conn) (*duckdbdriver.Appender, error) {
	var appender *duckdbdriver.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdbdriver.NewAppenderFromConn(rawConn, "", "trajectories")
		return err
	}); err != nil {
		return nil, err
	}
	if appender == nil {
		return nil, fmt.Errorf("duckdb appender initialization failed")
	}
	return appender, nil
}
