package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/db"
	pkgerrors "github.com/spotplatform/seedgen/pkg/errors"
	"github.com/spotplatform/seedgen/pkg/logger"
	"gorm.io/gorm"
)

// DatabaseSink lands rows with multi-row parameterized inserts, one
// transaction per table write. A failed batch aborts the run; there is no
// compensation beyond the rolled-back transaction.
type DatabaseSink struct {
	client    *db.Client
	log       *logger.Logger
	batchSize int
}

// NewDatabaseSink builds a sink over an open client. batchSize bounds the
// rows per INSERT statement.
func NewDatabaseSink(client *db.Client, logg *logger.Logger, batchSize int) (*DatabaseSink, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if batchSize < 1 {
		batchSize = 1000
	}
	return &DatabaseSink{client: client, log: logg, batchSize: batchSize}, nil
}

// BeginStage logs the stage boundary.
func (d *DatabaseSink) BeginStage(ctx context.Context, name string) error {
	if d.log != nil {
		d.log.Info(d.log.WithStage(ctx, name), "stage started")
	}
	return nil
}

// Write inserts all rows for the table inside a single transaction.
func (d *DatabaseSink) Write(ctx context.Context, table schema.Table, rows []schema.Row) error {
	if len(rows) == 0 {
		return nil
	}

	columns, err := schema.Columns(table)
	if err != nil {
		return err
	}

	err = d.client.WithTx(ctx, func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += d.batchSize {
			end := start + d.batchSize
			if end > len(rows) {
				end = len(rows)
			}
			if err := insertChunk(tx, table, columns, rows[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("bulk insert into %s", table))
	}

	if d.log != nil {
		lctx := d.log.WithFields(ctx, map[string]any{"table": table.String(), "rows": len(rows)})
		d.log.Info(lctx, "rows inserted")
	}
	return nil
}

func insertChunk(tx *gorm.DB, table schema.Table, columns []string, rows []schema.Row) error {
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(string(table))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("table %s: row has %d values, want %d", table, len(row), len(columns))
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholder)
		args = append(args, row...)
	}

	return tx.Exec(sb.String(), args...).Error
}

// Truncate empties every target table, children first, cascading. This is the
// destructive opt-in pre-step for repeatable seeding runs.
func (d *DatabaseSink) Truncate(ctx context.Context) error {
	names := make([]string, len(schema.TruncateOrder))
	for i, table := range schema.TruncateOrder {
		names[i] = string(table)
	}
	stmt := "TRUNCATE TABLE " + strings.Join(names, ", ") + " CASCADE"

	if err := d.client.Exec(ctx, stmt).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "truncate tables")
	}
	if d.log != nil {
		d.log.Info(ctx, "all target tables truncated")
	}
	return nil
}
