// Package sink holds the pluggable output capability: generated rows either
// render as SQL text or land in Postgres through page-sized bulk inserts.
package sink

import (
	"context"

	"github.com/spotplatform/seedgen/internal/schema"
)

// Sink receives the rows a pipeline stage produced. Implementations must
// treat Write as one bulk unit per table per stage.
type Sink interface {
	// BeginStage marks the start of a named pipeline stage.
	BeginStage(ctx context.Context, name string) error
	// Write persists all rows for one table in registry column order.
	Write(ctx context.Context, table schema.Table, rows []schema.Row) error
}
