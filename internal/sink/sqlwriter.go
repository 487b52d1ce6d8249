package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spotplatform/seedgen/internal/schema"
)

// SQLWriter renders each row as a complete INSERT statement. Stage headers
// become comment lines so the output is directly psql-pasteable.
type SQLWriter struct {
	w       io.Writer
	started bool
}

// NewSQLWriter writes statements to w, typically stdout.
func NewSQLWriter(w io.Writer) *SQLWriter {
	return &SQLWriter{w: w}
}

// BeginStage emits a comment header for the stage.
func (s *SQLWriter) BeginStage(_ context.Context, name string) error {
	prefix := ""
	if s.started {
		prefix = "\n"
	}
	s.started = true
	_, err := fmt.Fprintf(s.w, "%s-- %s\n", prefix, name)
	return err
}

// Write renders one INSERT per row.
func (s *SQLWriter) Write(_ context.Context, table schema.Table, rows []schema.Row) error {
	columns, err := schema.Columns(table)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("table %s: row has %d values, want %d", table, len(row), len(columns))
		}
		sb.WriteString("INSERT INTO ")
		sb.WriteString(string(table))
		sb.WriteString(" (")
		sb.WriteString(strings.Join(columns, ", "))
		sb.WriteString(") VALUES (")
		for i, value := range row {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Literal(value))
		}
		sb.WriteString(");\n")
	}

	_, err = io.WriteString(s.w, sb.String())
	return err
}
