package sink

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/db"
)

func setupSinkTestDB(t *testing.T) *db.Client {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS p_category (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  deleted_at DATETIME,
  deleted_by INTEGER,
  created_at DATETIME NOT NULL,
  created_by INTEGER NOT NULL,
  updated_at DATETIME,
  updated_by INTEGER
);`
	require.NoError(t, conn.Exec(ddl).Error)

	return db.FromGorm(conn)
}

func categoryRow(name string) schema.Row {
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return schema.Row{uuid.New(), name, false, nil, nil, createdAt, 0, createdAt, 0}
}

func TestDatabaseSinkWrite(t *testing.T) {
	client := setupSinkTestDB(t)

	sink, err := NewDatabaseSink(client, nil, 2)
	require.NoError(t, err)

	rows := []schema.Row{
		categoryRow("한식"),
		categoryRow("중식"),
		categoryRow("일식"),
		categoryRow("양식"),
		categoryRow("치킨"),
	}
	require.NoError(t, sink.Write(context.Background(), schema.TableCategory, rows))

	var count int64
	require.NoError(t, client.DB().Raw("SELECT COUNT(*) FROM p_category").Scan(&count).Error)
	assert.Equal(t, int64(5), count)

	var names []string
	require.NoError(t, client.DB().Raw("SELECT name FROM p_category ORDER BY name").Scan(&names).Error)
	assert.Contains(t, names, "치킨")
}

func TestDatabaseSinkWriteEmpty(t *testing.T) {
	client := setupSinkTestDB(t)

	sink, err := NewDatabaseSink(client, nil, 10)
	require.NoError(t, err)

	require.NoError(t, sink.Write(context.Background(), schema.TableCategory, nil))
}

func TestDatabaseSinkRejectsShortRow(t *testing.T) {
	client := setupSinkTestDB(t)

	sink, err := NewDatabaseSink(client, nil, 10)
	require.NoError(t, err)

	err = sink.Write(context.Background(), schema.TableCategory, []schema.Row{{uuid.New(), "한식"}})
	assert.Error(t, err)
}

func TestNewDatabaseSinkRequiresClient(t *testing.T) {
	_, err := NewDatabaseSink(nil, nil, 10)
	assert.Error(t, err)
}
