package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := log.WithStage(context.Background(), "users")
	ctx = log.WithTable(ctx, "p_user")
	log.Info(ctx, "rows inserted")

	entry := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte(`"stage":"users"`)) {
		t.Fatalf("expected stage field to be preserved; entry=%s", entry)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"table":"p_user"`)) {
		t.Fatalf("expected table field to be preserved; entry=%s", entry)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"service":"test"`)) {
		t.Fatalf("expected service field; entry=%s", entry)
	}
}

func TestLoggerErrorCarriesError(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: buf})

	log.Error(context.Background(), "boom", errors.New("kaput"))

	if !bytes.Contains(buf.Bytes(), []byte(`"error":"kaput"`)) {
		t.Fatalf("expected error field; entry=%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"stack"`)) {
		t.Fatalf("expected stack trace on error; entry=%s", buf.String())
	}
}

func TestLoggerLevelFiltersInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: zerolog.WarnLevel, Output: buf})

	log.Info(context.Background(), "quiet")
	if buf.Len() != 0 {
		t.Fatalf("info entry leaked past warn level: %s", buf.String())
	}

	log.Warn(context.Background(), "loud")
	if buf.Len() == 0 {
		t.Fatal("warn entry was dropped")
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info for empty level, got %v", lvl)
	}
	if lvl := ParseLevel("invalid"); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info for invalid level, got %v", lvl)
	}
	if lvl := ParseLevel("DEBUG"); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v", lvl)
	}
}
