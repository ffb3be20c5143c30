package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0002_add_index.sql", "CREATE INDEX idx ON t (c);")
	writeFile(t, dir, "0001_init.sql", "CREATE TABLE t (c INT);")
	writeFile(t, dir, "0010_later.sql", "ALTER TABLE t ADD COLUMN d INT;")
	writeFile(t, dir, "README.md", "not a migration")
	writeFile(t, dir, "notes.sql", "no numeric prefix")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	for i, want := range []int{1, 2, 10} {
		if migrations[i].Version != want {
			t.Errorf("migration %d: expected version %d, got %d", i, want, migrations[i].Version)
		}
	}
	if migrations[0].SQL != "CREATE TABLE t (c INT);" {
		t.Errorf("unexpected SQL: %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	m := NewMigrator(nil, "/nonexistent/migrations")
	if _, err := m.LoadMigrations(); err == nil {
		t.Fatal("expected error")
	}
}

func TestTxFromContext_Empty(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Errorf("expected nil tx, got %v", tx)
	}
}
