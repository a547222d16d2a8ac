package schema

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "s.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var testFS = fstest.MapFS{
	"m/000001_a.up.sql":   {Data: []byte("CREATE TABLE a (id INTEGER);")},
	"m/000001_a.down.sql": {Data: []byte("DROP TABLE a;")},
	"m/000002_b.up.sql":   {Data: []byte("CREATE TABLE b (id INTEGER);")},
	"m/000002_b.down.sql": {Data: []byte("DROP TABLE b;")},
}

func TestUpAppliesThenNoChange(t *testing.T) {
	db := openDB(t)

	res, err := Up(db, SQLite, testFS, "m")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed || res.Version != 2 || res.Dirty {
		t.Fatalf("first run = %+v", res)
	}
	if _, err := db.Exec(`INSERT INTO b (id) VALUES (1)`); err != nil {
		t.Fatalf("table b missing: %v", err)
	}

	res, err = Up(db, SQLite, testFS, "m")
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed || res.Version != 2 {
		t.Fatalf("second run = %+v", res)
	}
}

func TestUpRejectsUnknownDriver(t *testing.T) {
	if _, err := Up(openDB(t), Driver("oracle"), testFS, "m"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
