package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{DefaultProfile: "work"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultProfile: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestLoadProfileDefaults(t *testing.T) {
	dir := t.TempDir()
	p, err := LoadProfile(dir)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if p.Store.Backend != BackendSQLite {
		t.Errorf("backend = %q, want sqlite", p.Store.Backend)
	}
	if want := filepath.Join(dir, "docs.db"); p.Store.Path != want {
		t.Errorf("path = %q, want %q", p.Store.Path, want)
	}
	if p.Sync.ReadMarkInterval.Duration != 3*time.Second {
		t.Errorf("read_mark_interval = %v, want 3s", p.Sync.ReadMarkInterval)
	}
}

func TestLoadProfileFile(t *testing.T) {
	dir := t.TempDir()
	body := `
user_id = "alice"
display_name = "Alice"

[store]
backend = "postgres"
dsn = "postgres://localhost/chat"

[sync]
fanout_timeout = "2s"
read_mark_interval = "500ms"
`
	if err := os.WriteFile(filepath.Join(dir, "profile.toml"), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(dir)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if p.UserID != "alice" || p.Store.Backend != BackendPostgres {
		t.Errorf("profile = %+v", p)
	}
	if p.Sync.FanoutTimeout.Duration != 2*time.Second {
		t.Errorf("fanout_timeout = %v, want 2s", p.Sync.FanoutTimeout)
	}
	if p.Sync.ReadMarkInterval.Duration != 500*time.Millisecond {
		t.Errorf("read_mark_interval = %v, want 500ms", p.Sync.ReadMarkInterval)
	}
	if p.Sync.RecoverInterval.Duration != time.Minute {
		t.Errorf("recover_interval = %v, want default 1m", p.Sync.RecoverInterval)
	}
}

func TestLoadProfileEnvOverride(t *testing.T) {
	dir := t.TempDir()
	body := "[store]\nbackend = \"mongo\"\nuri = \"mongodb://file\"\n"
	if err := os.WriteFile(filepath.Join(dir, "profile.toml"), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvStoreURI, "mongodb://env")

	p, err := LoadProfile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if p.Store.URI != "mongodb://env" {
		t.Errorf("uri = %q, want env override", p.Store.URI)
	}
}

func TestLoadProfileDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvStoreDSN, "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvStoreDSN+"=postgres://dotenv/chat\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "profile.toml"), []byte("[store]\nbackend = \"postgres\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if p.Store.DSN != "postgres://dotenv/chat" {
		t.Errorf("dsn = %q, want value from .env", p.Store.DSN)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"unknown backend", func(p *Profile) { p.Store.Backend = "redis" }},
		{"postgres without dsn", func(p *Profile) { p.Store.Backend = BackendPostgres }},
		{"mongo without uri", func(p *Profile) { p.Store.Backend = BackendMongo }},
		{"zero timeout", func(p *Profile) { p.Sync.FanoutTimeout = Duration{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}

func TestBadDuration(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "profile.toml"), []byte("[sync]\nfanout_timeout = \"soon\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(dir); err == nil {
		t.Error("LoadProfile() expected error for bad duration")
	}
}
