package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the global ~/.chatsync/config.toml.
type Config struct {
	DefaultProfile string `toml:"default_profile"`
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// Duration is a time.Duration written as a string ("10s") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"

	EnvStoreDSN = "CHATSYNC_STORE_DSN"
	EnvStoreURI = "CHATSYNC_STORE_URI"
)

type StoreConfig struct {
	Backend string `toml:"backend"`
	// Path is the SQLite file; relative paths resolve against the profile dir.
	Path     string `toml:"path,omitempty"`
	DSN      string `toml:"dsn,omitempty"`
	URI      string `toml:"uri,omitempty"`
	Database string `toml:"database,omitempty"`
	// WatchExternal follows writes made by other processes.
	WatchExternal bool `toml:"watch_external"`
}

type SyncConfig struct {
	FanoutTimeout    Duration `toml:"fanout_timeout"`
	ReadMarkInterval Duration `toml:"read_mark_interval"`
	RecoverInterval  Duration `toml:"recover_interval"`
	MessageWindow    int      `toml:"message_window"`
}

type MediaConfig struct {
	Dir string `toml:"dir,omitempty"`
}

type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// Profile is a profile's profile.toml.
type Profile struct {
	UserID      string      `toml:"user_id"`
	DisplayName string      `toml:"display_name"`
	AvatarURL   string      `toml:"avatar_url,omitempty"`
	Store       StoreConfig `toml:"store"`
	Sync        SyncConfig  `toml:"sync"`
	Media       MediaConfig `toml:"media"`
	Log         LogConfig   `toml:"log"`
}

// DefaultProfile returns the settings a fresh profile starts with.
func DefaultProfile() Profile {
	return Profile{
		Store: StoreConfig{Backend: BackendSQLite, Path: "docs.db", Database: "chatsync"},
		Sync: SyncConfig{
			FanoutTimeout:    Duration{10 * time.Second},
			ReadMarkInterval: Duration{3 * time.Second},
			RecoverInterval:  Duration{time.Minute},
			MessageWindow:    200,
		},
		Media: MediaConfig{Dir: "media"},
		Log:   LogConfig{Level: "info"},
	}
}

// LoadProfile reads dir/profile.toml over the defaults. A missing file
// yields the defaults. Variables from dir/.env are loaded first; store
// secrets in the environment override the file.
func LoadProfile(dir string) (*Profile, error) {
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	p := DefaultProfile()
	path := filepath.Join(dir, "profile.toml")
	if _, err := toml.DecodeFile(path, &p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if v := os.Getenv(EnvStoreDSN); v != "" {
		p.Store.DSN = v
	}
	if v := os.Getenv(EnvStoreURI); v != "" {
		p.Store.URI = v
	}
	p.resolve(dir)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) resolve(dir string) {
	if p.Store.Path != "" && !filepath.IsAbs(p.Store.Path) {
		p.Store.Path = filepath.Join(dir, p.Store.Path)
	}
	if p.Media.Dir != "" && !filepath.IsAbs(p.Media.Dir) {
		p.Media.Dir = filepath.Join(dir, p.Media.Dir)
	}
}

// Validate checks the backend settings are complete.
func (p *Profile) Validate() error {
	switch p.Store.Backend {
	case BackendSQLite:
		if p.Store.Path == "" {
			return errors.New("store.path is required for sqlite")
		}
	case BackendPostgres:
		if p.Store.DSN == "" {
			return fmt.Errorf("store.dsn or %s is required for postgres", EnvStoreDSN)
		}
	case BackendMongo:
		if p.Store.URI == "" {
			return fmt.Errorf("store.uri or %s is required for mongo", EnvStoreURI)
		}
		if p.Store.Database == "" {
			return errors.New("store.database is required for mongo")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", p.Store.Backend)
	}
	if p.Sync.FanoutTimeout.Duration <= 0 {
		return errors.New("sync.fanout_timeout must be positive")
	}
	if p.Sync.ReadMarkInterval.Duration <= 0 {
		return errors.New("sync.read_mark_interval must be positive")
	}
	if p.Sync.RecoverInterval.Duration <= 0 {
		return errors.New("sync.recover_interval must be positive")
	}
	return nil
}
