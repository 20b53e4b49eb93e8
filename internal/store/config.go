package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Config is the local client state under ~/.campus/config.json: which server
// to talk to and the authenticated session, if any. Pure client lifecycle;
// everything authoritative lives on the server.
type Config struct {
	// ServerURL is the campus server base URL (e.g. https://campus.example.com).
	ServerURL string `json:"serverUrl,omitempty"`

	// SessionCookie is the cookie pair captured at sign-in, replayed on every
	// request. Empty means signed out.
	SessionCookie string `json:"sessionCookie,omitempty"`

	// Role is the role the server resolved at sign-in ("Teacher"/"Student").
	// Display gating only; the server re-checks every mutation.
	Role string `json:"role,omitempty"`

	// Email of the signed-in account, shown in the TUI header.
	Email string `json:"email,omitempty"`

	// ClientID is a stable per-install identifier sent as X-Client-ID.
	ClientID string `json:"clientId,omitempty"`
}

func (c Config) SignedIn() bool {
	return strings.TrimSpace(c.SessionCookie) != ""
}

// EnsureClientID mints the per-install id on first use. Callers save the
// config afterwards so the id stays stable across runs.
func (c *Config) EnsureClientID() string {
	if strings.TrimSpace(c.ClientID) == "" {
		c.ClientID = uuid.NewString()
	}
	return c.ClientID
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.campus).
	if dir := strings.TrimSpace(os.Getenv("CAMPUS_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".campus"), nil
}

func configPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the config file. A missing file is not an error; it yields
// the zero config so first-run flows work without an init step.
func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write cannot truncate the config.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
