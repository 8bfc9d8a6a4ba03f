package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "go.yaml.in/yaml/v3"
)

// ScanMode records which kind of scan a user last ran, so the CLI's
// auto-mode (no subcommand, no args) can pick a sensible default.
type ScanMode string

const (
	ScanModeDiff ScanMode = "diff"
	ScanModeRepo ScanMode = "repo"
	ScanModeBoth ScanMode = "both"
)

// DefaultScanMode is used whenever the settings file is absent.
const DefaultScanMode = ScanModeBoth

// Settings is the small, user-scoped record persisted between runs.
// Canonical storage is JSON; YAML rendering is offered for the `config
// show --format yaml` command, the same dual-format convention the
// pack's config layers use internally (viper itself reads both).
type Settings struct {
	ScanMode    ScanMode `json:"scan_mode" yaml:"scan_mode"`
	LastUpdated string   `json:"last_updated" yaml:"last_updated"`
}

// DefaultPath returns the path of the user-scoped settings file,
// $HOME/.secretsentry-cli/settings.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".secretsentry-cli", "settings.json"), nil
}

// Load reads Settings from path. A missing file, or one with an empty
// scan_mode, defaults ScanMode to DefaultScanMode ("both") per §6.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{ScanMode: DefaultScanMode}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if s.ScanMode == "" {
		s.ScanMode = DefaultScanMode
	}
	return s, nil
}

// Save writes s to path as canonical JSON, creating parent directories
// as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// RenderYAML formats s as YAML, for human-facing display only; it is
// never the storage format.
func RenderYAML(s Settings) (string, error) {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("render settings as yaml: %w", err)
	}
	return string(raw), nil
}
