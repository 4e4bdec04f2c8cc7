package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the optional TOML configuration file.
type FileConfig struct {
	Parse struct {
		Repair  bool `toml:"repair"`
		SkipCRC bool `toml:"skip_crc"`
	} `toml:"parse"`
	Encode struct {
		Version string `toml:"version"`
	} `toml:"encode"`
	Convert struct {
		Manufacturer string `toml:"manufacturer"`
		Model        string `toml:"model"`
		SerialNumber string `toml:"serial_number"`
		Format       string `toml:"format"`
	} `toml:"convert"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rtp", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rtp", "config.toml")
}

func expandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// loadFileConfig reads the configuration at path.  An empty path means
// the default location, which need not exist.
func loadFileConfig(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
