// Package config resolves the service configuration from defaults, an
// optional YAML file, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"classical-cipher-backend/crypto"
)

// DefaultPath is read when Load is given no explicit path.
const DefaultPath = "cipherlab.yml"

// Config captures the cipherlab configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Keys   KeysConfig   `yaml:"keys"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxBodyBytes   int64    `yaml:"max_body_bytes"`
}

// KeysConfig holds the default key material for each cipher.
type KeysConfig struct {
	Vigenere        string `yaml:"vigenere"`
	Transposition   string `yaml:"transposition"`
	DoubleColumn    string `yaml:"double_column"`
	DoubleRow       string `yaml:"double_row"`
	Playfair        string `yaml:"playfair"`
	CascadeVigenere string `yaml:"cascade_vigenere"`
	CascadePlayfair string `yaml:"cascade_playfair"`
}

// ForKind returns the configured keys for kind in the order crypto.New
// expects them. The cascade has no flat key list and yields nil.
func (k KeysConfig) ForKind(kind crypto.Kind) []string {
	switch kind {
	case crypto.KindVigenere:
		return []string{k.Vigenere}
	case crypto.KindTransposition:
		return []string{k.Transposition}
	case crypto.KindDoubleTransposition:
		return []string{k.DoubleColumn, k.DoubleRow}
	case crypto.KindPlayfair:
		return []string{k.Playfair}
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxBodyBytes:   1 << 20,
		},
		Keys: KeysConfig{
			Vigenere:        "CRYPTOGRAPHY",
			Transposition:   "SECRET",
			DoubleColumn:    "SECRET",
			DoubleRow:       "CRYPTO",
			Playfair:        "MATRIX",
			CascadeVigenere: "KEY",
			CascadePlayfair: "CRYPTO",
		},
	}
}

// Load resolves the configuration. A missing file at DefaultPath is not an
// error; a missing explicit path is. Environment variables win over the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server port cannot be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid server port %q: %w", c.Server.Port, err)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val := strings.TrimSpace(os.Getenv("PORT")); val != "" {
		cfg.Server.Port = val
	}
	if val := strings.TrimSpace(os.Getenv("CIPHERLAB_ALLOWED_ORIGINS")); val != "" {
		var origins []string
		for _, o := range strings.Split(val, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
	if val := strings.TrimSpace(os.Getenv("CIPHERLAB_MAX_BODY_BYTES")); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Server.MaxBodyBytes = parsed
		}
	}
	if val := os.Getenv("CIPHERLAB_VIGENERE_KEY"); val != "" {
		cfg.Keys.Vigenere = val
	}
	if val := os.Getenv("CIPHERLAB_TRANSPOSITION_KEY"); val != "" {
		cfg.Keys.Transposition = val
	}
	if val := os.Getenv("CIPHERLAB_DOUBLE_COLUMN_KEY"); val != "" {
		cfg.Keys.DoubleColumn = val
	}
	if val := os.Getenv("CIPHERLAB_DOUBLE_ROW_KEY"); val != "" {
		cfg.Keys.DoubleRow = val
	}
	if val := os.Getenv("CIPHERLAB_PLAYFAIR_KEY"); val != "" {
		cfg.Keys.Playfair = val
	}
	if val := os.Getenv("CIPHERLAB_CASCADE_VIGENERE_KEY"); val != "" {
		cfg.Keys.CascadeVigenere = val
	}
	if val := os.Getenv("CIPHERLAB_CASCADE_PLAYFAIR_KEY"); val != "" {
		cfg.Keys.CascadePlayfair = val
	}
}
