// Package config loads the client configuration for one bank access from a
// TOML file. Credentials (PIN) are intentionally not part of the file;
// they are transient input the application supplies at runtime.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
)

// Defaults for the registered product identification. Banks reject dialogs
// from unregistered products, so real deployments must override these.
const (
	DefaultProductID      = "9FA6681DEC0CF3046BFC2F8A6"
	DefaultProductVersion = "1.0"
)

// Config is the per-bank client configuration.
type Config struct {
	// BankCode is the bank routing id (Bankleitzahl).
	BankCode string
	// URL is the FinTS access point.
	URL string
	// UserID is the bank-assigned login id.
	UserID string
	// ProductID and ProductVersion identify the registered client product.
	ProductID      string
	ProductVersion string
	// TANMethodID and TANMediumName are optional step-up defaults.
	TANMethodID   string
	TANMediumName string
}

type fileConfig struct {
	BankCode       string `toml:"bank_code"`
	URL            string `toml:"url"`
	UserID         string `toml:"user_id"`
	ProductID      string `toml:"product_id"`
	ProductVersion string `toml:"product_version"`
	TANMethod      string `toml:"tan_method"`
	TANMedium      string `toml:"tan_medium"`
}

// Default returns a configuration with product defaults applied.
func Default() Config {
	return Config{
		ProductID:      DefaultProductID,
		ProductVersion: DefaultProductVersion,
	}
}

// Load reads the configuration file and applies it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "load fints config")
	}

	if meta.IsDefined("bank_code") {
		cfg.BankCode = strings.TrimSpace(raw.BankCode)
	}
	if meta.IsDefined("url") {
		cfg.URL = strings.TrimSpace(raw.URL)
	}
	if meta.IsDefined("user_id") {
		cfg.UserID = strings.TrimSpace(raw.UserID)
	}
	if meta.IsDefined("product_id") {
		if v := strings.TrimSpace(raw.ProductID); v != "" {
			cfg.ProductID = v
		}
	}
	if meta.IsDefined("product_version") {
		if v := strings.TrimSpace(raw.ProductVersion); v != "" {
			cfg.ProductVersion = v
		}
	}
	if meta.IsDefined("tan_method") {
		cfg.TANMethodID = strings.TrimSpace(raw.TANMethod)
	}
	if meta.IsDefined("tan_medium") {
		cfg.TANMediumName = strings.TrimSpace(raw.TANMedium)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the required fields are present.
func (c Config) Validate() error {
	if c.BankCode == "" {
		return errors.New("config: bank_code is required")
	}
	if c.URL == "" {
		return errors.New("config: url is required")
	}
	if !strings.HasPrefix(c.URL, "https://") {
		return errors.Errorf("config: url must use https, got %q", c.URL)
	}
	if c.UserID == "" {
		return errors.New("config: user_id is required")
	}
	return nil
}
