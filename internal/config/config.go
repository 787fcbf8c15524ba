// internal/config/config.go
//
// Runtime configuration lives in cfg.yaml in the run directory. A missing
// config is the one fatal startup error; `tjanseauktion init` writes the
// default document to get going.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the run directory.
const FileName = "cfg.yaml"

const defaultConfigYAML = `# tjanseauktion configuration
auction:
  # number of bidding teams, ids 0..teams-1
  teams: 12
  # how many auctions are sold blind
  secret_auctions: 6
  # a new bid must exceed current_bid * (percent / 100); 100 means any
  # strictly higher bid takes the lead
  min_overbid_percent: 100

currency:
  high_name: gulddukat
  mid_name: sølvmønt
  low_name: kobberstykke
  instant_win_name: instavind

paths:
  chores: data/chores.json
  log_dir: logs
`

// AuctionConfig holds the auction rules.
type AuctionConfig struct {
	Teams             int `yaml:"teams"`
	SecretAuctions    int `yaml:"secret_auctions"`
	MinOverbidPercent int `yaml:"min_overbid_percent"`
}

// CurrencyConfig names the three coin tiers and the instant win for display.
type CurrencyConfig struct {
	HighName       string `yaml:"high_name"`
	MidName        string `yaml:"mid_name"`
	LowName        string `yaml:"low_name"`
	InstantWinName string `yaml:"instant_win_name"`
}

// PathsConfig points at the chore catalog and the log directory.
type PathsConfig struct {
	Chores string `yaml:"chores"`
	LogDir string `yaml:"log_dir"`
}

// Config models cfg.yaml.
type Config struct {
	Auction  AuctionConfig  `yaml:"auction"`
	Currency CurrencyConfig `yaml:"currency"`
	Paths    PathsConfig    `yaml:"paths"`
}

// Load reads and validates the config at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s not found in run directory, run `tjanseauktion init` to create it", path)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configs the session cannot run with.
func (c Config) Validate() error {
	if c.Auction.Teams < 1 {
		return fmt.Errorf("config: auction.teams must be at least 1, got %d", c.Auction.Teams)
	}
	if c.Auction.SecretAuctions < 0 {
		return fmt.Errorf("config: auction.secret_auctions must not be negative, got %d", c.Auction.SecretAuctions)
	}
	if c.Auction.MinOverbidPercent < 100 {
		return fmt.Errorf("config: auction.min_overbid_percent must be at least 100, got %d", c.Auction.MinOverbidPercent)
	}
	if c.Paths.Chores == "" {
		return errors.New("config: paths.chores must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("config: paths.log_dir must be set")
	}
	return nil
}

// MinOverbidFactor converts the configured percentage into the factor the
// auction's bid check uses.
func (c Config) MinOverbidFactor() float64 {
	return float64(c.Auction.MinOverbidPercent) / 100
}

// WriteDefault writes the default config document to path. It refuses to
// replace an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}
