package config

import (
	"os"

	"blackjack-table-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack table server
type Config struct {
	loaded bool

	// DirectoryURL is the endpoint of the external player directory
	DirectoryURL string `yaml:"directoryUrl" envconfig:"directory_url"`

	// PollInterval is how often, in seconds, the player directory is polled
	PollInterval int `yaml:"pollInterval" envconfig:"poll_interval"`

	// CooldownDelay is how long, in seconds, the round result stays up before a reset
	CooldownDelay int `yaml:"cooldownDelay" envconfig:"cooldown_delay"`

	// CardFile is an optional JSON file defining the reference card set.
	// If empty, the standard 52-card set is used.
	CardFile string `yaml:"cardFile" envconfig:"card_file"`

	// AutoStart will open the table immediately instead of waiting for POST /table/start
	AutoStart bool `yaml:"autoStart" envconfig:"auto_start"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	return Config{
		DirectoryURL:  "http://localhost:8080/api/data",
		PollInterval:  2,
		CooldownDelay: 7,
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are kept
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("BTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bts", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
