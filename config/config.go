package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brettbedarf/netnode/internal/util"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.WarnLevel

	// DefaultSequenceLength is the number of digits shown by the sequence challenge
	DefaultSequenceLength = 4

	// DefaultOperandMin and DefaultOperandMax bound both arithmetic operands (inclusive)
	DefaultOperandMin = 10
	DefaultOperandMax = 29

	// DefaultRevealDelay is how long a sequence stays visible before it is hidden
	DefaultRevealDelay = 2 * time.Second

	// DefaultLockChallenge and DefaultCryptChallenge name the registered
	// challenges that gate hack and decrypt
	DefaultLockChallenge  = "sequence"
	DefaultCryptChallenge = "arithmetic"

	DefaultBanner = true
	DefaultUser   = "user"
	DefaultHost   = "net-node"
)

// Config contains runtime configuration values for a terminal session.
type Config struct {
	PromptOptions

	LogLvl         util.LogLevel // Internal log level; see [ConfigOverride.LogLvl] for the verbosity mapping
	SequenceLength int           `env:"SEQUENCE_LENGTH"` // Digits per sequence challenge (Default 4)
	OperandMin     int           `env:"OPERAND_MIN"`     // Lowest arithmetic operand (Default 10)
	OperandMax     int           `env:"OPERAND_MAX"`     // Highest arithmetic operand (Default 29)
	RevealDelay    time.Duration `env:"REVEAL_DELAY"`    // Sequence display time (Default 2s)
	Seed           *int64        `env:"SEED"`            // Challenge RNG seed; nil draws a fresh one (Default nil)
	Banner         bool          `env:"BANNER"`          // Print the startup banner (Default true)
	LockChallenge  string        `env:"LOCK_CHALLENGE"`  // Challenge played by hack (Default "sequence")
	CryptChallenge string        `env:"CRYPT_CHALLENGE"` // Challenge played by decrypt (Default "arithmetic")
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	User           *string `yaml:"user,omitempty" json:"user,omitempty"`
	Host           *string `yaml:"host,omitempty" json:"host,omitempty"`
	LogLvl         *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"` // CLI-style verbosity 1 (error) to 5 (trace)
	SequenceLength *int    `yaml:"sequence_length,omitempty" json:"sequence_length,omitempty"`
	OperandMin     *int    `yaml:"operand_min,omitempty" json:"operand_min,omitempty"`
	OperandMax     *int    `yaml:"operand_max,omitempty" json:"operand_max,omitempty"`
	RevealDelayMs  *int    `yaml:"reveal_delay_ms,omitempty" json:"reveal_delay_ms,omitempty"`
	Seed           *int64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Banner         *bool   `yaml:"banner,omitempty" json:"banner,omitempty"`
	LockChallenge  *string `yaml:"lock_challenge,omitempty" json:"lock_challenge,omitempty"`
	CryptChallenge *string `yaml:"crypt_challenge,omitempty" json:"crypt_challenge,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		PromptOptions: PromptOptions{
			User: DefaultUser,
			Host: DefaultHost,
		},
		LogLvl:         DefaultLogLvl,
		SequenceLength: DefaultSequenceLength,
		OperandMin:     DefaultOperandMin,
		OperandMax:     DefaultOperandMax,
		RevealDelay:    DefaultRevealDelay,
		Banner:         DefaultBanner,
		LockChallenge:  DefaultLockChallenge,
		CryptChallenge: DefaultCryptChallenge,
	}
}

// NewConfig creates a Config from the defaults with override applied.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.User != nil {
		c.User = *override.User
	}
	if override.Host != nil {
		c.Host = *override.Host
	}
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.SequenceLength != nil {
		c.SequenceLength = *override.SequenceLength
	}
	if override.OperandMin != nil {
		c.OperandMin = *override.OperandMin
	}
	if override.OperandMax != nil {
		c.OperandMax = *override.OperandMax
	}
	if override.RevealDelayMs != nil {
		c.RevealDelay = time.Duration(*override.RevealDelayMs) * time.Millisecond
	}
	if override.Seed != nil {
		c.Seed = util.Pointer(*override.Seed)
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
	if override.LockChallenge != nil {
		c.LockChallenge = *override.LockChallenge
	}
	if override.CryptChallenge != nil {
		c.CryptChallenge = *override.CryptChallenge
	}
}

// VerboseToLogLevel maps CLI verbosity (clamped to 1..5) to a [util.LogLevel]
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = min(max(verbose, ErrorVerbose), TraceVerbose)
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// Validate reports configuration values the challenges cannot work with.
func (c *Config) Validate() error {
	if c.SequenceLength < 1 {
		return fmt.Errorf("sequence length must be positive, got %d", c.SequenceLength)
	}
	if c.OperandMin > c.OperandMax {
		return fmt.Errorf("operand range is empty: min %d > max %d", c.OperandMin, c.OperandMax)
	}
	if c.RevealDelay < 0 {
		return fmt.Errorf("reveal delay must not be negative, got %s", c.RevealDelay)
	}
	if c.LockChallenge == "" || c.CryptChallenge == "" {
		return errors.New("challenge names must not be empty")
	}
	return nil
}

// ApplyEnv overlays NETNODE_* environment variables onto this Config.
// Unset variables leave the current values untouched.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix})
}

func (c *Config) applyEnv(opts env.Options) error {
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
