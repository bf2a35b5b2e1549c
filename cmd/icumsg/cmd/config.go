package cmd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goicu/icumsg/msgpattern"
)

// Config is the shape of .icumsg.yaml, the way the teacher's sqlcode.yaml
// pins per-project defaults (DatabaseConfig) rather than requiring every
// invocation to pass every flag.
type Config struct {
	DefaultLocale  string `yaml:"default-locale"`
	ApostropheMode string `yaml:"apostrophe-mode"`
	StrictCLDRKeys bool   `yaml:"strict-cldr-keys"`
}

// LoadConfig reads path if it exists, returning a zero Config (not an
// error) when it doesn't: unlike the teacher's sqlcode.yaml, which is
// mandatory for every subcommand, icumsg's config file is optional sugar
// over CLI flags.
func LoadConfig(path string) (Config, error) {
	var result Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// resolveLocale applies the flag > config > hardcoded-default precedence
// every subcommand uses.
func resolveLocale(cfg Config) string {
	if locale != "" {
		return locale
	}
	if cfg.DefaultLocale != "" {
		return cfg.DefaultLocale
	}
	return "en"
}

// resolveApostropheMode applies the same precedence for apostrophe mode.
func resolveApostropheMode(cfg Config) (msgpattern.ApostropheMode, error) {
	value := apoMode
	if value == "" {
		value = cfg.ApostropheMode
	}
	switch value {
	case "", "double-optional":
		return msgpattern.DoubleOptional, nil
	case "double-required":
		return msgpattern.DoubleRequired, nil
	default:
		return 0, errors.New("unknown apostrophe mode " + value + "; expected double-optional or double-required")
	}
}
