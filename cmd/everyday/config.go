package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultTaskFile   = "tasks.txt"
	defaultConfigFile = "everyday.toml"
	defaultLogLevel   = "warning"
)

// ErrInvalidLogLevel is returned by loadConfig if the level isn't one logrus knows.
var ErrInvalidLogLevel = errors.New("invalid log level")

// config holds the settings of one run. Lowest priority first, values come from the defaults, the TOML file,
// the environment (after loading .env, if present), and the command line.
type config struct {
	// The task file, read at startup and written on save and exit.
	File string `toml:"file"`

	LogLevel string `toml:"log_level"`

	// If set, logs are appended to this file instead of going to standard error.
	LogFile string `toml:"log_file"`

	// Offer only the menu entries of the basic variant: no search, filter, statistics.
	Basic bool `toml:"basic"`

	level log.Level
}

func defaultConfig() *config {
	return &config{
		File:     defaultTaskFile,
		LogLevel: defaultLogLevel,
	}
}

// loadConfig layers the configuration sources. The TOML file is the one named by the config flag, which then
// must exist, or everyday.toml in the working directory if there is one.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	cfg := defaultConfig()

	pathname, _ := flags.GetString("config")
	required := pathname != ""
	if !required {
		pathname = defaultConfigFile
	}
	if err := cfg.loadFile(pathname, required); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.loadFlags(flags); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", cfg.LogLevel, ErrInvalidLogLevel)
	}
	cfg.level = level
	return cfg, nil
}

func (cfg *config) loadFile(pathname string, required bool) error {
	if _, err := os.Stat(pathname); os.IsNotExist(err) && !required {
		return nil
	}
	if _, err := toml.DecodeFile(pathname, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", pathname, err)
	}
	return nil
}

func (cfg *config) loadEnv() error {
	if v := os.Getenv("EVERYDAY_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("EVERYDAY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EVERYDAY_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("EVERYDAY_BASIC"); v != "" {
		basic, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EVERYDAY_BASIC: %w", err)
		}
		cfg.Basic = basic
	}
	return nil
}

// loadFlags only applies the flags given on the command line, so that flag defaults do not mask the other
// sources.
func (cfg *config) loadFlags(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("file") {
		cfg.File, err = flags.GetString("file")
	}
	if err == nil && flags.Changed("log-level") {
		cfg.LogLevel, err = flags.GetString("log-level")
	}
	if err == nil && flags.Changed("log-file") {
		cfg.LogFile, err = flags.GetString("log-file")
	}
	if err == nil && flags.Changed("basic") {
		cfg.Basic, err = flags.GetBool("basic")
	}
	if err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
