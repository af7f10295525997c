package config

import (
	"os"

	"github.com/philipp01105/conlog/logger"
)

// Options selects the configuration sources for Load
type Options struct {
	// File is a TOML file; empty for none
	File string
	// EnvFiles are dotenv files consulted after the environment
	EnvFiles []string
	// Env is the process environment (default: os.LookupEnv)
	Env Lookup
	// IgnoreEnv disables the process environment; EnvFiles still apply
	IgnoreEnv bool
}

// Load builds a configuration from the TOML file and overlays the
// CONLOG_* variables. A variable set in the environment wins over the
// same variable in an env file.
func Load(opts Options) (logger.Config, error) {
	var cfg logger.Config

	if opts.File != "" {
		var err error
		cfg, err = LoadFile(opts.File)
		if err != nil {
			return logger.Config{}, err
		}
	}

	var env Lookup
	if !opts.IgnoreEnv {
		env = opts.Env
		if env == nil {
			env = os.LookupEnv
		}
	}

	var fileEnv Lookup
	if len(opts.EnvFiles) > 0 {
		m, err := ReadEnvFiles(opts.EnvFiles...)
		if err != nil {
			return logger.Config{}, err
		}
		fileEnv = MapLookup(m)
	}

	cfg, err := ApplyEnv(cfg, Chain(env, fileEnv))
	if err != nil {
		return logger.Config{}, err
	}
	return cfg, nil
}
