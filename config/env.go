package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/philipp01105/conlog/logger"
)

// Environment variables read by ApplyEnv
const (
	EnvLogLevels   = "CONLOG_LOG_LEVELS"
	EnvEventLevels = "CONLOG_EVENT_LEVELS"
	EnvShowTime    = "CONLOG_SHOW_TIME"
	EnvTemplates   = "CONLOG_TEMPLATES"
)

// literalPrefix marks a CONLOG_SHOW_TIME value emitted verbatim
const literalPrefix = "literal:"

// Lookup returns the value of an environment variable and whether it
// is set. os.LookupEnv is a Lookup.
type Lookup func(key string) (string, bool)

// MapLookup looks variables up in m
func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Chain returns a Lookup trying each lookup in order
func Chain(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// ReadEnvFiles reads dotenv files without touching the process
// environment. Later files do not override earlier ones.
func ReadEnvFiles(paths ...string) (map[string]string, error) {
	out := make(map[string]string)
	for _, p := range paths {
		m, err := godotenv.Read(p)
		if err != nil {
			return nil, fmt.Errorf("config: read env file %s: %w", p, err)
		}
		for k, v := range m {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out, nil
}

// ApplyEnv overlays the CONLOG_* variables onto cfg. Unset or empty
// variables leave cfg unchanged. The level variables replace only
// their half of EnabledOutput.
func ApplyEnv(cfg logger.Config, lookup Lookup) (logger.Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var errs error

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvLogLevels); ok {
		set, err := envLevelSet(EnvLogLevels, v)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			cfg.EnabledOutput = withLog(cfg.EnabledOutput, set)
		}
	}

	if v, ok := get(EnvEventLevels); ok {
		set, err := envLevelSet(EnvEventLevels, v)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			cfg.EnabledOutput = withEvents(cfg.EnabledOutput, set)
		}
	}

	if v, ok := get(EnvShowTime); ok {
		cfg.ShowTime = ParseShowTime(v)
	}

	if v, ok := get(EnvTemplates); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s=%q: %w", EnvTemplates, v, ErrInvalidEnv))
		} else {
			cfg.TemplateLiteralFormats = logger.Bool(b)
		}
	}

	return cfg, errs
}

func withLog(eo *logger.EnabledOutput, set *logger.LevelSet) *logger.EnabledOutput {
	out := &logger.EnabledOutput{Log: set}
	if eo != nil {
		out.Events = eo.Events
	}
	return out
}

func withEvents(eo *logger.EnabledOutput, set *logger.LevelSet) *logger.EnabledOutput {
	out := &logger.EnabledOutput{Events: set}
	if eo != nil {
		out.Log = eo.Log
	}
	return out
}

func envLevelSet(key, v string) (*logger.LevelSet, error) {
	switch strings.ToUpper(v) {
	case "ALL":
		return logger.AllLevels(), nil
	case "NONE":
		return logger.Only(), nil
	}
	set, err := parseLevels(key, strings.Split(v, ","))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}
	return set, nil
}

// ParseShowTime reads the textual timestamp mode used by CONLOG_SHOW_TIME:
// a boolean, "literal:" followed by the text to emit, or comma
// separated formatting parameters.
func ParseShowTime(v string) *logger.ShowTime {
	if strings.HasPrefix(v, literalPrefix) {
		return logger.TimeLiteral(strings.TrimPrefix(v, literalPrefix))
	}
	if b, err := strconv.ParseBool(v); err == nil {
		if b {
			return logger.TimeOn()
		}
		return logger.TimeOff()
	}
	params := strings.Split(v, ",")
	for i := range params {
		params[i] = strings.TrimSpace(params[i])
	}
	return logger.TimeParams(params...)
}
