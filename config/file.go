package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
	"github.com/philipp01105/conlog/style"
)

// file is the TOML document. Polymorphic values are decoded into
// interface{} and converted by build.
type file struct {
	EnabledOutput          *enabledOutputFile  `toml:"enabled_output"`
	Format                 *formatFile         `toml:"format"`
	SanitizeTokens         []sanitizeTokenFile `toml:"sanitize_tokens"`
	ShowTime               interface{}         `toml:"show_time"`
	TemplateLiteralFormats *bool               `toml:"template_literal_formats"`
}

type enabledOutputFile struct {
	Log    interface{} `toml:"log"`
	Events interface{} `toml:"events"`
}

type formatFile struct {
	Divider   interface{} `toml:"divider"`
	Timestamp interface{} `toml:"timestamp"`
	Levels    interface{} `toml:"levels"`
	System    interface{} `toml:"system"`
	Message   interface{} `toml:"message"`
}

type sanitizeTokenFile struct {
	Token       string `toml:"token"`
	Replacement string `toml:"replacement"`
}

// LoadFile reads a TOML configuration file
func LoadFile(path string) (logger.Config, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return logger.Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return f.build(md)
}

// Parse decodes a TOML configuration document
func Parse(data string) (logger.Config, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return logger.Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return f.build(md)
}

// build converts the decoded document, collecting every field error
func (f *file) build(md toml.MetaData) (logger.Config, error) {
	var (
		cfg  logger.Config
		errs error
	)

	for _, key := range md.Undecoded() {
		// Keys of a [format.levels] table are read through interface{}
		if len(key) > 2 && key[0] == "format" && key[1] == "levels" {
			continue
		}
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, ErrUnknownKey))
	}

	if f.EnabledOutput != nil {
		eo := &logger.EnabledOutput{}
		var err error
		if eo.Log, err = levelSetValue("enabled_output.log", f.EnabledOutput.Log); err != nil {
			errs = multierr.Append(errs, err)
		}
		if eo.Events, err = levelSetValue("enabled_output.events", f.EnabledOutput.Events); err != nil {
			errs = multierr.Append(errs, err)
		}
		cfg.EnabledOutput = eo
	}

	if f.Format != nil {
		format, err := f.Format.build()
		errs = multierr.Append(errs, err)
		cfg.Format = format
	}

	if f.SanitizeTokens != nil {
		cfg.SanitizeTokens = make([]logger.SanitizeToken, 0, len(f.SanitizeTokens))
		for _, t := range f.SanitizeTokens {
			cfg.SanitizeTokens = append(cfg.SanitizeTokens, logger.SanitizeToken{
				Token:       t.Token,
				Replacement: t.Replacement,
			})
		}
	}

	if f.ShowTime != nil {
		st, err := showTimeValue(f.ShowTime)
		errs = multierr.Append(errs, err)
		cfg.ShowTime = st
	}

	if f.TemplateLiteralFormats != nil {
		cfg.TemplateLiteralFormats = logger.Bool(*f.TemplateLiteralFormats)
	}

	if errs != nil {
		return logger.Config{}, errs
	}
	return cfg, nil
}

func (f *formatFile) build() (*style.Format, error) {
	var (
		out  style.Format
		errs error
		err  error
	)
	if out.Divider, err = specValue("format.divider", f.Divider); err != nil {
		errs = multierr.Append(errs, err)
	}
	if out.Timestamp, err = specValue("format.timestamp", f.Timestamp); err != nil {
		errs = multierr.Append(errs, err)
	}
	if out.System, err = specValue("format.system", f.System); err != nil {
		errs = multierr.Append(errs, err)
	}
	if out.Message, err = specValue("format.message", f.Message); err != nil {
		errs = multierr.Append(errs, err)
	}
	if out.Levels, err = levelFormatValue("format.levels", f.Levels); err != nil {
		errs = multierr.Append(errs, err)
	}
	return &out, errs
}

// levelFormatValue accepts a style selection applied to every level or
// a table keyed by level name and ALL
func levelFormatValue(path string, v interface{}) (*style.LevelFormat, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		lf := &style.LevelFormat{}
		var errs error
		for key, raw := range t {
			spec, err := specValue(path+"."+key, raw)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if strings.EqualFold(key, "ALL") {
				lf.All = spec
				continue
			}
			level, ok := core.ParseLevel(key)
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("%s.%s: %w", path, key, ErrInvalidLevels))
				continue
			}
			if lf.PerLevel == nil {
				lf.PerLevel = make(map[core.Level]style.Spec, core.NumLevels)
			}
			lf.PerLevel[level] = spec
		}
		return lf, errs
	default:
		spec, err := specValue(path, v)
		if err != nil {
			return nil, err
		}
		return &style.LevelFormat{Uniform: spec}, nil
	}
}

// specValue accepts a style name or a list of style names
func specValue(path string, v interface{}) (style.Spec, error) {
	names, ok := stringsValue(v)
	if !ok {
		return nil, fmt.Errorf("%s: %w: want a name or a list of names", path, ErrInvalidStyle)
	}
	if names == nil {
		return nil, nil
	}
	spec := style.Of()
	for _, name := range names {
		name = strings.ToUpper(strings.TrimSpace(name))
		if _, ok := style.Lookup(name); !ok {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrInvalidStyle, name)
		}
		spec = append(spec, name)
	}
	return spec, nil
}

// levelSetValue accepts "ALL", a single level name or a list of names
func levelSetValue(path string, v interface{}) (*logger.LevelSet, error) {
	if s, ok := v.(string); ok && strings.EqualFold(strings.TrimSpace(s), "ALL") {
		return logger.AllLevels(), nil
	}
	names, ok := stringsValue(v)
	if !ok {
		return nil, fmt.Errorf("%s: %w: want ALL or a list of level names", path, ErrInvalidLevels)
	}
	if names == nil {
		return nil, nil
	}
	return parseLevels(path, names)
}

func parseLevels(path string, names []string) (*logger.LevelSet, error) {
	levels := make([]core.Level, 0, len(names))
	for _, name := range names {
		level, ok := core.ParseLevel(name)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrInvalidLevels, name)
		}
		levels = append(levels, level)
	}
	return logger.Only(levels...), nil
}

// showTimeValue accepts a boolean, a literal string or a list of
// formatting parameters
func showTimeValue(v interface{}) (*logger.ShowTime, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return logger.TimeOn(), nil
		}
		return logger.TimeOff(), nil
	case string:
		return logger.TimeLiteral(t), nil
	case []interface{}:
		params, ok := stringsValue(t)
		if !ok {
			return nil, fmt.Errorf("show_time: %w: parameters must be strings", ErrInvalidShowTime)
		}
		return logger.TimeParams(params...), nil
	default:
		return nil, fmt.Errorf("show_time: %w: unsupported type %T", ErrInvalidShowTime, v)
	}
}

// stringsValue converts a string or a list of strings. nil yields nil.
func stringsValue(v interface{}) ([]string, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case string:
		return []string{t}, true
	case []string:
		return append([]string{}, t...), true
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
