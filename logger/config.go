package logger

import (
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/style"
)

// LevelSet selects which levels produce output: either every level or
// an explicit list. A nil *LevelSet means "not set" and selects the
// output's default.
type LevelSet struct {
	all    bool
	levels []core.Level
}

// AllLevels selects every level ("ALL")
func AllLevels() *LevelSet {
	return &LevelSet{all: true}
}

// Only selects exactly the given levels. Only() selects none.
func Only(levels ...core.Level) *LevelSet {
	return &LevelSet{levels: append([]core.Level(nil), levels...)}
}

// IsAll reports whether the set is "ALL"
func (s *LevelSet) IsAll() bool {
	return s != nil && s.all
}

// Levels returns the explicit levels; nil for "ALL"
func (s *LevelSet) Levels() []core.Level {
	if s == nil || s.all {
		return nil
	}
	return append([]core.Level(nil), s.levels...)
}

// Contains reports whether level is in the set
func (s *LevelSet) Contains(level core.Level) bool {
	if s == nil {
		return false
	}
	if s.all {
		return level.Valid()
	}
	for _, l := range s.levels {
		if l == level {
			return true
		}
	}
	return false
}

// defaultConsoleLevels is used when EnabledOutput.Log is not set
var defaultConsoleLevels = Only(core.InfoLevel, core.WarnLevel, core.ErrorLevel)

// EnabledOutput selects the levels written to the console (Log) and
// the levels that raise a notification (Events), independently.
type EnabledOutput struct {
	// Log defaults to INFO, WARN and ERROR
	Log *LevelSet
	// Events defaults to all levels
	Events *LevelSet
}

// ConsoleEnabled reports whether level gets a console line
func (e *EnabledOutput) ConsoleEnabled(level core.Level) bool {
	if e == nil || e.Log == nil {
		return defaultConsoleLevels.Contains(level)
	}
	return e.Log.Contains(level)
}

// EventsEnabled reports whether level raises a notification
func (e *EnabledOutput) EventsEnabled(level core.Level) bool {
	if e == nil || e.Events == nil || e.Events.all {
		return level.Valid()
	}
	return e.Events.Contains(level)
}

// SanitizeToken is a literal substring and its replacement
type SanitizeToken struct {
	Token       string
	Replacement string
}

type timeMode uint8

const (
	timeOn timeMode = iota
	timeOff
	timeLiteral
	timeParams
)

// ShowTime selects how the timestamp segment is rendered. The zero
// value is TimeOn.
type ShowTime struct {
	mode    timeMode
	literal string
	params  []string
}

// TimeOn renders the call's time with default locale formatting
func TimeOn() *ShowTime {
	return &ShowTime{mode: timeOn}
}

// TimeOff omits the timestamp segment
func TimeOff() *ShowTime {
	return &ShowTime{mode: timeOff}
}

// TimeLiteral emits s verbatim as the timestamp. An empty s omits the
// segment.
func TimeLiteral(s string) *ShowTime {
	if s == "" {
		return TimeOff()
	}
	return &ShowTime{mode: timeLiteral, literal: s}
}

// TimeParams renders the call's time with the given formatting
// parameters, see core.Clock.
func TimeParams(params ...string) *ShowTime {
	return &ShowTime{mode: timeParams, params: append([]string{}, params...)}
}

// Enabled reports whether a timestamp segment is emitted
func (s *ShowTime) Enabled() bool {
	return s == nil || s.mode != timeOff
}

// Literal returns the literal timestamp, if s is one
func (s *ShowTime) Literal() (string, bool) {
	if s == nil || s.mode != timeLiteral {
		return "", false
	}
	return s.literal, true
}

// Params returns the formatting parameters; nil means default formatting
func (s *ShowTime) Params() []string {
	if s == nil || s.mode != timeParams {
		return nil
	}
	return append([]string(nil), s.params...)
}

// Config is the constructor-level configuration. Every field is
// optional; a nil field takes its default.
type Config struct {
	EnabledOutput *EnabledOutput
	Format        *style.Format
	// SanitizeTokens are applied in order, each to every occurrence
	SanitizeTokens []SanitizeToken
	// ShowTime defaults to TimeOn
	ShowTime *ShowTime
	// TemplateLiteralFormats enables %{NAME} expansion (default true)
	TemplateLiteralFormats *bool
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

// withDefaults returns a copy of c with every nil field set to its
// default
func (c Config) withDefaults() Config {
	out := c.clone()
	if out.EnabledOutput == nil {
		out.EnabledOutput = &EnabledOutput{}
	}
	if out.Format == nil {
		out.Format = &style.Format{}
	}
	if out.SanitizeTokens == nil {
		out.SanitizeTokens = []SanitizeToken{}
	}
	if out.ShowTime == nil {
		out.ShowTime = TimeOn()
	}
	if out.TemplateLiteralFormats == nil {
		out.TemplateLiteralFormats = Bool(true)
	}
	return out
}

// overlay returns c with every non-nil field of over replacing the
// field of c. Sub-objects are replaced wholesale, never merged.
func (c Config) overlay(over Config) Config {
	if over.EnabledOutput != nil {
		c.EnabledOutput = over.EnabledOutput
	}
	if over.Format != nil {
		c.Format = over.Format
	}
	if over.SanitizeTokens != nil {
		c.SanitizeTokens = over.SanitizeTokens
	}
	if over.ShowTime != nil {
		c.ShowTime = over.ShowTime
	}
	if over.TemplateLiteralFormats != nil {
		c.TemplateLiteralFormats = over.TemplateLiteralFormats
	}
	return c
}

// clone copies c so that later changes to the caller's values are not
// observed
func (c Config) clone() Config {
	out := c
	if c.EnabledOutput != nil {
		eo := *c.EnabledOutput
		eo.Log = cloneLevelSet(eo.Log)
		eo.Events = cloneLevelSet(eo.Events)
		out.EnabledOutput = &eo
	}
	if c.Format != nil {
		out.Format = cloneFormat(c.Format)
	}
	if c.SanitizeTokens != nil {
		out.SanitizeTokens = append([]SanitizeToken{}, c.SanitizeTokens...)
	}
	if c.ShowTime != nil {
		st := *c.ShowTime
		st.params = append([]string(nil), st.params...)
		out.ShowTime = &st
	}
	if c.TemplateLiteralFormats != nil {
		out.TemplateLiteralFormats = Bool(*c.TemplateLiteralFormats)
	}
	return out
}

func cloneLevelSet(s *LevelSet) *LevelSet {
	if s == nil {
		return nil
	}
	return &LevelSet{all: s.all, levels: append([]core.Level(nil), s.levels...)}
}

func cloneSpec(s style.Spec) style.Spec {
	if s == nil {
		return nil
	}
	return append(style.Spec{}, s...)
}

func cloneFormat(f *style.Format) *style.Format {
	out := &style.Format{
		Divider:   cloneSpec(f.Divider),
		Timestamp: cloneSpec(f.Timestamp),
		System:    cloneSpec(f.System),
		Message:   cloneSpec(f.Message),
	}
	if f.Levels != nil {
		lf := &style.LevelFormat{
			Uniform: cloneSpec(f.Levels.Uniform),
			All:     cloneSpec(f.Levels.All),
		}
		if f.Levels.PerLevel != nil {
			lf.PerLevel = make(map[core.Level]style.Spec, len(f.Levels.PerLevel))
			for l, s := range f.Levels.PerLevel {
				lf.PerLevel[l] = cloneSpec(s)
			}
		}
		out.Levels = lf
	}
	return out
}
