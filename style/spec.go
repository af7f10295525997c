package style

import (
	"strings"

	"github.com/philipp01105/conlog/core"
)

// Spec selects a style: an ordered list of style names whose codes are
// concatenated. A nil Spec means "not set"; an empty non-nil Spec
// selects no style at all.
type Spec []string

// Of builds a Spec from names
func Of(names ...string) Spec {
	if names == nil {
		return Spec{}
	}
	return Spec(names)
}

// Code concatenates the escape codes of every name in order
func (s Spec) Code() string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return Code(s[0])
	}
	var b strings.Builder
	for _, name := range s {
		b.WriteString(Code(name))
	}
	return b.String()
}

func (s Spec) or(def Spec) Spec {
	if s == nil {
		return def
	}
	return s
}

// LevelFormat selects the per-level styles. When Uniform is set it is
// applied verbatim to every level. Otherwise each level uses its
// PerLevel entry (or the built-in default) followed by All (default
// BRIGHT).
type LevelFormat struct {
	Uniform  Spec
	PerLevel map[core.Level]Spec
	All      Spec
}

// Format is the per-region style selection of a console line
type Format struct {
	Divider   Spec
	Timestamp Spec
	Levels    *LevelFormat
	System    Spec
	Message   Spec
}

// Default selections
var (
	DefaultDivider   = Spec{"DIM"}
	DefaultTimestamp = Spec{"WHITE"}
	DefaultSystem    = Spec{"BRIGHT", "WHITE"}
	DefaultMessage   = Spec{"WHITE"}
	DefaultAllLevels = Spec{"BRIGHT"}

	DefaultLevels = [core.NumLevels]Spec{
		core.DebugLevel: {"WHITE"},
		core.InfoLevel:  {"CYAN"},
		core.WarnLevel:  {"YELLOW"},
		core.ErrorLevel: {"RED"},
	}
)

// Resolve turns a Format into concrete escape strings. A nil Format is
// the empty format.
func Resolve(f *Format) core.Styles {
	if f == nil {
		f = &Format{}
	}
	s := core.Styles{
		Divider:   f.Divider.or(DefaultDivider).Code(),
		Timestamp: f.Timestamp.or(DefaultTimestamp).Code(),
		System:    f.System.or(DefaultSystem).Code(),
		Message:   f.Message.or(DefaultMessage).Code(),
	}
	s.Levels = resolveLevels(f.Levels)
	return s
}

func resolveLevels(lf *LevelFormat) [core.NumLevels]string {
	var out [core.NumLevels]string
	if lf == nil {
		lf = &LevelFormat{}
	}
	if lf.Uniform != nil {
		c := lf.Uniform.Code()
		for i := range out {
			out[i] = c
		}
		return out
	}
	all := lf.All.or(DefaultAllLevels).Code()
	for _, l := range core.AllLevels() {
		out[l] = lf.PerLevel[l].or(DefaultLevels[l]).Code() + all
	}
	return out
}
