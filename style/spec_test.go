package style

import (
	"testing"

	"github.com/philipp01105/conlog/core"
)

func TestResolveDefaults(t *testing.T) {
	s := Resolve(nil)

	if s.Divider != Code("DIM") {
		t.Errorf("Divider = %q, want DIM", s.Divider)
	}
	if s.Timestamp != Code("WHITE") {
		t.Errorf("Timestamp = %q, want WHITE", s.Timestamp)
	}
	if s.System != Code("BRIGHT")+Code("WHITE") {
		t.Errorf("System = %q, want BRIGHT+WHITE", s.System)
	}
	if s.Message != Code("WHITE") {
		t.Errorf("Message = %q, want WHITE", s.Message)
	}

	want := map[core.Level]string{
		core.DebugLevel: Code("WHITE") + Code("BRIGHT"),
		core.InfoLevel:  Code("CYAN") + Code("BRIGHT"),
		core.WarnLevel:  Code("YELLOW") + Code("BRIGHT"),
		core.ErrorLevel: Code("RED") + Code("BRIGHT"),
	}
	for l, w := range want {
		if got := s.Level(l); got != w {
			t.Errorf("Level(%v) = %q, want %q", l, got, w)
		}
	}

	if Resolve(&Format{}) != s {
		t.Error("Resolve(&Format{}) differs from Resolve(nil)")
	}
}

func TestResolveUniformLevels(t *testing.T) {
	s := Resolve(&Format{Levels: &LevelFormat{
		Uniform: Of("MAGENTA", "UNDERSCORE"),
		All:     Of("DIM"), // ignored when Uniform is set
	}})

	want := Code("MAGENTA") + Code("UNDERSCORE")
	for _, l := range core.AllLevels() {
		if got := s.Level(l); got != want {
			t.Errorf("Level(%v) = %q, want %q", l, got, want)
		}
	}
}

func TestResolvePerLevelWithAll(t *testing.T) {
	s := Resolve(&Format{Levels: &LevelFormat{
		PerLevel: map[core.Level]Spec{
			core.ErrorLevel: Of("BGRED", "WHITE"),
		},
		All: Of("UNDERSCORE"),
	}})

	if got, want := s.Level(core.ErrorLevel), Code("BGRED")+Code("WHITE")+Code("UNDERSCORE"); got != want {
		t.Errorf("ERROR = %q, want %q", got, want)
	}
	if got, want := s.Level(core.InfoLevel), Code("CYAN")+Code("UNDERSCORE"); got != want {
		t.Errorf("INFO = %q, want %q", got, want)
	}
}

func TestResolveExplicitDefaultsRoundTrip(t *testing.T) {
	explicit := &Format{
		Divider:   Of("DIM"),
		Timestamp: Of("WHITE"),
		System:    Of("BRIGHT", "WHITE"),
		Message:   Of("WHITE"),
		Levels: &LevelFormat{
			PerLevel: map[core.Level]Spec{
				core.DebugLevel: Of("WHITE"),
				core.InfoLevel:  Of("CYAN"),
				core.WarnLevel:  Of("YELLOW"),
				core.ErrorLevel: Of("RED"),
			},
			All: Of("BRIGHT"),
		},
	}
	if Resolve(explicit) != Resolve(nil) {
		t.Error("explicit defaults resolve differently from omitted fields")
	}
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	s := Resolve(&Format{
		Divider: Of(),
		Message: Of("NOPE"),
	})
	if s.Divider != "" {
		t.Errorf("empty Divider resolved to %q", s.Divider)
	}
	if s.Message != "" {
		t.Errorf("unknown Message resolved to %q", s.Message)
	}
}
