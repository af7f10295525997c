package core

import (
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(9), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{" warn ", WarnLevel, true},
		{"Warning", WarnLevel, true},
		{"ERROR", ErrorLevel, true},
		{"fatal", InfoLevel, false},
		{"", InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()
	if len(levels) != NumLevels {
		t.Fatalf("AllLevels() returned %d levels, want %d", len(levels), NumLevels)
	}
	for i, l := range levels {
		if int(l) != i {
			t.Errorf("AllLevels()[%d] = %v, want ascending order", i, l)
		}
	}
}

func TestStyles_Level(t *testing.T) {
	s := &Styles{Levels: [NumLevels]string{"d", "i", "w", "e"}}
	if got := s.Level(WarnLevel); got != "w" {
		t.Errorf("Styles.Level(WARN) = %q, want %q", got, "w")
	}
	if got := s.Level(Level(-1)); got != "" {
		t.Errorf("Styles.Level(-1) = %q, want empty", got)
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	e1.Message = "test"
	e1.System = "core"
	e1.Stamp = "T0"
	e1.Level = ErrorLevel
	e1.Time = time.Now()
	e1.Styles = &Styles{}

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	if e2.Message != "" || e2.System != "" || e2.Stamp != "" {
		t.Errorf("Expected clean entry after pool reset, got %+v", e2)
	}
	if e2.Styles != nil {
		t.Error("Expected nil styles after pool reset")
	}
	if e2.Level != InfoLevel {
		t.Errorf("Expected INFO level on fresh entry, got %v", e2.Level)
	}
	if !e2.Time.IsZero() {
		t.Errorf("Expected zero time on fresh entry, got %v", e2.Time)
	}
}

func TestPutEntryNil(t *testing.T) {
	// Must not panic
	PutEntry(nil)
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
