package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/style"
)

const (
	reset = "\x1b[0m"
	dim   = "\x1b[2m"
)

func sep(divider string) string {
	return " " + reset + divider + "|" + reset + " "
}

func TestStyledFormatter_FullLine(t *testing.T) {
	f := NewStyledFormatter(Config{})
	styles := style.Resolve(nil)

	entry := &core.Entry{
		Level:   core.InfoLevel,
		Message: "hello",
		System:  "core",
		Stamp:   "T0",
		Styles:  &styles,
	}

	got, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := styles.Timestamp + "T0" +
		sep(dim) + styles.Level(core.InfoLevel) + "INFO" +
		sep(dim) + styles.System + "core" +
		sep(dim) + styles.Message + "hello" + reset + "\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestStyledFormatter_OmitsAbsentSegments(t *testing.T) {
	f := NewStyledFormatter(Config{NoColor: true})

	tests := []struct {
		name  string
		entry core.Entry
		want  string
	}{
		{"level and message", core.Entry{Level: core.ErrorLevel, Message: "m"}, "ERROR | m\n"},
		{"with stamp", core.Entry{Level: core.DebugLevel, Message: "m", Stamp: "T0"}, "T0 | DEBUG | m\n"},
		{"with system", core.Entry{Level: core.WarnLevel, Message: "m", System: "db"}, "WARN | db | m\n"},
		{"empty message", core.Entry{Level: core.InfoLevel}, "INFO | \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := f.Format(&tt.entry)
			if string(got) != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyledFormatter_DefaultStylesWhenNil(t *testing.T) {
	f := NewStyledFormatter(Config{})
	got, _ := f.Format(&core.Entry{Level: core.ErrorLevel, Message: "x"})
	if !strings.HasPrefix(string(got), style.Code("RED")+style.Code("BRIGHT")+"ERROR") {
		t.Errorf("expected default ERROR style prefix, got %q", got)
	}
}

func TestStyledFormatter_OmitNewline(t *testing.T) {
	f := NewStyledFormatter(Config{NoColor: true, OmitNewline: true})
	got, _ := f.Format(&core.Entry{Level: core.InfoLevel, Message: "x"})
	if string(got) != "INFO | x" {
		t.Errorf("Format() = %q", got)
	}
}

func TestStyledFormatter_FormatToSingleWrite(t *testing.T) {
	f := NewStyledFormatter(Config{})
	w := &countingWriter{}
	if err := f.FormatTo(&core.Entry{Level: core.InfoLevel, Message: "x"}, w); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if w.writes != 1 {
		t.Errorf("FormatTo() issued %d writes, want 1", w.writes)
	}
	if !strings.Contains(w.buf.String(), "INFO") {
		t.Errorf("FormatTo() output = %q", w.buf.String())
	}
}

func TestStyledFormatter_FormatToError(t *testing.T) {
	f := NewStyledFormatter(Config{})
	err := f.FormatTo(&core.Entry{Message: "x"}, failingWriter{})
	if !errors.Is(err, errWrite) {
		t.Errorf("FormatTo() error = %v, want %v", err, errWrite)
	}
}

type countingWriter struct {
	buf    bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func BenchmarkStyledFormatter(b *testing.B) {
	f := NewStyledFormatter(Config{})
	styles := style.Resolve(nil)
	entry := &core.Entry{
		Level:   core.InfoLevel,
		Message: "test message",
		System:  "bench",
		Stamp:   "2/18/2026, 1:00:00 PM",
		Styles:  &styles,
	}

	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}
