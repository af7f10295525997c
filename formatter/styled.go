package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/style"
)

// dividerGlyph separates the segments of a line
const dividerGlyph = "|"

// defaultStyles is used for entries that carry no resolved styles
var defaultStyles = style.Resolve(nil)

// StyledFormatter renders an entry as one styled console line:
//
//	[stamp] | LEVEL [| system] | message
//
// Each segment is prefixed by its style and the divider is wrapped in
// resets, so a segment's style never bleeds into the next one.
type StyledFormatter struct {
	Config
}

// NewStyledFormatter creates a new styled formatter
func NewStyledFormatter(cfg Config) *StyledFormatter {
	return &StyledFormatter{Config: cfg}
}

// Format formats an entry as a styled line
func (f *StyledFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it to w in a single Write call
func (f *StyledFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into buf
func (f *StyledFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	st := entry.Styles
	if st == nil {
		st = &defaultStyles
	}

	segments := 0
	divide := func() {
		if segments > 0 {
			buf.WriteByte(' ')
			f.style(buf, style.Reset)
			f.style(buf, st.Divider)
			buf.WriteString(dividerGlyph)
			f.style(buf, style.Reset)
			buf.WriteByte(' ')
		}
		segments++
	}

	if entry.Stamp != "" {
		divide()
		f.style(buf, st.Timestamp)
		buf.WriteString(entry.Stamp)
	}

	divide()
	f.style(buf, st.Level(entry.Level))
	buf.WriteString(entry.Level.String())

	if entry.System != "" {
		divide()
		f.style(buf, st.System)
		buf.WriteString(entry.System)
	}

	divide()
	f.style(buf, st.Message)
	buf.WriteString(entry.Message)
	f.style(buf, style.Reset)

	if !f.OmitNewline {
		buf.WriteByte('\n')
	}
}

func (f *StyledFormatter) style(buf *bytes.Buffer, code string) {
	if !f.NoColor {
		buf.WriteString(code)
	}
}
