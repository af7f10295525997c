package style

import (
	"strconv"

	"github.com/fatih/color"
)

// Reset is the escape sequence that clears all attributes
var Reset = sgr(color.Reset)

type code struct {
	name string
	seq  string
}

// table is the StyleCodes table in its natural order
var table = []code{
	{"RESET", sgr(color.Reset)},
	{"BRIGHT", sgr(color.Bold)},
	{"DIM", sgr(color.Faint)},
	{"UNDERSCORE", sgr(color.Underline)},
	{"BLINK", sgr(color.BlinkSlow)},
	{"REVERSE", sgr(color.ReverseVideo)},
	{"HIDDEN", sgr(color.Concealed)},

	{"BLACK", sgr(color.FgBlack)},
	{"RED", sgr(color.FgRed)},
	{"GREEN", sgr(color.FgGreen)},
	{"YELLOW", sgr(color.FgYellow)},
	{"BLUE", sgr(color.FgBlue)},
	{"MAGENTA", sgr(color.FgMagenta)},
	{"CYAN", sgr(color.FgCyan)},
	{"WHITE", sgr(color.FgWhite)},

	{"BGBLACK", sgr(color.BgBlack)},
	{"BGRED", sgr(color.BgRed)},
	{"BGGREEN", sgr(color.BgGreen)},
	{"BGYELLOW", sgr(color.BgYellow)},
	{"BGBLUE", sgr(color.BgBlue)},
	{"BGMAGENTA", sgr(color.BgMagenta)},
	{"BGCYAN", sgr(color.BgCyan)},
	{"BGWHITE", sgr(color.BgWhite)},
}

var index = func() map[string]string {
	m := make(map[string]string, len(table))
	for _, c := range table {
		m[c.name] = c.seq
	}
	return m
}()

func sgr(a color.Attribute) string {
	return "\x1b[" + strconv.Itoa(int(a)) + "m"
}

// Lookup returns the escape sequence for name
func Lookup(name string) (string, bool) {
	seq, ok := index[name]
	return seq, ok
}

// Code returns the escape sequence for name, or "" if the name is unknown
func Code(name string) string {
	return index[name]
}

// Names returns the style names in table order
func Names() []string {
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.name
	}
	return names
}
