package core

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Clock supplies the current instant and renders instants as locale
// strings for the timestamp segment.
type Clock interface {
	Now() time.Time
	// Render formats t using params: params[0] is a BCP 47 locale tag,
	// params[1] an optional Go layout overriding the locale layout and
	// params[2] an optional IANA zone name. Empty params renders with
	// the default locale.
	Render(t time.Time, params []string) string
}

// IsoLocale selects the ISO 8601 style layout in Render params
const IsoLocale = "ISO"

// supported locales; the first entry is the fallback
var (
	localeTags = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Japanese,
	}
	localeLayouts = []string{
		"1/2/2006, 3:04:05 PM",
		"02/01/2006, 15:04:05",
		"2.1.2006, 15:04:05",
		"02/01/2006 15:04:05",
		"2006/1/2 15:04:05",
	}
	localeMatcher = language.NewMatcher(localeTags)
)

const isoLayout = "2006-01-02 15:04:05"

// DefaultLayout is the layout used when no locale is given
var DefaultLayout = localeLayouts[0]

// LocaleLayout returns the Go layout for a locale tag. Unknown or
// malformed tags fall back to DefaultLayout.
func LocaleLayout(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLayout
	}
	if strings.EqualFold(tag, IsoLocale) {
		return isoLayout
	}
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLayout
	}
	_, idx, conf := localeMatcher.Match(t)
	if conf == language.No {
		return DefaultLayout
	}
	return localeLayouts[idx]
}

// RenderTime implements the Render contract shared by the built-in clocks
func RenderTime(t time.Time, params []string) string {
	layout := DefaultLayout
	if len(params) > 0 {
		layout = LocaleLayout(params[0])
	}
	if len(params) > 1 && params[1] != "" {
		layout = params[1]
	}
	if len(params) > 2 && params[2] != "" {
		if loc, err := time.LoadLocation(params[2]); err == nil {
			t = t.In(loc)
		}
	}
	return t.Format(layout)
}

// SystemClock reads the wall clock on every call
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Render formats t, see Clock
func (SystemClock) Render(t time.Time, params []string) string {
	return RenderTime(t, params)
}

// FixedClock always reports the same instant. Useful for tests and for
// reproducible output.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.At
}

// Render formats t, see Clock
func (FixedClock) Render(t time.Time, params []string) string {
	return RenderTime(t, params)
}
