package logger

import (
	"strings"
	"time"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/style"
)

// effective is the fully resolved option set of one Log call
type effective struct {
	level    core.Level
	system   string
	at       time.Time
	hasTime  bool
	timeText string
	hasText  bool

	enabled   *EnabledOutput
	styles    *core.Styles
	sanitize  []SanitizeToken
	showTime  *ShowTime
	templates bool
}

// resolve layers the call's options over the stored configuration.
// stored must be fully populated; it is only read. storedStyles are
// the pre-resolved styles of stored.Format and are reused unless the
// call replaces the format.
func resolve(stored Config, storedStyles *core.Styles, call *callOptions) effective {
	cfg := stored.overlay(call.config)

	styles := storedStyles
	if call.config.Format != nil {
		s := style.Resolve(cfg.Format)
		styles = &s
	}

	return effective{
		level:     call.level,
		system:    call.system,
		at:        call.at,
		hasTime:   call.hasTime,
		timeText:  call.timeText,
		hasText:   call.hasText,
		enabled:   cfg.EnabledOutput,
		styles:    styles,
		sanitize:  cfg.SanitizeTokens,
		showTime:  cfg.ShowTime,
		templates: *cfg.TemplateLiteralFormats,
	}
}

// sanitize applies each token in order, replacing every occurrence
// before moving to the next. Empty tokens are skipped.
func sanitize(msg string, tokens []SanitizeToken) string {
	for _, t := range tokens {
		if t.Token == "" {
			continue
		}
		msg = strings.ReplaceAll(msg, t.Token, t.Replacement)
	}
	return msg
}

// stamp renders the timestamp segment, "" when it is disabled
func (e *effective) stamp(clock core.Clock) string {
	if !e.showTime.Enabled() {
		return ""
	}
	if lit, ok := e.showTime.Literal(); ok {
		return lit
	}
	if e.hasText {
		return e.timeText
	}
	at := e.at
	if !e.hasTime {
		at = clock.Now()
	}
	return clock.Render(at, e.showTime.Params())
}
