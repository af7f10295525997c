package core

import (
	"testing"
	"time"
)

func TestLocaleLayout(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"", "1/2/2006, 3:04:05 PM"},
		{"en-US", "1/2/2006, 3:04:05 PM"},
		{"en-GB", "02/01/2006, 15:04:05"},
		{"de-DE", "2.1.2006, 15:04:05"},
		{"fr", "02/01/2006 15:04:05"},
		{"ja-JP", "2006/1/2 15:04:05"},
		{"iso", "2006-01-02 15:04:05"},
		{"not a tag!", "1/2/2006, 3:04:05 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := LocaleLayout(tt.tag); got != tt.want {
				t.Errorf("LocaleLayout(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestRenderTime(t *testing.T) {
	at := time.Date(2026, 2, 18, 13, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		params []string
		want   string
	}{
		{"default", nil, "2/18/2026, 1:04:05 PM"},
		{"locale", []string{"en-GB"}, "18/02/2026, 13:04:05"},
		{"layout override", []string{"en-GB", "15:04"}, "13:04"},
		{"empty layout keeps locale", []string{"de", ""}, "18.2.2026, 13:04:05"},
		{"zone", []string{"iso", "", "Asia/Tokyo"}, "2026-02-18 22:04:05"},
		{"unknown zone ignored", []string{"iso", "", "Nowhere/Land"}, "2026-02-18 13:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderTime(at, tt.params); got != tt.want {
				t.Errorf("RenderTime(%v) = %q, want %q", tt.params, got, tt.want)
			}
		})
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var c Clock = FixedClock{At: at}
	if !c.Now().Equal(at) {
		t.Errorf("FixedClock.Now() = %v, want %v", c.Now(), at)
	}
	if got := c.Render(c.Now(), []string{"iso"}); got != "2026-01-01 00:00:00" {
		t.Errorf("FixedClock.Render() = %q", got)
	}
}
