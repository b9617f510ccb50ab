// Package theme owns the dashboard's light/dark preference. A Provider is
// created once at startup and handed to whoever needs to read or flip it.
package theme

import (
	"os"
	"strconv"
	"strings"
	"time"

	"compete/internal/logging"
)

// Mode is the active color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Provider holds the current mode. It is not safe for concurrent use; the
// bubbletea loop is its only caller.
type Provider struct {
	mode    Mode
	toggles int
}

// New returns a provider starting in mode. Anything other than Dark is Light.
func New(mode Mode) *Provider {
	if mode != Dark {
		mode = Light
	}
	return &Provider{mode: mode}
}

// Detect resolves a configured preference ("light", "dark" or "auto") into a
// provider. For "auto" (or an empty value) it checks COMPETE_DARK_MODE and
// then the terminal's COLORFGBG hint, defaulting to light.
func Detect(pref string) *Provider {
	var mode Mode
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case string(Dark):
		mode = Dark
	case string(Light):
		mode = Light
	default:
		mode = detectTerminal()
	}
	logging.Theme("resolved preference %q to %s", pref, mode)
	return New(mode)
}

func detectTerminal() Mode {
	if os.Getenv("COMPETE_DARK_MODE") == "1" {
		return Dark
	}
	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) >= 2 {
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return Dark
			}
		}
	}
	return Light
}

// Mode returns the current mode.
func (p *Provider) Mode() Mode { return p.mode }

// IsDark reports whether the dark scheme is active.
func (p *Provider) IsDark() bool { return p.mode == Dark }

// Toggle flips between light and dark and returns the new mode.
func (p *Provider) Toggle() Mode {
	if p.mode == Dark {
		p.mode = Light
	} else {
		p.mode = Dark
	}
	p.toggles++
	logging.Theme("toggled to %s", p.mode)
	logging.Audit().ThemeToggled(string(p.mode), time.Now())
	return p.mode
}

// Toggles counts how many times Toggle has been called.
func (p *Provider) Toggles() int { return p.toggles }
