// ABOUTME: Custom tea.Msg types for the Bubble Tea front-end
// ABOUTME: Frame ticks, config reloads from the watcher, and loading toggles

package btea

import (
	"time"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

// frameMsg drives one animation frame.
type frameMsg struct{ at time.Time }

// ConfigReloadedMsg carries a configuration re-read after a config file
// changed. A non-nil Err is shown in the footer and nothing else changes.
type ConfigReloadedMsg struct {
	Config toggle.Config[string]
	Theme  *theme.Theme
	Err    error
}

// KeepCurrent returns the reloaded config with current selected when it is
// still one of the values, so a reload does not move the indicator.
func (m ConfigReloadedMsg) KeepCurrent(current string) toggle.Config[string] {
	cfg := m.Config
	if cfg.IndexOf(current) >= 0 {
		cfg.Current = current
	}
	return cfg
}

// LoadingMsg turns the loading spinner on or off.
type LoadingMsg struct{ On bool }
