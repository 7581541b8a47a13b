// Package mode defines the navigation shell that moves the app from the
// welcome screen into the demo browser.
package mode

import "github.com/zjrosen/tuitour/internal/log"

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeWelcome AppMode = iota
	ModeDemo
)

func (m AppMode) String() string {
	switch m {
	case ModeWelcome:
		return "welcome"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// Shell is the navigation state. The zero value starts in ModeWelcome.
type Shell struct {
	mode AppMode
}

// NewShell returns a shell on the welcome screen.
func NewShell() Shell {
	return Shell{mode: ModeWelcome}
}

// Mode returns the current mode.
func (s Shell) Mode() AppMode { return s.mode }

// Start moves from the welcome screen to the demo browser. It reports
// whether a transition happened; there is no way back.
func (s Shell) Start() (Shell, bool) {
	if s.mode != ModeWelcome {
		return s, false
	}
	s.mode = ModeDemo
	log.Info(log.CatMode, "mode changed", "from", ModeWelcome, "to", ModeDemo)
	return s, true
}
