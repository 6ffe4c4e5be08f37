// Package clipboard copies the fingerprint to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// ErrUnavailable is returned when neither the native clipboard nor a
// terminal fallback could take the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard verbatim.
type Writer interface {
	Write(text string) error
}

// System writes to the native clipboard (pbcopy, xclip/xsel/wl-copy or the
// Win32 API). When that is unavailable, as over SSH, it emits an OSC 52
// escape sequence to Terminal so the user's terminal emulator sets its
// clipboard instead.
type System struct {
	Terminal io.Writer // nil disables the OSC 52 fallback
	// Interactive reports whether Terminal is a terminal. The sequence is
	// only emitted when it is; written to a file or pipe it would be lost.
	Interactive bool

	native func(string) error
	getenv func(string) string
}

// NewSystem returns a System using tty for the OSC 52 fallback. The fallback
// is disabled when tty is not a terminal.
func NewSystem(tty *os.File) *System {
	s := &System{getenv: os.Getenv}
	if tty != nil {
		s.Terminal = tty
		s.Interactive = term.IsTerminal(int(tty.Fd()))
	}
	if !clipboard.Unsupported {
		s.native = clipboard.WriteAll
	}
	return s
}

// Write implements Writer.
func (s *System) Write(text string) error {
	nativeErr := errors.New("no native clipboard")
	if s.native != nil {
		if nativeErr = s.native(text); nativeErr == nil {
			return nil
		}
	}
	if s.Terminal == nil || !s.Interactive {
		return fmt.Errorf("%w: %v", ErrUnavailable, nativeErr)
	}

	seq := osc52.New(text)
	if s.getenv != nil && s.getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.Terminal); err != nil {
		return fmt.Errorf("%w: write OSC 52 sequence: %v", ErrUnavailable, err)
	}
	return nil
}
