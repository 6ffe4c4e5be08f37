// Package ui provides the single-window terminal front end that shows the
// fingerprint and copies it to the clipboard, built on Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tusharlock10/hwid/internal/clipboard"
)

const (
	title    = "HWID Authorization Tool"
	subtitle = "Hardware identifier of this system"
	note     = "This ID is derived from your hardware and operating system installation."
)

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// Model is the root Bubble Tea model. It is built once with the fingerprint
// to display; the displayed value never changes for the life of the window.
type Model struct {
	fingerprint string
	clip        clipboard.Writer
	help        help.Model
	status      string
	failed      bool
	width       int
}

// New creates a Model displaying fingerprint and copying through clip.
func New(fingerprint string, clip clipboard.Writer) *Model {
	return &Model{
		fingerprint: fingerprint,
		clip:        clip,
		help:        help.New(),
		width:       80,
	}
}

// Fingerprint returns the displayed value.
func (m *Model) Fingerprint() string {
	return m.fingerprint
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Copy):
			return m, m.copy()
		}

	case copiedMsg:
		if msg.err != nil {
			m.status, m.failed = fmt.Sprintf("Could not copy: %v", msg.err), true
		} else {
			m.status, m.failed = "HWID copied to clipboard!", false
		}
	}
	return m, nil
}

// copy writes the displayed fingerprint, unmodified, to the clipboard.
func (m *Model) copy() tea.Cmd {
	text, clip := m.fingerprint, m.clip
	return func() tea.Msg {
		if clip == nil {
			return copiedMsg{err: clipboard.ErrUnavailable}
		}
		return copiedMsg{err: clip.Write(text)}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString("\n " + titleStyle.Render(title) + "\n")
	b.WriteString(" " + subtitleStyle.Render(subtitle) + "\n\n")
	b.WriteString(" " + labelStyle.Render("Your HWID:") + "\n")

	// Wrap inside the border on terminals narrower than the digest.
	box := fingerprintStyle
	if avail := m.width - 3; avail > 2*fingerprintPad && avail < len(m.fingerprint)+2*fingerprintPad {
		box = box.Width(avail)
	}
	for _, line := range strings.Split(box.Render(m.fingerprint), "\n") {
		b.WriteString(" " + line + "\n")
	}
	b.WriteString("\n")

	if m.status != "" {
		style := successStyle
		if m.failed {
			style = failureStyle
		}
		b.WriteString(" " + style.Render(m.status) + "\n\n")
	}

	b.WriteString(" " + m.help.View(keys) + "\n")
	b.WriteString(" " + noteStyle.Render(note) + "\n")
	return b.String()
}

// Run shows the window until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
