// Package settings implements the terminal editor for the backup source
// folder and extension filter.
//
// The editor has two text inputs and a save button. Tab and the arrow keys
// move focus, enter saves, esc or ctrl+c leaves without saving. Saving
// validates the source folder, writes the config file and quits.
package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gesturebackup/internal/backup"
	"gesturebackup/internal/config"
	"gesturebackup/internal/version"
)

type field int

const (
	fieldSource field = iota
	fieldExtension
	fieldSave
	fieldCount
)

// savedMsg reports the result of a save attempt.
type savedMsg struct {
	err error
}

// SaveFunc persists the edited settings.
type SaveFunc func(path string, cfg config.AppConfig) error

// Model is the bubbletea model of the editor.
type Model struct {
	path   string
	inputs [fieldSave]textinput.Model
	focus  field

	message string
	failed  bool
	saved   bool

	save SaveFunc
}

// New returns an editor pre-filled with cfg that saves to path.
func New(path string, cfg config.AppConfig) Model {
	source := newInput("/home/you/Documents")
	source.SetValue(cfg.SourceDir)
	source.Focus()

	ext := newInput(backup.FilterAll)
	ext.SetValue(cfg.FileExtension)

	return Model{
		path:   path,
		inputs: [fieldSave]textinput.Model{source, ext},
		save:   config.Save,
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 4096
	ti.Width = 46
	ti.PlaceholderStyle = placeholderStyle
	return ti
}

// WithSaveFunc replaces the function used to persist the settings.
func (m Model) WithSaveFunc(save SaveFunc) Model {
	m.save = save
	return m
}

// Saved reports whether the settings were written.
func (m Model) Saved() bool {
	return m.saved
}

// Config returns the settings as currently edited.
func (m Model) Config() config.AppConfig {
	return config.AppConfig{
		SourceDir:     strings.TrimSpace(m.inputs[fieldSource].Value()),
		FileExtension: strings.TrimSpace(m.inputs[fieldExtension].Value()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.failed = true
			m.message = msg.err.Error()
			return m, nil
		}
		m.saved = true
		m.failed = false
		m.message = "Settings saved to " + m.path
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case tea.KeyEnter:
			if m.focus != fieldSave {
				return m, m.setFocus(m.focus + 1)
			}
			return m, m.saveCmd()
		}
		if m.focus == fieldSave {
			return m, nil
		}
		m.message = ""
		m.failed = false
	}

	// Remaining keys and cursor blinks go to the focused field
	if m.focus == fieldSave {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if field(i) == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) saveCmd() tea.Cmd {
	cfg := m.Config()
	path := m.path
	save := m.save
	return func() tea.Msg {
		if err := validate(cfg); err != nil {
			return savedMsg{err: err}
		}
		if err := save(path, cfg); err != nil {
			return savedMsg{err: fmt.Errorf("save failed: %w", err)}
		}
		return savedMsg{}
	}
}

func validate(cfg config.AppConfig) error {
	if cfg.SourceDir == "" {
		return config.ErrNoSource
	}
	info, err := os.Stat(cfg.SourceDir)
	if err != nil {
		return fmt.Errorf("source folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source folder %s is not a directory", cfg.SourceDir)
	}
	if strings.ContainsAny(strings.TrimPrefix(cfg.FileExtension, "."), `/\ `) {
		return fmt.Errorf("extension %q must be a bare extension such as txt", cfg.FileExtension)
	}
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(version.GetAppTitle()))
	b.WriteString("\n")
	b.WriteString(m.renderField("Source folder", fieldSource))
	b.WriteString("\n")
	b.WriteString(m.renderField("Extension filter", fieldExtension))
	b.WriteString("\n\n")

	button := buttonStyle
	if m.focus == fieldSave {
		button = focusedButtonStyle
	}
	b.WriteString(button.Render("Save"))

	if m.message != "" {
		b.WriteString("\n\n")
		if m.failed {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(successStyle.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓: move • enter: next/save • ctrl+u: clear • esc: quit"))

	return borderStyle.Render(b.String())
}

func (m Model) renderField(label string, f field) string {
	style := inputStyle
	if m.focus == f {
		style = focusedInputStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render(label), style.Render(m.inputs[f].View()))
}
