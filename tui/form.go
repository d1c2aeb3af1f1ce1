// tui/form.go
package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/yackko/sez2ecef/internal/config"
	"github.com/yackko/sez2ecef/internal/geodesy"
	"github.com/yackko/sez2ecef/internal/input"
	"github.com/yackko/sez2ecef/internal/report"
	"github.com/yackko/sez2ecef/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormModel is a six-field form that converts the entered SEZ vector to
// ECEF each time a field changes.
type FormModel struct {
	inputs []textinput.Model
	focus  int

	result types.ECEF
	ready  bool  // all fields parsed
	err    error // last parse failure, nil while fields are still empty

	logger *slog.Logger
}

// NewFormModel creates a form with the first field focused. A nil logger
// discards debug output.
func NewFormModel(logger *slog.Logger) FormModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := FormModel{
		inputs: make([]textinput.Model, config.ArgCount),
		logger: logger,
	}
	for i, name := range config.ArgNames {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.Prompt = LabelStyle.Render(name)
		ti.CharLimit = 32
		ti.Width = 24
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.styleFocus()
	return m
}

// Init is a required method for tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update is a required method for tea.Model.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.styleFocus()
	return m.inputs[m.focus].Focus()
}

func (m *FormModel) styleFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].TextStyle = FocusedStyle
			continue
		}
		m.inputs[i].TextStyle = BlurredStyle
	}
}

func (m *FormModel) recompute() {
	m.ready, m.err = false, nil

	values := make([]string, len(m.inputs))
	for i, ti := range m.inputs {
		if strings.TrimSpace(ti.Value()) == "" {
			return
		}
		values[i] = ti.Value()
	}

	obs, sez, err := input.Parse(values)
	if err != nil {
		m.err = err
		m.logger.Debug("form input rejected", "error", err)
		return
	}

	m.result = geodesy.SEZToECEF(obs, sez)
	m.ready = true
	m.logger.Debug("converted",
		"lat_deg", obs.LatDeg, "lon_deg", obs.LonDeg, "hae_km", obs.HeightKm,
		"s_km", sez.S, "e_km", sez.E, "z_km", sez.Z,
		"x_km", m.result.X, "y_km", m.result.Y, "z_ecef_km", m.result.Z,
	)
}

// Result returns the last computed ECEF vector and whether every field
// currently holds a valid number.
func (m FormModel) Result() (types.ECEF, bool) {
	return m.result, m.ready
}

// Err returns the parse error for the current field values, if any.
func (m FormModel) Err() error {
	return m.err
}

// Focused returns the index of the focused field.
func (m FormModel) Focused() int {
	return m.focus
}

// View is a required method for tea.Model.
func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("SEZ to ECEF"))
	b.WriteString("\n\n")
	for _, ti := range m.inputs {
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var argErr *input.ArgumentError
	switch {
	case m.ready:
		lines := []string{
			"x_km " + report.FormatKm(m.result.X),
			"y_km " + report.FormatKm(m.result.Y),
			"z_km " + report.FormatKm(m.result.Z),
		}
		b.WriteString(ResultStyle.Render(strings.Join(lines, "\n")))
	case errors.As(m.err, &argErr):
		b.WriteString(ErrorStyle.Render(argErr.Error()))
	default:
		b.WriteString(HelpStyle.Render("Enter all six values."))
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("tab/shift+tab: move  esc: quit"))
	b.WriteString("\n")
	return b.String()
}
