package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bytefield/field"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type fieldRow struct {
	offset   int
	path     []string
	typeName string
	value    string
	raw      string
}

type modelState int

const (
	stateBrowse modelState = iota
	stateEdit
)

type inspectModel struct {
	err      error
	s        *field.Struct
	dataFile string
	emitFile string
	rows     []fieldRow
	input    textinput.Model
	selected int
	status   string
	state    modelState
}

func runInteractive(layoutFile, dataFile, emitFile string) error {
	s, data, err := load(layoutFile, dataFile)
	if err != nil {
		return err
	}
	if _, err := s.Parse(data, 0, false); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if emitFile == "" {
		emitFile = dataFile + ".out"
	}

	m := &inspectModel{
		s:        s,
		dataFile: dataFile,
		emitFile: emitFile,
	}
	m.refresh()

	_, err = tea.NewProgram(m).Run()
	return err
}

// refresh rebuilds the visible rows from the current field tree; offsets
// may shift after edits to variable-length fields.
func (m *inspectModel) refresh() {
	m.rows = m.rows[:0]
	m.s.Walk(func(off int, path []string, p field.Prim) error {
		m.rows = append(m.rows, fieldRow{
			offset:   off,
			path:     path,
			typeName: p.TypeName(),
			value:    p.ValueString(),
			raw:      p.RawString(),
		})
		return nil
	})
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.rows)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.rows) > 0 {
					m.beginEdit()
				}
			case stateEdit:
				m.applyEdit()
			}

		case "e":
			if m.state == stateBrowse {
				m.emit()
			}

		case "esc":
			if m.state == stateEdit {
				m.state = stateBrowse
				m.status = ""
			}
		}
	}

	if m.state == stateEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) beginEdit() {
	row := m.rows[m.selected]
	ti := textinput.New()
	ti.Prompt = strings.Join(row.path, ".") + ": "
	ti.Placeholder = row.typeName
	ti.SetValue(row.value)
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.state = stateEdit
	m.status = ""
}

func (m *inspectModel) applyEdit() {
	row := m.rows[m.selected]
	val, err := convertValue(m.input.Value(), row.typeName)
	if err == nil {
		err = m.s.SetPath(row.path, val)
	}
	if err != nil {
		m.err = err
		m.state = stateBrowse
		return
	}

	m.err = nil
	m.state = stateBrowse
	m.status = fmt.Sprintf("set %s", strings.Join(row.path, "."))
	m.refresh()
}

func (m *inspectModel) emit() {
	out, err := m.s.Emit()
	if err == nil {
		err = os.WriteFile(m.emitFile, out, 0o644)
	}
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("emitted %d bytes to %s", len(out), m.emitFile)
}

// convertValue turns TUI input into the raw value a field accepts.
func convertValue(value, typeName string) (any, error) {
	switch {
	case strings.HasPrefix(typeName, "uint"):
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q as %s: %w", value, typeName, err)
		}
		return v, nil
	case strings.HasPrefix(typeName, "int"):
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q as %s: %w", value, typeName, err)
		}
		return v, nil
	case typeName == "bytes":
		b, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("parse %q as hex bytes: %w", value, err)
		}
		return b, nil
	default:
		return value, nil
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bytefield inspect: " + m.dataFile))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		line := fmt.Sprintf("%08x  %-8s %-24s = %s (%s)",
			row.offset,
			typeStyle.Render(row.typeName),
			strings.Join(row.path, "."),
			valueStyle.Render(row.value),
			row.raw,
		)
		if i == m.selected && m.state == stateBrowse {
			line = selectedStyle.Render(fmt.Sprintf("%08x  %-8s %-24s = %s (%s)",
				row.offset, row.typeName, strings.Join(row.path, "."), row.value, row.raw))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.state == stateEdit {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: apply · esc: cancel"))
	} else {
		if m.status != "" {
			b.WriteString("\n")
			b.WriteString(statusStyle.Render(m.status))
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: select · enter: edit · e: emit · q: quit"))
	}

	return b.String()
}
