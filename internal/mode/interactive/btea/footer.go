// ABOUTME: FooterModel is a Bubble Tea leaf that renders the status line under the switch
// ABOUTME: Shows the selected value, the pending jump query, key hints and reload errors

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const hints = "←/→ move · tab cycle · type to jump · enter select · ? help · esc quit"

// FooterModel renders a two-line status bar.
// Line 1: selected value, index and pending query.
// Line 2: key hints, or the last error.
type FooterModel struct {
	value string
	index int
	count int
	query string
	err   string
	width int
}

// NewFooterModel creates an empty FooterModel.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages relevant to the footer.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

// WithValue returns a FooterModel showing the selected value at index of count.
func (m FooterModel) WithValue(v string, index, count int) FooterModel {
	m.value, m.index, m.count = v, index, count
	return m
}

// WithQuery returns a FooterModel with the pending jump query set.
func (m FooterModel) WithQuery(q string) FooterModel {
	m.query = q
	return m
}

// WithError returns a FooterModel showing err instead of the key hints.
// A nil err clears it.
func (m FooterModel) WithError(err error) FooterModel {
	m.err = ""
	if err != nil {
		m.err = err.Error()
	}
	return m
}

// View renders the two-line footer.
func (m FooterModel) View() string {
	s := Styles()

	parts := []string{s.Value.Render(m.value)}
	if m.count > 0 {
		parts = append(parts, s.Muted.Render(fmt.Sprintf("(%d/%d)", m.index+1, m.count)))
	}
	if m.query != "" {
		parts = append(parts, s.Muted.Render("jump:")+" "+s.Query.Render(m.query))
	}
	line1 := strings.Join(parts, " ")

	line2 := s.Muted.Render(hints)
	if m.err != "" {
		line2 = s.Error.Render("error: " + m.err)
	}

	if m.width > 0 {
		clip := lipgloss.NewStyle().MaxWidth(m.width)
		line1, line2 = clip.Render(line1), clip.Render(line2)
	}
	return line1 + "\n" + line2
}
