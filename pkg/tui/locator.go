package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheesesashimi/stara/pkg/dealer"
)

// Model is a terminal dealer locator. The result list is recomputed from the
// full dealer list on every keystroke.
type Model struct {
	dealers dealer.Dealers
	results dealer.Dealers
	input   textinput.Model
}

func New(dealers dealer.Dealers, query string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search by city, name, or address..."
	ti.CharLimit = 100
	ti.SetValue(query)
	ti.Focus()

	return Model{
		dealers: dealers,
		results: dealer.Search(query, dealers),
		input:   ti,
	}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(dealers dealer.Dealers, query string) error {
	_, err := tea.NewProgram(New(dealers, query), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Query() string { return m.input.Value() }

func (m Model) Results() dealer.Dealers { return m.results }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results = dealer.Search(m.input.Value(), m.dealers)

	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Find a Dealer"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d", len(m.results), len(m.dealers))))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(mutedStyle.Render("No dealers found matching your search."))
		b.WriteString("\n")
	}

	for _, d := range m.results {
		b.WriteString(nameStyle.Render(d.Name))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(d.Address + ", " + d.City))
		b.WriteString("\n")
		b.WriteString(accentStyle.Render(d.Phone))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("type to filter • esc quit"))

	return b.String()
}
