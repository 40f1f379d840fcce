package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDealers() dealer.Dealers {
	return dealer.Dealers{
		{Name: "ABC Doors", City: "Pune", Address: "12 MG Road", Phone: "111"},
		{Name: "XYZ Traders", City: "Mumbai", Address: "5 Linking Road", Phone: "222"},
	}
}

func typeKeys(t *testing.T, m Model, s string) Model {
	t.Helper()

	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})

		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	return m
}

func TestNewShowsEverything(t *testing.T) {
	m := New(testDealers(), "")

	assert.Equal(t, testDealers(), m.Results())
	assert.Contains(t, m.View(), "ABC Doors")
	assert.Contains(t, m.View(), "XYZ Traders")
}

func TestNewWithQuery(t *testing.T) {
	m := New(testDealers(), "mumbai")

	assert.Equal(t, "mumbai", m.Query())
	assert.Equal(t, testDealers()[1:], m.Results())
}

func TestFiltersOnEveryKeystroke(t *testing.T) {
	m := New(testDealers(), "")

	m = typeKeys(t, m, "p")
	assert.Equal(t, testDealers()[:1], m.Results())

	m = typeKeys(t, m, "une")
	assert.Equal(t, "pune", m.Query())
	assert.Equal(t, testDealers()[:1], m.Results())
	assert.NotContains(t, m.View(), "XYZ Traders")

	m = typeKeys(t, m, "x")
	assert.Empty(t, m.Results())
	assert.Contains(t, m.View(), "No dealers found matching your search.")
}

func TestBackspaceWidensResults(t *testing.T) {
	m := typeKeys(t, New(testDealers(), ""), "pune")
	require.Len(t, m.Results(), 1)

	for i := 0; i < 4; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		m = next.(Model)
	}

	assert.Equal(t, "", m.Query())
	assert.Equal(t, testDealers(), m.Results())
}

func TestQuit(t *testing.T) {
	m := New(testDealers(), "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
