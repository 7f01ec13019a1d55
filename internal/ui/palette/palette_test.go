package palette

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pcobb/galvan/internal/config"
	"github.com/pcobb/galvan/internal/domain/gates"
	"github.com/pcobb/galvan/internal/domain/geometry"
)

func newTestModel() Model {
	return New(gates.Catalog(), config.Defaults())
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_ListsCatalogEntries(t *testing.T) {
	m := newTestModel()

	require.Len(t, m.entries, 4)
	require.Equal(t, 0, m.cursor)
	require.Nil(t, m.Placement())
}

func TestUpdate_Navigation(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes('j'))
	require.Equal(t, 1, m.cursor)

	m = press(t, m, runes('k'))
	require.Equal(t, 0, m.cursor)

	// Cursor stays in bounds at the top.
	m = press(t, m, runes('k'))
	require.Equal(t, 0, m.cursor)

	for range m.entries {
		m = press(t, m, runes('j'))
	}
	require.Equal(t, len(m.entries)-1, m.cursor)
}

func TestUpdate_PlaceCreatesPlacement(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Placement())
	require.NotEmpty(t, m.InstanceID())
	require.Equal(t, "and_gate", m.Placement().Metadata().ID)
	require.Equal(t, geometry.North, m.Placement().Orientation())
}

func TestUpdate_RotateCyclesOrientation(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, runes('r'))
	require.Equal(t, geometry.East, m.Placement().Orientation())

	m = press(t, m, runes('r'))
	require.Equal(t, geometry.South, m.Placement().Orientation())
}

func TestUpdate_RotateWithoutPlacementIsNoop(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes('r'))
	require.Nil(t, m.Placement())
}

func TestUpdate_IncrementIntegerProperty(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Move the property cursor to num_inputs.
	keys := m.schemaKeys()
	target := -1
	for i, k := range keys {
		if k == "num_inputs" {
			target = i
		}
	}
	require.GreaterOrEqual(t, target, 0)
	for i := 0; i < target; i++ {
		m = press(t, m, runes('l'))
	}

	m = press(t, m, runes('+'))
	raw, ok := m.Placement().GetProperty("num_inputs")
	require.True(t, ok)
	require.JSONEq(t, "3", string(raw))
	require.False(t, m.statusErr)
}

func TestUpdate_DecrementBelowMinimumSurfacesError(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	keys := m.schemaKeys()
	for i, k := range keys {
		if k == "num_inputs" {
			for j := 0; j < i; j++ {
				m = press(t, m, runes('l'))
			}
		}
	}

	m = press(t, m, runes('-'))

	require.True(t, m.statusErr)
	require.Contains(t, m.status, "num_inputs")

	raw, ok := m.Placement().GetProperty("num_inputs")
	require.True(t, ok)
	require.JSONEq(t, "2", string(raw))
}

func TestUpdate_ToggleCyclesEnumProperty(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Property cursor starts on invert_input_0, a Yes/No enum.
	require.Equal(t, "invert_input_0", m.schemaKeys()[m.propCursor])

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	raw, ok := m.Placement().GetProperty("invert_input_0")
	require.True(t, ok)
	require.JSONEq(t, `"Yes"`, string(raw))

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	raw, ok = m.Placement().GetProperty("invert_input_0")
	require.True(t, ok)
	require.JSONEq(t, `"No"`, string(raw))
}

func TestUpdate_CloneYieldsFreshInstance(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes('r'))

	first := m.Placement()
	firstID := m.InstanceID()

	m = press(t, m, runes('c'))

	require.NotSame(t, first, m.Placement())
	require.NotEqual(t, firstID, m.InstanceID())
	require.Equal(t, geometry.East, m.Placement().Orientation())
}

func TestUpdate_ConfigReloadAppliesUIOptions(t *testing.T) {
	m := newTestModel()

	cfg := config.Defaults()
	cfg.UI.GroupByCategory = false

	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m, ok := updated.(Model)
	require.True(t, ok)

	require.False(t, m.cfg.UI.GroupByCategory)
	require.Contains(t, m.status, "reloaded")
}

func TestUpdate_TogglePinNamesPersists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(config.DefaultConfigTemplate()), 0o600))

	m := newTestModel().WithConfigPath(configPath)
	require.True(t, m.cfg.UI.ShowPinNames)

	m = press(t, m, runes('n'))

	require.False(t, m.cfg.UI.ShowPinNames)
	require.False(t, m.statusErr)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	ui, ok := doc["ui"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, false, ui["show_pin_names"])

	// Sections outside ui keep their comments and values.
	require.Contains(t, string(data), "# galvan configuration")
	require.Equal(t, true, doc["auto_reload"])
}

func TestUpdate_ToggleGroupingPersists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(config.DefaultConfigTemplate()), 0o600))

	m := newTestModel().WithConfigPath(configPath)
	m = press(t, m, runes('g'))

	require.False(t, m.cfg.UI.GroupByCategory)
	require.NotContains(t, m.viewCatalog(), "Gates")

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	ui, ok := doc["ui"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, false, ui["group_by_category"])
}

func TestUpdate_ToggleWithoutConfigPathStaysInMemory(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes('n'))

	require.False(t, m.cfg.UI.ShowPinNames)
	require.False(t, m.statusErr)
}

func TestView_ShowsCatalogAndDetail(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()

	require.Contains(t, view, "Components")
	require.Contains(t, view, "AND Gate")
	require.Contains(t, view, "num_inputs")
	require.Contains(t, view, "orientation")
}

func TestView_WithoutPlacement(t *testing.T) {
	m := newTestModel()

	require.Contains(t, m.View(), "no component placed")
}

func TestPalette_QuitEndsProgram(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestModel(), teatest.WithInitialTermSize(100, 40))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
