// Package palette provides the interactive component catalog: a browsable
// list of registered component types on the left and a live property editor
// for the active placement on the right.
package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/pcobb/galvan/internal/config"
	"github.com/pcobb/galvan/internal/domain/catalog"
	"github.com/pcobb/galvan/internal/domain/component"
	"github.com/pcobb/galvan/internal/keys"
	"github.com/pcobb/galvan/internal/log"
	"github.com/pcobb/galvan/internal/ui/styles"
)

// ConfigReloadedMsg re-applies UI options after the config file changed.
type ConfigReloadedMsg struct {
	Config config.Config
}

// Model holds the palette state.
type Model struct {
	registry *catalog.Registry
	entries  []*catalog.Metadata
	cfg      config.Config
	keyMap   keys.KeyMap

	cursor int // index into entries

	// Active placement, nil until the user places a component.
	placement  *catalog.Placement
	instanceID string
	propCursor int // index into the placement's sorted schema keys

	status    string
	statusErr bool

	width  int
	height int

	// configPath is where toggled UI options are persisted; empty disables
	// persistence.
	configPath string

	// reload yields config change notifications; nil disables auto-reload.
	reload <-chan struct{}
	// loadConfig re-reads the config when a reload notification arrives.
	loadConfig func() config.Config
}

// New creates a palette over the given registry.
func New(reg *catalog.Registry, cfg config.Config) Model {
	return Model{
		registry: reg,
		entries:  reg.List(),
		cfg:      cfg,
		keyMap:   keys.DefaultKeyMap(),
		status:   "enter places the selected component",
	}
}

// WithConfigPath sets the file that UI option toggles are saved to.
func (m Model) WithConfigPath(path string) Model {
	m.configPath = path
	return m
}

// WithAutoReload wires a config change channel and loader into the model.
func (m Model) WithAutoReload(ch <-chan struct{}, load func() config.Config) Model {
	m.reload = ch
	m.loadConfig = load
	return m
}

// Placement returns the active placement, nil if none has been created yet.
func (m Model) Placement() *catalog.Placement {
	return m.placement
}

// InstanceID returns the editor-session id of the active placement.
func (m Model) InstanceID() string {
	return m.instanceID
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForReload()
}

func (m Model) waitForReload() tea.Cmd {
	if m.reload == nil || m.loadConfig == nil {
		return nil
	}
	ch := m.reload
	load := m.loadConfig
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: load()}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		styles.ApplyTheme(m.cfg.Theme)
		m.setStatus("configuration reloaded", false)
		log.Info(log.CatUI, "Applied reloaded config")
		return m, m.waitForReload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, km.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, km.Place):
		m = m.placeSelected()

	case key.Matches(msg, km.Clone):
		m = m.cloneActive()

	case key.Matches(msg, km.Rotate):
		m = m.rotateActive()

	case key.Matches(msg, km.PrevProp):
		if m.placement != nil && m.propCursor > 0 {
			m.propCursor--
		}

	case key.Matches(msg, km.NextProp):
		if m.placement != nil && m.propCursor < len(m.schemaKeys())-1 {
			m.propCursor++
		}

	case key.Matches(msg, km.Increment):
		m = m.adjustInteger(1)

	case key.Matches(msg, km.Decrement):
		m = m.adjustInteger(-1)

	case key.Matches(msg, km.Toggle):
		m = m.cycleEnum()

	case key.Matches(msg, km.TogglePins):
		m.cfg.UI.ShowPinNames = !m.cfg.UI.ShowPinNames
		m = m.saveUIOptions(fmt.Sprintf("pin names: %v", m.cfg.UI.ShowPinNames))

	case key.Matches(msg, km.ToggleGrouping):
		m.cfg.UI.GroupByCategory = !m.cfg.UI.GroupByCategory
		m = m.saveUIOptions(fmt.Sprintf("category grouping: %v", m.cfg.UI.GroupByCategory))
	}

	return m, nil
}

// saveUIOptions persists the current UI options to the config file so they
// survive restarts. The in-memory toggle still applies when saving fails.
func (m Model) saveUIOptions(okStatus string) Model {
	if m.configPath == "" {
		m.setStatus(okStatus, false)
		return m
	}
	if err := config.SaveUI(m.configPath, m.cfg.UI); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save UI options", err, "path", m.configPath)
		m.setStatus(err.Error(), true)
		return m
	}
	m.setStatus(okStatus, false)
	return m
}

func (m Model) placeSelected() Model {
	if len(m.entries) == 0 {
		return m
	}
	meta := m.entries[m.cursor]
	placement, err := m.registry.Create(meta.ID)
	if err != nil {
		log.ErrorErr(log.CatCatalog, "Create failed", err, "id", meta.ID)
		m.setStatus(err.Error(), true)
		return m
	}
	m.placement = placement
	m.instanceID = uuid.NewString()
	m.propCursor = 0
	m.setStatus(fmt.Sprintf("placed %s (%s)", meta.Name, shortID(m.instanceID)), false)
	log.Info(log.CatCatalog, "Placed component", "id", meta.ID, "instance", m.instanceID)
	return m
}

func (m Model) cloneActive() Model {
	if m.placement == nil {
		return m
	}
	m.placement = m.placement.Clone()
	m.instanceID = uuid.NewString()
	m.setStatus(fmt.Sprintf("cloned as %s", shortID(m.instanceID)), false)
	return m
}

func (m Model) rotateActive() Model {
	if m.placement == nil {
		return m
	}
	next := m.placement.Orientation().Next()
	raw, _ := json.Marshal(next)
	if err := m.placement.SetProperty("orientation", raw); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.setStatus(fmt.Sprintf("orientation: %s", next), false)
	return m
}

// adjustInteger nudges the selected integer property by delta. Out-of-range
// values are rejected by the component and surfaced in the status line.
func (m Model) adjustInteger(delta int) Model {
	name, desc, ok := m.selectedProperty()
	if !ok {
		return m
	}
	if _, isInt := desc.Type.(component.IntegerDomain); !isInt {
		return m
	}

	raw, ok := m.placement.GetProperty(name)
	if !ok {
		return m
	}
	var current int64
	if err := json.Unmarshal(raw, &current); err != nil {
		return m
	}

	next, _ := json.Marshal(current + int64(delta))
	if err := m.placement.SetProperty(name, next); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.clampPropCursor()
	m.setStatus(fmt.Sprintf("%s = %d", name, current+int64(delta)), false)
	return m
}

// cycleEnum advances the selected enumeration property to its next option.
func (m Model) cycleEnum() Model {
	name, desc, ok := m.selectedProperty()
	if !ok {
		return m
	}
	enum, isEnum := desc.Type.(component.EnumDomain)
	if !isEnum || len(enum.Options) == 0 {
		return m
	}

	raw, ok := m.placement.GetProperty(name)
	if !ok {
		return m
	}
	var current string
	if err := json.Unmarshal(raw, &current); err != nil {
		return m
	}

	idx := 0
	for i, opt := range enum.Options {
		if opt == current {
			idx = (i + 1) % len(enum.Options)
			break
		}
	}

	next, _ := json.Marshal(enum.Options[idx])
	if err := m.placement.SetProperty(name, next); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.setStatus(fmt.Sprintf("%s = %s", name, enum.Options[idx]), false)
	return m
}

func (m Model) schemaKeys() []string {
	if m.placement == nil {
		return nil
	}
	return m.placement.Schema().Keys()
}

func (m Model) selectedProperty() (string, component.Descriptor, bool) {
	if m.placement == nil {
		return "", component.Descriptor{}, false
	}
	schema := m.placement.Schema()
	names := schema.Keys()
	if m.propCursor >= len(names) {
		return "", component.Descriptor{}, false
	}
	name := names[m.propCursor]
	return name, schema[name], true
}

// clampPropCursor keeps the cursor valid after structural schema changes.
func (m *Model) clampPropCursor() {
	if n := len(m.schemaKeys()); m.propCursor >= n && n > 0 {
		m.propCursor = n - 1
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// View implements tea.Model.
func (m Model) View() string {
	left := m.viewCatalog()
	right := m.viewDetail()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	status := m.status
	if m.statusErr {
		status = styles.ErrorStyle.Render(status)
	} else {
		status = styles.SuccessStyle.Render(status)
	}

	help := styles.MutedStyle.Render("j/k move · enter place · r rotate · h/l property · +/- space edit · c clone · n/g options · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, status, help)
}

func (m Model) viewCatalog() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Components"))
	b.WriteString("\n")

	lastCategory := ""
	for i, meta := range m.entries {
		if m.cfg.UI.GroupByCategory && meta.Category != lastCategory {
			b.WriteString(styles.CategoryStyle.Render(meta.Category))
			b.WriteString("\n")
			lastCategory = meta.Category
		}

		label := meta.Name
		if m.cfg.UI.ShowDescriptions && meta.Description != "" {
			label = fmt.Sprintf("%s — %s", meta.Name, meta.Description)
		}
		maxLabel := 40
		if m.width > 0 && m.width/2 < maxLabel {
			maxLabel = m.width / 2
		}
		label = styles.TruncateString(label, maxLabel)

		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewDetail() string {
	if m.placement == nil {
		return styles.DetailBorderStyle.Render(styles.MutedStyle.Render("no component placed"))
	}

	meta := m.placement.Metadata()
	shape := m.placement.Shape()
	schema := m.placement.Schema()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(meta.Name))
	b.WriteString(styles.MutedStyle.Render("  " + shortID(m.instanceID)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%dx%d  %s  facing %s\n", shape.Width, shape.Height, shape.Image, m.placement.Orientation()))

	if m.cfg.UI.ShowPinNames && len(shape.Pins) > 0 {
		names := make([]string, len(shape.Pins))
		for i, pin := range shape.Pins {
			names[i] = fmt.Sprintf("%s(%d,%d)", pin.Name, pin.X, pin.Y)
		}
		b.WriteString(styles.MutedStyle.Render("pins: " + strings.Join(names, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, name := range schema.Keys() {
		value := "?"
		if raw, ok := m.placement.GetProperty(name); ok {
			value = string(raw)
		}
		line := fmt.Sprintf("%s = %s %s", name, value, domainHint(schema[name].Type))
		if i == m.propCursor {
			line = styles.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return styles.DetailBorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// domainHint renders a compact description of the allowed values.
func domainHint(d component.ValueDomain) string {
	switch d := d.(type) {
	case component.IntegerDomain:
		return styles.MutedStyle.Render(fmt.Sprintf("[%d..%d]", d.Min, d.Max))
	case component.TextDomain:
		return styles.MutedStyle.Render(fmt.Sprintf("[len %d..%d]", d.MinLen, d.MaxLen))
	case component.EnumDomain:
		return styles.MutedStyle.Render("[" + strings.Join(d.Options, "|") + "]")
	default:
		return ""
	}
}
