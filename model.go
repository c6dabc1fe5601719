package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"monthly-ledger/internal/config"
	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/logging"
	"monthly-ledger/internal/money"
)

const (
	tableView uint = iota
	editView
	confirmDeleteView
	errorView
	monthPickerView
)

type column uint

const (
	dateColumn column = iota
	descriptionColumn
	valueColumn
	typeColumn
)

var columnTitles = []string{"Data", "Descrição", "Valor", "Tipo"}

func (c column) title() string {
	if int(c) < len(columnTitles) {
		return columnTitles[c]
	}
	return "?"
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Edit   key.Binding
	Add    key.Binding
	Delete key.Binding
	Sort   key.Binding
	Month  key.Binding
	Graph  key.Binding
	Export key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "linha acima")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "linha abaixo")),
		Left:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "coluna")),
		Right:  key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→/tab", "coluna")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "editar")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar")),
		Delete: key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "excluir")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ordenar")),
		Month:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mês")),
		Graph:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "modo do gráfico")),
		Export: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exportar")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Sort, k.Month, k.Graph, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Add, k.Edit, k.Delete, k.Sort},
		{k.Month, k.Graph, k.Export, k.Quit},
	}
}

type model struct {
	state   uint
	store   *Store
	entries []ledger.Entry
	summary ledger.Summary
	row     int
	col     column

	// cell editing
	editor    textinput.Model
	editingID string

	errMessage    string
	statusMessage string

	// month picker
	months      []ledger.Month
	monthIndex  int
	monthGroups []ledger.YearMonths

	width  int
	height int

	keys   keyMap
	help   help.Model
	styles styles
	log    *log.Logger
}

func NewModel(store *Store, theme config.Theme) model {
	editor := textinput.New()
	editor.Prompt = ""

	m := model{
		state:  tableView,
		store:  store,
		editor: editor,
		keys:   newKeyMap(),
		help:   help.New(),
		styles: newStyles(theme),
		log:    logging.Component(store.log, "ui"),
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.log.Debug("key", "key", msg.String(), "state", m.state, "row", m.row, "col", m.col.title(), "entries", len(m.entries))
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case tableView:
			return m.handleTableView(msg)
		case editView:
			return m.handleEditView(msg)
		case confirmDeleteView:
			return m.handleConfirmDeleteView(msg.String())
		case errorView:
			return m.handleErrorView(msg.String())
		case monthPickerView:
			return m.handleMonthPickerView(msg.String())
		}
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// refresh reloads the visible rows and the summary after any mutation.
func (m *model) refresh() {
	m.entries = m.store.Entries()
	m.summary = m.store.Summary()
	if m.row >= len(m.entries) {
		m.row = len(m.entries) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m model) current() (ledger.Entry, bool) {
	if len(m.entries) == 0 || m.row < 0 || m.row >= len(m.entries) {
		return ledger.Entry{}, false
	}
	return m.entries[m.row], true
}

func (m *model) selectID(id string) {
	for i, e := range m.entries {
		if e.ID == id {
			m.row = i
			return
		}
	}
}

// Table View

func (m model) handleTableView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.entries)-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > dateColumn {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if msg.String() == "tab" && m.col == typeColumn {
			m.col = dateColumn
		} else if m.col < typeColumn {
			m.col++
		}
	case key.Matches(msg, m.keys.Edit):
		return m.enterEditing()
	case key.Matches(msg, m.keys.Add):
		return m.handleAdd()
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.current(); ok {
			m.state = confirmDeleteView
		}
	case key.Matches(msg, m.keys.Sort):
		m.store.Sort()
		id := ""
		if e, ok := m.current(); ok {
			id = e.ID
		}
		m.refresh()
		m.selectID(id)
	case key.Matches(msg, m.keys.Month):
		return m.enterMonthPicker()
	case key.Matches(msg, m.keys.Graph):
		mode := m.store.ToggleMode()
		m.refresh()
		m.statusMessage = "Modo do gráfico: " + modeLabel(mode)
	case key.Matches(msg, m.keys.Export):
		return m.handleExport()
	}
	return m, nil
}

func (m model) handleAdd() (tea.Model, tea.Cmd) {
	e := m.store.AddEntry()
	m.refresh()
	m.selectID(e.ID)
	m.col = descriptionColumn
	m.statusMessage = ""
	return m.enterEditing()
}

type exportDoneMsg struct {
	res ExportResult
	err error
}

// handleExport snapshots the month here and writes the files in a command so
// the event loop keeps drawing.
func (m model) handleExport() (tea.Model, tea.Cmd) {
	job := m.store.ExportJob()
	m.statusMessage = "Exportando..."
	return m, func() tea.Msg {
		res, err := job()
		return exportDoneMsg{res: res, err: err}
	}
}

func (m model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		text := fmt.Sprintf("Falha ao exportar: %v", msg.err)
		m.statusMessage = ""
		if m.state != tableView {
			m.statusMessage = text
			return m, nil
		}
		m.errMessage = text
		m.state = errorView
		return m, nil
	}
	m.statusMessage = "Exportado: " + msg.res.XLSX
	if msg.res.PNG != "" {
		m.statusMessage += ", " + msg.res.PNG
	}
	return m, nil
}

func modeLabel(mode ledger.GraphMode) string {
	if mode == ledger.Separate {
		return "separado"
	}
	return "unido"
}

// Edit View

func (m model) enterEditing() (tea.Model, tea.Cmd) {
	e, ok := m.current()
	if !ok || m.col == typeColumn {
		return m, nil
	}

	m.editingID = e.ID
	m.editor.Placeholder = ""
	switch m.col {
	case dateColumn:
		m.editor.SetValue(ledger.FormatDate(e.Date))
		m.editor.Placeholder = "dd/mm/aaaa"
	case descriptionColumn:
		if e.Description == ledger.PlaceholderDescription {
			m.editor.SetValue("")
			m.editor.Placeholder = ledger.PlaceholderDescription
		} else {
			m.editor.SetValue(e.Description)
		}
	case valueColumn:
		// the editor always speaks the notation money.Parse reads back
		m.editor.SetValue(money.Format(e.Value))
		m.editor.Placeholder = "1.500,50"
	}
	m.editor.CursorEnd()
	cmd := m.editor.Focus()
	m.state = editView
	return m, cmd
}

func (m model) handleEditView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.exitEditing(), nil
	case "enter":
		return m.commitEdit()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) commitEdit() (tea.Model, tea.Cmd) {
	text := m.editor.Value()
	if m.col == descriptionColumn && strings.TrimSpace(text) == "" {
		text = ledger.PlaceholderDescription
	}
	id := m.editingID
	_, err := m.store.UpdateEntry(id, m.col, text)
	m = m.exitEditing()
	m.refresh()
	m.selectID(id)
	if err != nil {
		m.errMessage = err.Error()
		m.state = errorView
	}
	return m, nil
}

func (m model) exitEditing() model {
	m.editor.Blur()
	m.editor.SetValue("")
	m.editingID = ""
	m.state = tableView
	return m
}

// Confirm Delete View

func (m model) handleConfirmDeleteView(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "y", "s", "enter":
		if e, ok := m.current(); ok {
			if err := m.store.DeleteEntry(e.ID); err != nil {
				m.errMessage = err.Error()
				m.state = errorView
				return m, nil
			}
		}
		m.refresh()
		m.state = tableView
	case "n", "esc", "q":
		m.state = tableView
	}
	return m, nil
}

// Error View

func (m model) handleErrorView(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "enter", "esc", " ", "q":
		m.errMessage = ""
		m.state = tableView
	}
	return m, nil
}

// Month Picker View

func (m model) enterMonthPicker() (tea.Model, tea.Cmd) {
	m.monthGroups = m.store.Months()
	m.months = nil
	m.monthIndex = 0
	for _, g := range m.monthGroups {
		m.months = append(m.months, g.Months...)
	}
	for i, mo := range m.months {
		if mo == m.store.Month() {
			m.monthIndex = i
		}
	}
	m.state = monthPickerView
	return m, nil
}

func (m model) handleMonthPickerView(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.monthIndex > 0 {
			m.monthIndex--
		}
	case "down", "j":
		if m.monthIndex < len(m.months)-1 {
			m.monthIndex++
		}
	case "enter":
		if m.monthIndex < len(m.months) {
			m.store.SelectMonth(m.months[m.monthIndex])
			m.row = 0
			m.refresh()
		}
		m.state = tableView
	case "esc", "q", "m":
		m.state = tableView
	}
	return m, nil
}
