// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pane is the part of the screen receiving navigation keys.
type pane int

const (
	paneMain pane = iota
	paneSub
	paneContent
)

const statusTimeout = 3 * time.Second

// Model is the dashboard's root model. It owns no domain state of its own:
// navigation lives in nav and the records table in store. Both are mutated
// only from Update.
type Model struct {
	ctx   context.Context
	store *state.Store
	nav   *state.Navigation

	route string
	// onRecords is whether the records table was shown after the last
	// navigation change.
	onRecords bool

	focus      pane
	mainCursor int
	subCursor  int
	rowCursor  int

	search    textinput.Model
	searching bool
	spinner   spinner.Model

	form *formModel
	// submitting is the operation the open form waits for.
	submitting state.Op
	confirm    *confirmModel

	status        string
	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	width  int
	height int

	copyToClipboard func(string) error
	now             func() time.Time

	logger *logger.Logger
}

// NewModel builds the root model around an already restored navigation
// state machine and an empty record store.
func NewModel(ctx context.Context, store *state.Store, nav *state.Navigation, buildInfo models.AppBuildInfo, copyFn func(string) error, logger *logger.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search records..."
	search.Prompt = "Search: "
	search.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		ctx:             ctx,
		store:           store,
		nav:             nav,
		search:          search,
		spinner:         sp,
		buildInfo:       buildInfo,
		copyToClipboard: copyFn,
		now:             time.Now,
		logger:          logger,
	}
	m.route = nav.Route()
	m.syncCursors()

	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.showsRecords() {
		cmds = append(cmds, runThunk(m.store.FetchAll(m.ctx)))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionMsg:
		return m.applyAction(msg.action)

	case refreshMsg:
		if !m.showsRecords() {
			return m, nil
		}
		return m, runThunk(m.store.FetchAll(m.ctx))

	case formSubmittedMsg:
		return m.submitForm(msg.fields)

	case formClosedMsg:
		m.closeForm()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Copy failed: " + msg.err.Error())
		} else {
			m.status = "Barcode " + msg.barcode + " copied"
		}
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.form != nil {
		f, cmd := m.form.Update(msg)
		m.form = &f
		return m, cmd
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.toggleMain):
		m.nav.ToggleMainSidebar()
		return m, nil
	case key.Matches(msg, keys.toggleSub):
		m.nav.ToggleSubSidebar()
		if !m.nav.State().SubSidebarOpen && m.focus == paneSub {
			m.focus = paneContent
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.focus = m.nextPane(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focus = m.nextPane(-1)
		return m, nil
	}

	switch m.focus {
	case paneMain:
		return m.handleMainKey(msg)
	case paneSub:
		return m.handleSubKey(msg)
	default:
		return m.handleContentKey(msg)
	}
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sections := models.Sections()

	switch {
	case key.Matches(msg, keys.up):
		m.mainCursor = max(0, m.mainCursor-1)
	case key.Matches(msg, keys.down):
		m.mainCursor = min(len(sections)-1, m.mainCursor+1)
	case key.Matches(msg, keys.enter):
		route := m.nav.SelectMainItem(sections[m.mainCursor].Section)
		m.subCursor = 0
		m.focus = paneSub
		return m.navigate(route)
	}

	return m, nil
}

func (m Model) handleSubKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := subItems(m.nav.State())

	switch {
	case key.Matches(msg, keys.esc):
		m.nav.CloseSubSidebar()
		m.focus = paneContent
	case len(items) == 0:
	case key.Matches(msg, keys.up):
		m.subCursor = max(0, m.subCursor-1)
	case key.Matches(msg, keys.down):
		m.subCursor = min(len(items)-1, m.subCursor+1)
	case key.Matches(msg, keys.enter):
		route := m.nav.SelectSubItem(items[m.subCursor])
		m.focus = paneContent
		return m.navigate(route)
	}

	return m, nil
}

func (m Model) handleContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.showsRecords() {
		return m, nil
	}

	visible := m.store.Visible()
	current, hasCurrent := models.Record{}, false
	if m.rowCursor >= 0 && m.rowCursor < len(visible) {
		current, hasCurrent = visible[m.rowCursor], true
	}

	switch {
	case key.Matches(msg, keys.up):
		m.rowCursor = max(0, m.rowCursor-1)
	case key.Matches(msg, keys.down):
		m.rowCursor = max(0, min(len(visible)-1, m.rowCursor+1))
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.filter):
		m.store.SetFilterStatus(nextFilter(m.store.State().FilterStatus))
		m.clampRowCursor()
	case key.Matches(msg, keys.dismiss):
		m.store.ClearError()
	case key.Matches(msg, keys.refresh):
		return m, runThunk(m.store.FetchAll(m.ctx))
	case key.Matches(msg, keys.newItem):
		m.openForm(state.ModalCreate, nil)
	case !hasCurrent:
	case key.Matches(msg, keys.view):
		m.openForm(state.ModalView, &current)
	case key.Matches(msg, keys.edit):
		m.openForm(state.ModalEdit, &current)
	case key.Matches(msg, keys.highlight):
		return m, runThunk(m.store.ToggleHighlight(m.ctx, current.ID))
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{id: current.ID, donor: current.Donor}
	case key.Matches(msg, keys.copy):
		return m, m.copyBarcode(current.Barcode)
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchTerm(m.search.Value())
	m.clampRowCursor()
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.confirm.id
		m.confirm = nil
		return m, runThunk(m.store.Delete(m.ctx, id))
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

// navigate moves the content area to route. Leaving the records page tears
// the table view down: the search box is released and the error banner
// cleared. Entering it fetches the records.
func (m Model) navigate(route string) (tea.Model, tea.Cmd) {
	m.route = route
	was := m.onRecords
	m.onRecords = state.ShowsRecords(m.nav.State(), route)

	switch {
	case was && !m.onRecords:
		m.searching = false
		m.search.Blur()
		m.store.ClearError()
		return m, nil
	case !was && m.onRecords:
		m.rowCursor = 0
		return m, runThunk(m.store.FetchAll(m.ctx))
	}
	return m, nil
}

// applyAction feeds an operation outcome into the store. A form waiting for
// that operation is closed on success and kept open on failure.
func (m Model) applyAction(a state.Action) (tea.Model, tea.Cmd) {
	follow := m.store.Apply(a)
	m.clampRowCursor()

	if m.form != nil && m.submitting != "" && a.Op == m.submitting {
		switch a.Phase {
		case state.PhaseFulfilled:
			m.closeForm()
		case state.PhaseRejected:
			m.submitting = ""
			f := *m.form
			f.submitting = false
			m.form = &f
		}
	}

	return m, runThunk(follow)
}

func (m *Model) openForm(mode state.ModalMode, record *models.Record) {
	m.store.OpenModal(mode, record)
	f := newFormModel(mode, m.store.State().EditingRecord, m.now())
	m.form = &f
}

func (m *Model) closeForm() {
	m.store.CloseModal()
	m.form = nil
	m.submitting = ""
}

func (m Model) submitForm(fields models.RecordFields) (tea.Model, tea.Cmd) {
	st := m.store.State()

	switch {
	case st.ModalMode == state.ModalCreate:
		m.submitting = state.OpCreate
		return m, runThunk(m.store.Create(m.ctx, fields))

	case st.ModalMode == state.ModalEdit && st.EditingRecord != nil:
		record := *st.EditingRecord
		record.Donor = fields.Donor
		record.Panels = fields.Panels
		record.Barcode = fields.Barcode
		record.Source = fields.Source
		record.Date = fields.Date
		record.Amount = fields.Amount
		record.ObservedBy = fields.ObservedBy
		record.Status = fields.Status
		record.IsHighlighted = fields.IsHighlighted

		m.submitting = state.OpUpdate
		return m, runThunk(m.store.Update(m.ctx, record))
	}

	m.closeForm()
	return m, nil
}

func (m Model) copyBarcode(barcode string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{barcode: barcode, err: copyFn(barcode)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m Model) showsRecords() bool {
	return state.ShowsRecords(m.nav.State(), m.route)
}

func (m *Model) clampRowCursor() {
	n := len(m.store.Visible())
	m.rowCursor = max(0, min(m.rowCursor, n-1))
}

// syncCursors points the sidebar cursors at the restored selection.
func (m *Model) syncCursors() {
	st := m.nav.State()
	m.onRecords = state.ShowsRecords(st, m.route)
	if st.SelectedMainItem == nil {
		return
	}

	for i, info := range models.Sections() {
		if info.Section == *st.SelectedMainItem {
			m.mainCursor = i
		}
	}
	if st.SelectedSubSidebarItem == nil {
		return
	}
	for i, item := range subItems(st) {
		if item == *st.SelectedSubSidebarItem {
			m.subCursor = i
		}
	}
	m.focus = paneContent
}

// nextPane cycles focus, skipping the closed sub-sidebar.
func (m Model) nextPane(step int) pane {
	panes := []pane{paneMain, paneContent}
	if m.nav.State().SubSidebarOpen {
		panes = []pane{paneMain, paneSub, paneContent}
	}

	idx := 0
	for i, p := range panes {
		if p == m.focus {
			idx = i
		}
	}
	n := len(panes)
	return panes[((idx+step)%n+n)%n]
}

func (m Model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	st := m.nav.State()
	parts := []string{renderMainSidebar(st, m.mainCursor, m.focus == paneMain)}
	if st.SubSidebarOpen {
		parts = append(parts, renderSubSidebar(st, m.subCursor, m.focus == paneSub))
	}
	parts = append(parts, lipgloss.NewStyle().PaddingLeft(1).Render(m.contentView()))

	return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) contentView() string {
	switch {
	case m.form != nil:
		return m.form.View()
	case m.confirm != nil:
		return m.confirm.View()
	}

	page := state.ResolvePage(m.route)
	if !m.showsRecords() {
		return renderPage(page.Title, page.Description, "tab: switch pane  [ ]: sidebars  ?: about  q: quit")
	}

	view := tableView{
		state:   m.store.State(),
		visible: m.store.Visible(),
		cursor:  m.rowCursor,
		search:  m.search.View(),
		spinner: m.spinner.View(),
		status:  m.status,
	}
	if m.focus != paneContent {
		view.cursor = -1
	}

	return renderPage(page.Title, view.render(),
		"/: search  f: filter  n: add new  enter: view  e: edit  h: highlight  d: delete  c: copy barcode  r: refresh  x: dismiss  q: quit")
}
