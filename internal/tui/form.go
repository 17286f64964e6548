// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldPicker
)

// formField is one row of the record form. Text rows edit input; picker
// rows cycle through options.
type formField struct {
	label string
	kind  fieldKind

	input textinput.Model

	options []string
	labels  []string
	idx     int
}

func (f formField) value() string {
	if f.kind == fieldPicker {
		return f.options[f.idx]
	}
	return strings.TrimSpace(f.input.Value())
}

// Row order of the record form.
const (
	rowDonor = iota
	rowPanels
	rowBarcode
	rowSource
	rowDate
	rowAmount
	rowObservedBy
	rowStatus
)

// formModel is the modal create/edit/view form.
type formModel struct {
	mode   state.ModalMode
	fields []formField
	focus  int

	// highlighted is carried over unchanged from the edited record.
	highlighted bool

	err        string
	submitting bool
}

// newFormModel opens the form in mode. In create mode the form starts from
// the defaults dated today; otherwise it is filled from record.
func newFormModel(mode state.ModalMode, record *models.Record, today time.Time) formModel {
	values := models.NewRecordFields(today)
	if record != nil && mode != state.ModalCreate {
		values = record.Fields()
	}

	sources := make([]string, 0, len(models.SourceOptions))
	sourceLabels := make([]string, 0, len(models.SourceOptions))
	for _, o := range models.SourceOptions {
		sources = append(sources, o.Value)
		sourceLabels = append(sourceLabels, o.Label)
	}
	// a free-text source from the server stays selectable
	if !slices.Contains(sources, values.Source) && values.Source != "" {
		sources = append(sources, values.Source)
		sourceLabels = append(sourceLabels, values.Source)
	}

	statuses := make([]string, 0, 5)
	for _, s := range models.AllStatuses() {
		statuses = append(statuses, string(s))
	}

	m := formModel{
		mode:        mode,
		highlighted: values.IsHighlighted,
		fields: []formField{
			rowDonor:      textField("Donor Name", values.Donor, ""),
			rowPanels:     textField("Panels", values.Panels, ""),
			rowBarcode:    textField("Barcode", values.Barcode, ""),
			rowSource:     pickerField("Source", sources, sourceLabels, values.Source),
			rowDate:       textField("Date", models.DisplayToInputDate(values.Date), "YYYY-MM-DD"),
			rowAmount:     textField("Amount", values.Amount, "e.g., $0.00"),
			rowObservedBy: textField("Observed By", values.ObservedBy, ""),
			rowStatus:     pickerField("Status", statuses, statuses, string(values.Status)),
		},
	}
	m.setFocus(0)

	return m
}

func textField(label, value, placeholder string) formField {
	in := textinput.New()
	in.Width = 36
	in.CharLimit = 512
	in.Placeholder = placeholder
	in.SetValue(value)
	return formField{label: label, kind: fieldText, input: in}
}

func pickerField(label string, options, labels []string, value string) formField {
	idx := slices.Index(options, value)
	if idx < 0 {
		idx = 0
	}
	return formField{label: label, kind: fieldPicker, options: options, labels: labels, idx: idx}
}

func (m *formModel) setFocus(i int) {
	n := len(m.fields)
	m.focus = ((i % n) + n) % n
	for j := range m.fields {
		if m.fields[j].kind != fieldText {
			continue
		}
		if j == m.focus && !m.mode.ReadOnly() {
			m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
}

// Fields returns the form content as a record payload with the date
// converted to storage format.
func (m formModel) Fields() models.RecordFields {
	return models.RecordFields{
		Donor:         m.fields[rowDonor].value(),
		Panels:        m.fields[rowPanels].value(),
		Barcode:       m.fields[rowBarcode].value(),
		Source:        m.fields[rowSource].value(),
		Date:          models.InputToDisplayDate(m.fields[rowDate].value()),
		Amount:        m.fields[rowAmount].value(),
		ObservedBy:    m.fields[rowObservedBy].value(),
		Status:        models.Status(m.fields[rowStatus].value()),
		IsHighlighted: m.highlighted,
	}
}

// validate returns the message for the first empty required field or a
// malformed date, and the empty string for a complete form.
func (m formModel) validate() string {
	for _, f := range m.fields {
		if f.value() == "" {
			return f.label + " is required"
		}
	}
	if _, err := time.Parse(models.InputDateLayout, m.fields[rowDate].value()); err != nil {
		return "Date must be YYYY-MM-DD"
	}
	return ""
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode.ReadOnly() {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter), keyMsg.String() == "q":
			return m, func() tea.Msg { return formClosedMsg{} }
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.setFocus(m.focus + 1)
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.setFocus(m.focus - 1)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return formClosedMsg{} }
	case key.Matches(keyMsg, keys.submit):
		return m.submit()
	case key.Matches(keyMsg, keys.enter):
		if m.focus == len(m.fields)-1 {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
		m.setFocus(m.focus - 1)
		return m, nil
	}

	f := &m.fields[m.focus]
	if f.kind == fieldPicker {
		switch {
		case key.Matches(keyMsg, keys.left):
			f.idx = (f.idx - 1 + len(f.options)) % len(f.options)
		case key.Matches(keyMsg, keys.right), keyMsg.String() == " ":
			f.idx = (f.idx + 1) % len(f.options)
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m formModel) submit() (formModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	if msg := m.validate(); msg != "" {
		m.err = msg
		return m, nil
	}

	m.err = ""
	m.submitting = true
	fields := m.Fields()
	return m, func() tea.Msg { return formSubmittedMsg{fields: fields} }
}

func (m formModel) View() string {
	var b strings.Builder

	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = focusedStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(cell(f.label, 12))
		b.WriteString(" ")

		switch {
		case f.kind == fieldPicker && m.mode.ReadOnly():
			b.WriteString(f.labels[f.idx])
		case f.kind == fieldPicker:
			b.WriteString("‹ " + f.labels[f.idx] + " ›")
		case m.mode.ReadOnly():
			b.WriteString(valueOrDash(f.input.Value()))
		default:
			b.WriteString(f.input.View())
		}
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	var hotKeys string
	switch {
	case m.mode.ReadOnly():
		hotKeys = "esc / enter: close"
	case m.submitting && m.mode == state.ModalCreate:
		hotKeys = "Creating..."
	case m.submitting:
		hotKeys = "Updating..."
	case m.mode == state.ModalCreate:
		hotKeys = "tab: next field  ←/→: change option  ctrl+s: Create Record  esc: cancel"
	default:
		hotKeys = "tab: next field  ←/→: change option  ctrl+s: Update Record  esc: cancel"
	}

	return overlayBoxStyle.Render(renderPage(m.mode.Title(), b.String(), hotKeys))
}
