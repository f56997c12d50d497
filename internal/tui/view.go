package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"pet-store-admin/internal/desk"
	"pet-store-admin/internal/domain/pets"
)

var fieldLabels = map[pets.Field]string{
	pets.FieldPetName:        "Name",
	pets.FieldAge:            "Age",
	pets.FieldKind:           "Kind",
	pets.FieldAddedDate:      "Added",
	pets.FieldNotes:          "Notes",
	pets.FieldHealthProblems: "Health problems",
}

var fieldErrors = map[pets.Field]string{
	pets.FieldPetName:   "name is required",
	pets.FieldAge:       "age must be a whole number of years",
	pets.FieldKind:      "choose a kind",
	pets.FieldAddedDate: "date must be YYYY-MM-DD",
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Pets"))
	b.WriteString("\n")

	if !m.desk.Ready() {
		b.WriteString(m.viewBoot())
		return b.String()
	}

	switch {
	case m.desk.Modals.DeleteModalVisible():
		b.WriteString(m.viewDeleteModal())
	case m.desk.Modals.PetModalVisible():
		b.WriteString(m.viewPetModal())
	default:
		b.WriteString(m.viewTable())
	}

	if err := m.desk.Status(); err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(err.Error()))
	}
	return b.String()
}

func (m *Model) viewBoot() string {
	if m.desk.Booting() {
		return m.styles.Loading.Render("Loading pet kinds…")
	}
	var b strings.Builder
	if err := m.desk.Status(); err != nil {
		b.WriteString(m.styles.Error.Render(err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("r retry · q quit"))
	return b.String()
}

func (m *Model) viewTable() string {
	var b strings.Builder

	header := fmt.Sprintf("%-6s %-24s %-12s %-12s", "ID", "Name", "Added", "Kind")
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")

	rows := m.desk.Table.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Muted.Render("  No pets yet. Press n to add one."))
		b.WriteString("\n")
	}
	for i, r := range rows {
		line := fmt.Sprintf("%-6d %-24s %-12s %-12s", r.PetID, truncate(r.PetName, 24), r.AddedDate, r.Kind)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if m.desk.Form.Session().Loading {
		b.WriteString(m.styles.Loading.Render("Loading pet…"))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(helpLine(m.keys.TableHelp())))
	return b.String()
}

func (m *Model) viewPetModal() string {
	s := m.desk.Form.Session()

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(m.desk.Form.Title()))
	b.WriteString("\n")

	for i, f := range pets.FormFields {
		b.WriteString(m.viewField(i == m.focus, f, s))
		b.WriteString("\n")
	}

	switch {
	case s.Submitting:
		b.WriteString(m.styles.Loading.Render("Saving…"))
		b.WriteString("\n")
	case s.SubmitErr != nil:
		b.WriteString(m.styles.Error.Render("Could not save: " + s.SubmitErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.formHelp(s)))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewField(focused bool, f pets.Field, s desk.Session) string {
	label := m.styles.Label.Render(fieldLabels[f])
	if focused && s.Editable(f) {
		label = m.styles.Focused.Render("› ") + m.styles.Label.Width(14).Render(fieldLabels[f])
	}

	var value string
	switch f {
	case pets.FieldKind:
		value = m.desk.Kinds().Label(m.kind)
		if value == "" {
			value = "(select)"
		}
		if s.Editable(f) {
			value = "‹ " + value + " ›"
		}
	case pets.FieldHealthProblems:
		value = "[ ]"
		if m.health {
			value = "[x]"
		}
	default:
		if s.Editable(f) {
			value = m.inputs[f].View()
		} else {
			value = m.inputs[f].Value()
		}
	}
	if !s.Editable(f) {
		value = m.styles.Locked.Render(value)
	}

	line := label + value
	if s.HasFieldError(f) {
		line += "  " + m.styles.Marker.Render("✗ "+fieldErrors[f])
	}
	return line
}

func (m *Model) formHelp(s desk.Session) string {
	k := m.keys
	var bindings []key.Binding
	switch s.Mode {
	case desk.ModeLocked:
		bindings = []key.Binding{k.Edit, k.DeletePet}
	case desk.ModeEditing:
		bindings = []key.Binding{k.NextField, k.Save, k.CancelEdit}
	default:
		bindings = []key.Binding{k.NextField, k.Toggle, k.Save}
	}
	if !s.Submitting {
		bindings = append(bindings, k.Close)
	}
	if m.desk.Modals.BackdropClosingEnabled() {
		bindings = append(bindings, k.Backdrop)
	}
	return helpLine(bindings)
}

func (m *Model) viewDeleteModal() string {
	md := m.desk.Modals

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Delete pet"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Delete pet #%d? This cannot be undone.", md.DeletePetID()))
	b.WriteString("\n")

	switch {
	case md.Deleting():
		b.WriteString(m.styles.Loading.Render("Deleting…"))
		b.WriteString("\n")
	case md.DeleteErr() != nil:
		b.WriteString(m.styles.Error.Render("Could not delete: " + md.DeleteErr().Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(helpLine([]key.Binding{m.keys.Confirm, m.keys.Cancel})))
	return m.styles.Dialog.Render(b.String())
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}
