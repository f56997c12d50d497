package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pet-store-admin/internal/desk"
	"pet-store-admin/internal/domain/pets"
)

// Update es el único lugar donde cambia el estado del desk.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgBootstrapped:
		_ = m.desk.CompleteBootstrap(msg.Result)
		m.clampCursor()
		m.syncForm()
		return m, nil

	case MsgRefreshed:
		_ = m.desk.CompleteRefresh(msg.Result)
		m.clampCursor()
		return m, nil

	case MsgViewLoaded:
		_ = m.desk.CompleteView(msg.Result)
		m.syncForm()
		return m, nil

	case MsgSubmitted:
		m.desk.CompleteSubmit(msg.Result)
		m.clampCursor()
		m.syncForm()
		return m, nil

	case MsgDeleted:
		m.desk.CompleteDelete(msg.Result)
		m.clampCursor()
		m.syncForm()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if !m.desk.Ready() {
		return m.handleBootKey(msg)
	}

	// la confirmación de borrado queda por encima del modal de mascota
	switch {
	case m.desk.Modals.DeleteModalVisible():
		return m.handleDeleteKey(msg)
	case m.desk.Modals.PetModalVisible():
		return m.handleFormKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m *Model) handleBootKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m, m.bootstrap()
	}
	return m, nil
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.desk.Table.Len()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.desk.ClearStatus()
		m.desk.Form.OpenForCreate()
		m.syncForm()
		return m, nil

	case key.Matches(msg, m.keys.View):
		return m, m.view(m.cursor)

	case key.Matches(msg, m.keys.Delete):
		_ = m.desk.DeleteRow(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.desk.ClearStatus()
		return m, m.refresh()
	}
	return m, nil
}

func (m *Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.confirmDelete()
	case key.Matches(msg, m.keys.Cancel):
		m.desk.Modals.HideDeleteModal()
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.desk.Form
	s := form.Session()

	switch {
	case key.Matches(msg, m.keys.Close):
		// el botón de cierre queda deshabilitado durante el submit
		if !s.Submitting {
			m.desk.Close()
			m.syncForm()
		}
		return m, nil

	case key.Matches(msg, m.keys.Backdrop):
		if m.desk.Modals.BackdropClosingEnabled() {
			m.desk.Close()
			m.syncForm()
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		cmd := m.submit()
		m.syncForm()
		return m, cmd

	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		m.applyFocus(s)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		m.applyFocus(s)
		return m, nil

	case key.Matches(msg, m.keys.CancelEdit):
		if form.CancelEdit() == nil {
			m.syncForm()
		}
		return m, nil
	}

	// En LOCKED no hay inputs activos: las letras son acciones.
	if s.Mode == desk.ModeLocked && !s.Loading {
		switch {
		case key.Matches(msg, m.keys.Edit):
			if form.RequestEdit() == nil {
				m.syncForm()
			}
		case key.Matches(msg, m.keys.DeletePet):
			_ = form.RequestDelete()
		}
		return m, nil
	}

	return m.editField(msg, s)
}

// editField manda la tecla al campo enfocado si el estado lo permite.
func (m *Model) editField(msg tea.KeyMsg, s desk.Session) (tea.Model, tea.Cmd) {
	f := m.focusedField()
	if !s.Editable(f) {
		return m, nil
	}

	switch f {
	case pets.FieldKind:
		switch {
		case key.Matches(msg, m.keys.NextOption), key.Matches(msg, m.keys.Toggle):
			m.cycleKind(1)
		case key.Matches(msg, m.keys.PrevOption):
			m.cycleKind(-1)
		}
		return m, nil

	case pets.FieldHealthProblems:
		if key.Matches(msg, m.keys.Toggle) {
			m.health = !m.health
		}
		return m, nil
	}

	ti, ok := m.inputs[f]
	if !ok {
		return m, nil
	}
	updated, cmd := ti.Update(msg)
	*ti = updated
	return m, cmd
}
