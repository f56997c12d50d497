// Package tui es la proyección en terminal del desk de mascotas.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pet-store-admin/internal/desk"
	"pet-store-admin/internal/domain/pets"
)

// Model envuelve un *desk.Desk. Todo cambio de estado pasa por el desk;
// aquí solo viven el cursor, el foco y los inputs de texto.
type Model struct {
	// Dependencies
	desk *desk.Desk
	ctx  context.Context

	// Components
	keys   KeyMap
	styles Styles
	inputs map[pets.Field]*textinput.Model

	// Form projection
	kind      string
	health    bool
	focus     int
	syncedRev int

	// Numeric state
	cursor int
	width  int
	height int
}

// New crea el modelo. ctx es el contexto de los requests remotos.
func New(ctx context.Context, d *desk.Desk) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		desk:      d,
		ctx:       ctx,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		inputs:    make(map[pets.Field]*textinput.Model),
		syncedRev: -1,
	}

	for _, f := range textFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = charLimits[f]
		ti.Placeholder = placeholders[f]
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.inputs[f] = &ti
	}
	return m
}

// textFields son los campos con input de texto; kind y healthProblems son pickers.
var textFields = []pets.Field{
	pets.FieldPetName,
	pets.FieldAge,
	pets.FieldAddedDate,
	pets.FieldNotes,
}

var charLimits = map[pets.Field]int{
	pets.FieldPetName:   64,
	pets.FieldAge:       3,
	pets.FieldAddedDate: len(pets.DateLayout),
	pets.FieldNotes:     500,
}

var placeholders = map[pets.Field]string{
	pets.FieldPetName:   "Pet name",
	pets.FieldAge:       "Years",
	pets.FieldAddedDate: pets.DateLayout,
	pets.FieldNotes:     "Notes",
}

// Init arranca el bootstrap (kinds + primera lista).
func (m *Model) Init() tea.Cmd {
	return m.bootstrap()
}

func (m *Model) bootstrap() tea.Cmd {
	req, ok := m.desk.BeginBootstrap()
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return MsgBootstrapped{Result: req.Do(ctx)}
	}
}

func (m *Model) refresh() tea.Cmd {
	req, err := m.desk.BeginRefresh()
	if err != nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return MsgRefreshed{Result: req.Do(ctx)}
	}
}

func (m *Model) view(row int) tea.Cmd {
	req, err := m.desk.ViewRow(row)
	if err != nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return MsgViewLoaded{Result: req.Do(ctx)}
	}
}

func (m *Model) submit() tea.Cmd {
	req, err := m.desk.Form.BeginSubmit(m.formValues())
	// err: marcadores de validación o formulario bloqueado; ambos quedan en el Session.
	if err != nil || req == nil {
		return nil
	}
	ctx := m.ctx
	r := *req
	return func() tea.Msg {
		return MsgSubmitted{Result: r.Do(ctx)}
	}
}

func (m *Model) confirmDelete() tea.Cmd {
	req, ok := m.desk.Modals.BeginDelete()
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return MsgDeleted{Result: req.Do(ctx)}
	}
}

// formValues lee el formulario tal cual lo ve el usuario.
func (m *Model) formValues() pets.RawPet {
	return pets.RawPet{
		PetName:        m.inputs[pets.FieldPetName].Value(),
		Age:            m.inputs[pets.FieldAge].Value(),
		Kind:           m.kind,
		AddedDate:      m.inputs[pets.FieldAddedDate].Value(),
		Notes:          m.inputs[pets.FieldNotes].Value(),
		HealthProblems: m.health,
	}
}

// syncForm copia Session.Values a los inputs cuando el controller los reemplazó.
func (m *Model) syncForm() {
	if !m.desk.Ready() {
		return
	}
	s := m.desk.Form.Session()
	if s.Revision != m.syncedRev {
		m.syncedRev = s.Revision
		m.inputs[pets.FieldPetName].SetValue(s.Values.PetName)
		m.inputs[pets.FieldAge].SetValue(s.Values.Age)
		m.inputs[pets.FieldAddedDate].SetValue(s.Values.AddedDate)
		m.inputs[pets.FieldNotes].SetValue(s.Values.Notes)
		m.kind = s.Values.Kind
		m.health = s.Values.HealthProblems
		m.focus = 0
	}
	m.applyFocus(s)
}

// applyFocus deja con cursor solo el input enfocado, y solo si es editable.
func (m *Model) applyFocus(s desk.Session) {
	focused := m.focusedField()
	for f, ti := range m.inputs {
		if f == focused && s.Editable(f) {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

func (m *Model) focusedField() pets.Field {
	return pets.FormFields[m.focus]
}

func (m *Model) moveFocus(delta int) {
	n := len(pets.FormFields)
	m.focus = (m.focus + delta + n) % n
}

// cycleKind recorre el catálogo; "" (sin elegir) solo existe antes del primer cambio.
func (m *Model) cycleKind(delta int) {
	all := m.desk.Kinds().All()
	if len(all) == 0 {
		return
	}
	idx := -1
	for i, k := range all {
		if k.Value == m.kind {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta > 0 {
			idx = 0
		} else {
			idx = len(all) - 1
		}
	} else {
		idx = (idx + delta + len(all)) % len(all)
	}
	m.kind = all[idx].Value
}

func (m *Model) clampCursor() {
	if !m.desk.Ready() {
		m.cursor = 0
		return
	}
	n := m.desk.Table.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
