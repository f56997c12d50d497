package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap agrupa los atajos de la tabla, del formulario y de la confirmación de borrado.
type KeyMap struct {
	// Tabla
	Up      key.Binding
	Down    key.Binding
	New     key.Binding
	View    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding

	// Formulario
	NextField  key.Binding
	PrevField  key.Binding
	Save       key.Binding
	Edit       key.Binding
	CancelEdit key.Binding
	DeletePet  key.Binding
	Toggle     key.Binding
	PrevOption key.Binding
	NextOption key.Binding
	Backdrop   key.Binding
	Close      key.Binding

	// Confirmación
	Confirm key.Binding
	Cancel  key.Binding

	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new pet"),
		),
		View: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view/edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		CancelEdit: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "lock"),
		),
		DeletePet: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev kind"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next kind"),
		),
		Backdrop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "close"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),

		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// TableHelp es la línea de ayuda de la vista principal.
func (k KeyMap) TableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.New, k.View, k.Delete, k.Refresh, k.Quit}
}
