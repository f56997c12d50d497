package desk

import "pet-store-admin/internal/domain/pets"

// Mode es el estado del formulario compartido.
type Mode int

const (
	ModeNew     Mode = iota // formulario en blanco, submit crea
	ModeEditing             // inputs habilitados, submit actualiza
	ModeLocked              // vista de solo lectura de una mascota persistida
)

func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeEditing:
		return "editing"
	case ModeLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Session es el Form Session State. Lo posee el FormController;
// el resto recibe copias vía FormController.Session().
type Session struct {
	Mode       Mode
	Bound      *pets.Pet
	Submitting bool
	Loading    bool

	// Values son los valores crudos que muestra el formulario.
	Values      pets.RawPet
	FieldErrors []pets.Field
	SubmitErr   error

	// Revision cambia cada vez que el controller reemplaza Values;
	// la vista la usa para saber cuándo re-sincronizar sus inputs.
	Revision int
}

// Editable responde si el input f acepta cambios en el estado actual.
func (s Session) Editable(f pets.Field) bool {
	if s.Submitting {
		return false
	}
	switch s.Mode {
	case ModeNew:
		return true
	case ModeEditing:
		return !immutableAfterCreate(f)
	default:
		return false
	}
}

func (s Session) HasFieldError(f pets.Field) bool {
	for _, x := range s.FieldErrors {
		if x == f {
			return true
		}
	}
	return false
}

// kind y addedDate se fijan al crear la mascota.
func immutableAfterCreate(f pets.Field) bool {
	return f == pets.FieldKind || f == pets.FieldAddedDate
}
