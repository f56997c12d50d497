package desk

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pet-store-admin/internal/domain/pets"
	"pet-store-admin/internal/platform/logger"
)

var ErrInvalidTransition = errors.New("invalid form transition")

// FormController es dueño del Session del modal de mascota.
//
// Las operaciones remotas se parten en Begin/Complete: Begin corre en el loop
// de la UI y devuelve un request; request.Do corre fuera del loop sin tocar el
// controller; Complete vuelve al loop y aplica el resultado.
type FormController struct {
	svc       PetService
	kinds     *pets.Kinds
	validator *pets.Validator
	modals    *Modals
	table     *Table
	log       logger.Logger
	now       func() time.Time

	state Session
	// gen cambia en cada reset/open; los resultados de una generación
	// anterior ya no tocan el formulario.
	gen int
}

func NewFormController(svc PetService, kinds *pets.Kinds, modals *Modals, table *Table, log logger.Logger) *FormController {
	if log == nil {
		log = logger.Nop()
	}
	c := &FormController{
		svc:       svc,
		kinds:     kinds,
		validator: pets.NewValidator(kinds),
		modals:    modals,
		table:     table,
		log:       log.With(map[string]any{"component": "pet_form"}),
		now:       time.Now,
	}
	c.reset()
	return c
}

// Session devuelve una copia del estado.
func (c *FormController) Session() Session {
	s := c.state
	if s.Bound != nil {
		p := *s.Bound
		s.Bound = &p
	}
	if s.FieldErrors != nil {
		s.FieldErrors = append([]pets.Field(nil), s.FieldErrors...)
	}
	return s
}

func (c *FormController) Mode() Mode { return c.state.Mode }

// Title es el header del modal.
func (c *FormController) Title() string {
	switch {
	case c.state.Mode == ModeLocked && c.state.Bound != nil:
		return fmt.Sprintf("View pet #%d", c.state.Bound.PetID)
	case c.state.Mode == ModeEditing && c.state.Bound != nil:
		return fmt.Sprintf("Edit pet #%d", c.state.Bound.PetID)
	default:
		return "New pet"
	}
}

// DefaultValues son los valores de un formulario nuevo: todo vacío y addedDate = hoy.
func (c *FormController) DefaultValues() pets.RawPet {
	return pets.RawPet{AddedDate: pets.DateOf(c.now()).String()}
}

// OpenForCreate muestra el formulario en blanco en modo NEW.
func (c *FormController) OpenForCreate() {
	c.reset()
	c.setValues(c.DefaultValues())
	c.modals.EnableBackdropClosing()
	c.modals.ShowPetModal()
}

// Close vuelve a un Session NEW limpio y oculta el modal. Se puede llamar siempre.
func (c *FormController) Close() {
	c.reset()
	c.modals.EnableBackdropClosing()
	c.modals.HidePetModal()
}

func (c *FormController) reset() {
	c.gen++
	rev := c.state.Revision
	c.state = Session{Mode: ModeNew}
	c.state.Revision = rev + 1
}

// ViewRequest pide la mascota para abrirla en modo LOCKED.
type ViewRequest struct {
	svc   PetService
	PetID int
	gen   int
}

type ViewResult struct {
	PetID int
	Pet   pets.Pet
	Err   error
	gen   int
}

func (r ViewRequest) Do(ctx context.Context) ViewResult {
	p, err := r.svc.GetPet(ctx, r.PetID)
	return ViewResult{PetID: r.PetID, Pet: p, Err: err, gen: r.gen}
}

// BeginView marca Loading. No cambia el modo: si el fetch falla, todo queda como estaba.
func (c *FormController) BeginView(petID int) (ViewRequest, error) {
	if petID <= 0 {
		return ViewRequest{}, fmt.Errorf("view pet: invalid id %d", petID)
	}
	if c.state.Submitting {
		return ViewRequest{}, ErrInvalidTransition
	}
	c.gen++
	c.state.Loading = true
	return ViewRequest{svc: c.svc, PetID: petID, gen: c.gen}, nil
}

// CompleteView devuelve el error remoto (para mostrarlo) o nil.
// Un resultado viejo (hubo Close u otro BeginView después) se descarta.
func (c *FormController) CompleteView(res ViewResult) error {
	if res.gen != c.gen {
		return nil
	}
	c.state.Loading = false

	if res.Err != nil {
		c.log.Warn("get pet failed", map[string]any{"pet_id": res.PetID, "err": res.Err})
		return fmt.Errorf("could not load pet #%d: %w", res.PetID, res.Err)
	}

	c.bind(res.Pet)
	c.modals.ShowPetModal()
	return nil
}

// RequestEdit pasa de LOCKED a EDITING. Mientras se edita, el backdrop no
// cierra el modal; sólo el botón de cierre descarta los cambios.
func (c *FormController) RequestEdit() error {
	if c.state.Mode != ModeLocked || c.state.Bound == nil {
		return ErrInvalidTransition
	}
	c.state.Mode = ModeEditing
	c.state.FieldErrors = nil
	c.state.SubmitErr = nil
	c.modals.DisableBackdropClosing()
	return nil
}

// CancelEdit descarta los cambios y vuelve a LOCKED con la mascota enlazada.
func (c *FormController) CancelEdit() error {
	if c.state.Mode != ModeEditing || c.state.Bound == nil || c.state.Submitting {
		return ErrInvalidTransition
	}
	c.bind(*c.state.Bound)
	return nil
}

// RequestDelete abre la confirmación de borrado para la mascota enlazada.
func (c *FormController) RequestDelete() error {
	if c.state.Mode != ModeLocked || c.state.Bound == nil {
		return ErrInvalidTransition
	}
	c.modals.ShowDeleteModal(c.state.Bound.PetID)
	return nil
}

// BoundPetID devuelve 0 si no hay mascota enlazada.
func (c *FormController) BoundPetID() int {
	if c.state.Bound == nil {
		return 0
	}
	return c.state.Bound.PetID
}

// SubmitRequest lleva la mascota ya validada.
type SubmitRequest struct {
	svc PetService
	Pet pets.Pet
	gen int
}

type SubmitResult struct {
	Pet     pets.Pet
	Created bool
	Err     error
	Refresh RefreshResult
	gen     int
}

// Do es el único lugar donde se decide create vs update.
// El refresh de la tabla va estrictamente después de la mutación.
func (r SubmitRequest) Do(ctx context.Context) SubmitResult {
	res := SubmitResult{Created: r.Pet.IsNew(), gen: r.gen}
	if res.Created {
		res.Pet, res.Err = r.svc.CreatePet(ctx, r.Pet)
	} else {
		res.Pet, res.Err = r.svc.UpdatePet(ctx, r.Pet)
	}
	if res.Err != nil {
		return res
	}
	res.Refresh = RefreshRequest{svc: r.svc}.Do(ctx)
	return res
}

// BeginSubmit valida y arranca el submit.
//   - (nil, nil): ya hay un submit en vuelo, no hace nada.
//   - (nil, *pets.ValidationError): marcadores visibles, no se llama al servicio.
//   - (nil, ErrInvalidTransition): el formulario está bloqueado (usar RequestEdit).
func (c *FormController) BeginSubmit(values pets.RawPet) (*SubmitRequest, error) {
	if c.state.Submitting {
		return nil, nil
	}
	if c.state.Mode == ModeLocked {
		return nil, ErrInvalidTransition
	}

	c.state.FieldErrors = nil
	c.state.SubmitErr = nil

	switch c.state.Mode {
	case ModeEditing:
		if c.state.Bound == nil {
			return nil, ErrInvalidTransition
		}
		values.PetID = strconv.Itoa(c.state.Bound.PetID)
		values.Kind = c.state.Bound.Kind
		values.AddedDate = c.state.Bound.AddedDate.String()
	default:
		values.PetID = ""
	}
	c.state.Values = values

	pet, err := c.validator.Parse(values)
	if err != nil {
		var verr *pets.ValidationError
		if errors.As(err, &verr) {
			c.state.FieldErrors = append([]pets.Field(nil), verr.Fields...)
		}
		return nil, err
	}

	c.state.Submitting = true
	c.modals.DisableBackdropClosing()
	return &SubmitRequest{svc: c.svc, Pet: pet, gen: c.gen}, nil
}

// CompleteSubmit aplica el resultado. La tabla se refresca aunque el
// formulario se haya cerrado mientras tanto.
func (c *FormController) CompleteSubmit(res SubmitResult) {
	if res.Err == nil {
		c.table.Apply(res.Refresh)
	}
	if res.gen != c.gen {
		return
	}

	c.state.Submitting = false

	if res.Err != nil {
		c.log.Warn("save pet failed", map[string]any{"created": res.Created, "err": res.Err})
		c.state.SubmitErr = res.Err
		// en EDITING siguen los cambios sin guardar
		if c.state.Mode != ModeEditing {
			c.modals.EnableBackdropClosing()
		}
		return
	}

	c.log.Info("pet saved", map[string]any{"pet_id": res.Pet.PetID, "created": res.Created})
	c.bind(res.Pet)
}

func (c *FormController) bind(p pets.Pet) {
	bound := p
	c.state.Bound = &bound
	c.state.Mode = ModeLocked
	c.state.FieldErrors = nil
	c.state.SubmitErr = nil
	c.setValues(pets.RawFromPet(p))
	c.modals.EnableBackdropClosing()
}

func (c *FormController) setValues(v pets.RawPet) {
	c.state.Values = v
	c.state.Revision++
}
