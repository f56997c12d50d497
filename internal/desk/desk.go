// Package desk es el front end de mascotas sin superficie de display:
// el controller del formulario, la tabla y los modales, más el wiring que los compone.
// La TUI (internal/tui) es solo una proyección de este estado.
package desk

import (
	"context"
	"errors"
	"fmt"

	"pet-store-admin/internal/domain/pets"
	"pet-store-admin/internal/platform/logger"
)

// PetService es el Remote Pet Service tal como lo consume el desk.
// Cualquier error es un RemoteFailure opaco.
type PetService interface {
	ListKinds(ctx context.Context) ([]pets.Kind, error)
	ListPets(ctx context.Context) ([]pets.Pet, error)
	GetPet(ctx context.Context, id int) (pets.Pet, error)
	CreatePet(ctx context.Context, p pets.Pet) (pets.Pet, error)
	UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error)
	DeletePet(ctx context.Context, id int) error
}

var ErrNotReady = errors.New("pet kinds not loaded yet")

// Desk compone Table, Modals y FormController una vez cargados los kinds.
type Desk struct {
	svc PetService
	log logger.Logger

	kinds  *pets.Kinds
	Table  *Table
	Modals *Modals
	Form   *FormController

	booting bool
	status  error
}

func New(svc PetService, log logger.Logger) *Desk {
	if log == nil {
		log = logger.Nop()
	}
	return &Desk{svc: svc, log: log}
}

// Ready es true cuando el bootstrap cargó los kinds y los componentes existen.
func (d *Desk) Ready() bool { return d.kinds != nil }

func (d *Desk) Booting() bool { return d.booting }

func (d *Desk) Kinds() *pets.Kinds { return d.kinds }

// Status es el último fallo mostrado fuera del formulario (bootstrap, refresh, view).
func (d *Desk) Status() error { return d.status }

func (d *Desk) ClearStatus() { d.status = nil }

// BootstrapRequest carga los kinds y la lista inicial.
type BootstrapRequest struct {
	svc PetService
}

type BootstrapResult struct {
	Kinds   []pets.Kind
	Err     error
	Refresh RefreshResult
}

func (r BootstrapRequest) Do(ctx context.Context) BootstrapResult {
	kinds, err := r.svc.ListKinds(ctx)
	if err != nil {
		return BootstrapResult{Err: err}
	}
	return BootstrapResult{
		Kinds:   kinds,
		Refresh: RefreshRequest{svc: r.svc}.Do(ctx),
	}
}

// BeginBootstrap: ok=false si ya está listo o cargando.
// Los kinds se cargan una sola vez por sesión.
func (d *Desk) BeginBootstrap() (BootstrapRequest, bool) {
	if d.Ready() || d.booting {
		return BootstrapRequest{}, false
	}
	d.booting = true
	d.status = nil
	return BootstrapRequest{svc: d.svc}, true
}

func (d *Desk) CompleteBootstrap(res BootstrapResult) error {
	d.booting = false
	if res.Err != nil {
		d.log.Error("load pet kinds failed", map[string]any{"err": res.Err})
		d.status = fmt.Errorf("could not load pet kinds: %w", res.Err)
		return d.status
	}

	d.kinds = pets.NewKinds(res.Kinds)
	d.Table = NewTable(d.kinds)
	d.Modals = NewModals(d.svc, d.Table, d.log.With(map[string]any{"component": "modals"}))
	d.Form = NewFormController(d.svc, d.kinds, d.Modals, d.Table, d.log)

	d.log.Info("desk ready", map[string]any{"kinds": d.kinds.Len()})
	return d.applyRefresh(res.Refresh)
}

func (d *Desk) BeginRefresh() (RefreshRequest, error) {
	if !d.Ready() {
		return RefreshRequest{}, ErrNotReady
	}
	return RefreshRequest{svc: d.svc}, nil
}

func (d *Desk) CompleteRefresh(res RefreshResult) error {
	return d.applyRefresh(res)
}

func (d *Desk) applyRefresh(res RefreshResult) error {
	d.Table.Apply(res)
	if res.Err != nil {
		d.log.Warn("list pets failed", map[string]any{"err": res.Err})
		d.status = fmt.Errorf("could not load pets: %w", res.Err)
		return d.status
	}
	return nil
}

// ViewRow es la acción "View/Edit" de la fila i.
func (d *Desk) ViewRow(i int) (ViewRequest, error) {
	if !d.Ready() {
		return ViewRequest{}, ErrNotReady
	}
	row, ok := d.Table.Row(i)
	if !ok {
		return ViewRequest{}, fmt.Errorf("no row %d", i)
	}
	d.status = nil
	return d.Form.BeginView(row.PetID)
}

func (d *Desk) CompleteView(res ViewResult) error {
	if err := d.Form.CompleteView(res); err != nil {
		d.status = err
		return err
	}
	return nil
}

// DeleteRow es la acción "Delete" de la fila i: abre la confirmación.
func (d *Desk) DeleteRow(i int) error {
	if !d.Ready() {
		return ErrNotReady
	}
	row, ok := d.Table.Row(i)
	if !ok {
		return fmt.Errorf("no row %d", i)
	}
	d.Modals.ShowDeleteModal(row.PetID)
	return nil
}

// CompleteDelete cierra además el formulario si mostraba la mascota borrada.
func (d *Desk) CompleteDelete(res DeleteResult) {
	d.Modals.CompleteDelete(res)
	if res.Err != nil {
		return
	}
	if res.Refresh.Err != nil {
		d.status = fmt.Errorf("could not load pets: %w", res.Refresh.Err)
	}
	if d.Form.BoundPetID() == res.PetID {
		d.Form.Close()
	}
}

// CompleteSubmit aplica el resultado al formulario y deja en el status un
// refresh fallido posterior al guardado.
func (d *Desk) CompleteSubmit(res SubmitResult) {
	d.Form.CompleteSubmit(res)
	if res.Err == nil && res.Refresh.Err != nil {
		d.log.Warn("list pets failed", map[string]any{"err": res.Refresh.Err})
		d.status = fmt.Errorf("could not load pets: %w", res.Refresh.Err)
	}
}

// Close cierra el modal de mascota (y la confirmación de borrado si no está en vuelo).
func (d *Desk) Close() {
	if !d.Ready() {
		return
	}
	d.Modals.HideDeleteModal()
	d.Form.Close()
}

// Las variantes síncronas encadenan Begin, Do y Complete en la misma goroutine.

func (d *Desk) Start(ctx context.Context) error {
	req, ok := d.BeginBootstrap()
	if !ok {
		return nil
	}
	return d.CompleteBootstrap(req.Do(ctx))
}

func (d *Desk) Refresh(ctx context.Context) error {
	req, err := d.BeginRefresh()
	if err != nil {
		return err
	}
	return d.CompleteRefresh(req.Do(ctx))
}

// OpenForView abre la mascota petID en modo LOCKED.
func (d *Desk) OpenForView(ctx context.Context, petID int) error {
	if !d.Ready() {
		return ErrNotReady
	}
	req, err := d.Form.BeginView(petID)
	if err != nil {
		return err
	}
	return d.CompleteView(req.Do(ctx))
}

// Submit devuelve el error de validación o el remoto (también quedan en el Session).
func (d *Desk) Submit(ctx context.Context, values pets.RawPet) error {
	if !d.Ready() {
		return ErrNotReady
	}
	req, err := d.Form.BeginSubmit(values)
	if err != nil || req == nil {
		return err
	}
	res := req.Do(ctx)
	d.CompleteSubmit(res)
	return res.Err
}

func (d *Desk) ConfirmDelete(ctx context.Context) error {
	if !d.Ready() {
		return ErrNotReady
	}
	req, ok := d.Modals.BeginDelete()
	if !ok {
		return nil
	}
	res := req.Do(ctx)
	d.CompleteDelete(res)
	return res.Err
}
