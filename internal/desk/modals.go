package desk

import (
	"context"

	"pet-store-admin/internal/platform/logger"
)

// Modals lleva la visibilidad del modal de mascota y del modal de borrado,
// y si el "backdrop" (esc en la TUI) puede cerrarlos.
type Modals struct {
	svc   PetService
	table *Table
	log   logger.Logger

	petVisible    bool
	deleteVisible bool
	deletePetID   int
	deleting      bool
	deleteErr     error
	backdrop      bool
}

func NewModals(svc PetService, table *Table, log logger.Logger) *Modals {
	if log == nil {
		log = logger.Nop()
	}
	return &Modals{
		svc:      svc,
		table:    table,
		log:      log,
		backdrop: true,
	}
}

func (m *Modals) ShowPetModal()          { m.petVisible = true }
func (m *Modals) HidePetModal()          { m.petVisible = false }
func (m *Modals) PetModalVisible() bool  { return m.petVisible }
func (m *Modals) EnableBackdropClosing() { m.backdrop = true }

// DisableBackdropClosing se usa durante la edición y mientras hay un submit en vuelo.
func (m *Modals) DisableBackdropClosing()      { m.backdrop = false }
func (m *Modals) BackdropClosingEnabled() bool { return m.backdrop }

// ShowDeleteModal abre la confirmación de borrado para petID.
func (m *Modals) ShowDeleteModal(petID int) {
	if m.deleting {
		return
	}
	m.deleteVisible = true
	m.deletePetID = petID
	m.deleteErr = nil
}

// HideDeleteModal no hace nada mientras el borrado está en vuelo.
func (m *Modals) HideDeleteModal() {
	if m.deleting {
		return
	}
	m.deleteVisible = false
	m.deletePetID = 0
	m.deleteErr = nil
}

func (m *Modals) DeleteModalVisible() bool { return m.deleteVisible }
func (m *Modals) DeletePetID() int         { return m.deletePetID }
func (m *Modals) Deleting() bool           { return m.deleting }
func (m *Modals) DeleteErr() error         { return m.deleteErr }

// DeleteRequest borra y, si sale bien, vuelve a pedir la lista.
type DeleteRequest struct {
	svc   PetService
	PetID int
}

type DeleteResult struct {
	PetID   int
	Err     error
	Refresh RefreshResult
}

func (r DeleteRequest) Do(ctx context.Context) DeleteResult {
	if err := r.svc.DeletePet(ctx, r.PetID); err != nil {
		return DeleteResult{PetID: r.PetID, Err: err}
	}
	return DeleteResult{
		PetID:   r.PetID,
		Refresh: RefreshRequest{svc: r.svc}.Do(ctx),
	}
}

// BeginDelete confirma el borrado. ok=false si no hay modal abierto
// o ya hay un borrado en vuelo.
func (m *Modals) BeginDelete() (DeleteRequest, bool) {
	if !m.deleteVisible || m.deleting || m.deletePetID <= 0 {
		return DeleteRequest{}, false
	}
	m.deleting = true
	m.deleteErr = nil
	return DeleteRequest{svc: m.svc, PetID: m.deletePetID}, true
}

// CompleteDelete: ok => refresca la tabla y se oculta; error => queda abierto con el error.
func (m *Modals) CompleteDelete(res DeleteResult) {
	m.deleting = false

	if res.Err != nil {
		m.log.Warn("delete pet failed", map[string]any{"pet_id": res.PetID, "err": res.Err})
		if m.deleteVisible && m.deletePetID == res.PetID {
			m.deleteErr = res.Err
		}
		return
	}

	m.table.Apply(res.Refresh)
	m.HideDeleteModal()
}
