package desk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-store-admin/internal/domain/pets"
)

func seededDesk(t *testing.T) (*Desk, *fakeService) {
	t.Helper()
	svc := newFakeService()
	svc.seed(
		pets.Pet{PetID: 1, PetName: "a", Kind: "CAT"},
		pets.Pet{PetID: 2, PetName: "b", Kind: "DOG"},
	)
	return newReadyDesk(svc), svc
}

func TestDelete_SuccessRefreshesAndHides(t *testing.T) {
	d, svc := seededDesk(t)

	require.NoError(t, d.DeleteRow(1))
	assert.True(t, d.Modals.DeleteModalVisible())
	assert.Equal(t, 1, d.Modals.DeletePetID())

	require.NoError(t, d.ConfirmDelete(context.Background()))

	assert.Equal(t, 1, svc.calls["deletePet"])
	assert.False(t, d.Modals.DeleteModalVisible())
	assert.Equal(t, 1, d.Table.Len())
	row, _ := d.Table.Row(0)
	assert.Equal(t, 2, row.PetID)
}

func TestDelete_FailureStaysOpenWithError(t *testing.T) {
	d, svc := seededDesk(t)
	svc.fail["deletePet"] = errRemote

	require.NoError(t, d.DeleteRow(0))
	err := d.ConfirmDelete(context.Background())

	require.ErrorIs(t, err, errRemote)
	assert.True(t, d.Modals.DeleteModalVisible())
	assert.ErrorIs(t, d.Modals.DeleteErr(), errRemote)
	assert.False(t, d.Modals.Deleting())
	assert.Equal(t, 2, d.Table.Len())
}

func TestDelete_SecondConfirmWhileInFlightIsNoop(t *testing.T) {
	d, svc := seededDesk(t)
	require.NoError(t, d.DeleteRow(0))

	req, ok := d.Modals.BeginDelete()
	require.True(t, ok)
	_, again := d.Modals.BeginDelete()
	assert.False(t, again)

	// mientras está en vuelo no se puede cerrar
	d.Modals.HideDeleteModal()
	assert.True(t, d.Modals.DeleteModalVisible())

	d.CompleteDelete(req.Do(context.Background()))
	assert.Equal(t, 1, svc.calls["deletePet"])
	assert.False(t, d.Modals.DeleteModalVisible())
}

func TestModals_BackdropToggle(t *testing.T) {
	m := NewModals(nil, nil, nil)
	assert.True(t, m.BackdropClosingEnabled())

	m.DisableBackdropClosing()
	assert.False(t, m.BackdropClosingEnabled())

	m.EnableBackdropClosing()
	assert.True(t, m.BackdropClosingEnabled())
}

func TestModals_BeginDeleteWithoutModal(t *testing.T) {
	m := NewModals(nil, nil, nil)
	_, ok := m.BeginDelete()
	assert.False(t, ok)
}
