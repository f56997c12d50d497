package desk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pet-store-admin/internal/domain/pets"
)

func TestTable_RenderOrdersByIDDescending(t *testing.T) {
	tbl := NewTable(pets.NewKinds([]pets.Kind{{Value: "DOG", DisplayName: "Dog"}}))

	rows := tbl.Render([]pets.Pet{
		{PetID: 2, PetName: "b", Kind: "DOG", AddedDate: pets.NewDate(2024, 1, 2)},
		{PetID: 10, PetName: "c", Kind: "DOG", AddedDate: pets.NewDate(2024, 1, 3)},
		{PetID: 1, PetName: "a", Kind: "DOG", AddedDate: pets.NewDate(2024, 1, 1)},
	})

	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PetID)
	}
	assert.Equal(t, []int{10, 2, 1}, ids)
	assert.Equal(t, "2024-01-03", rows[0].AddedDate)
}

func TestTable_UnknownKindRendersEmpty(t *testing.T) {
	tbl := NewTable(pets.NewKinds(nil))

	rows := tbl.Render([]pets.Pet{{PetID: 1, PetName: "x", Kind: "UNICORN"}})

	assert.Equal(t, []Row{{PetID: 1, PetName: "x"}}, rows)
}

func TestTable_RenderReplacesRows(t *testing.T) {
	tbl := NewTable(pets.NewKinds(nil))
	tbl.Render([]pets.Pet{{PetID: 1}, {PetID: 2}})
	tbl.Render([]pets.Pet{{PetID: 3}})

	assert.Equal(t, 1, tbl.Len())
	_, ok := tbl.Row(1)
	assert.False(t, ok)
}

func TestTable_ApplyFailureKeepsRows(t *testing.T) {
	tbl := NewTable(pets.NewKinds(nil))
	tbl.Render([]pets.Pet{{PetID: 1}})

	boom := errors.New("down")
	tbl.Apply(RefreshResult{Err: boom})
	assert.ErrorIs(t, tbl.Err(), boom)
	assert.Equal(t, 1, tbl.Len())

	tbl.Apply(RefreshResult{Pets: []pets.Pet{{PetID: 1}, {PetID: 2}}})
	assert.NoError(t, tbl.Err())
	assert.Equal(t, 2, tbl.Len())
}
