package desk

import (
	"context"
	"sort"

	"pet-store-admin/internal/domain/pets"
)

// DisplayDateLayout es el formato fijo de addedDate en la tabla.
const DisplayDateLayout = "2006-01-02"

// Row es una fila de la tabla de mascotas.
type Row struct {
	PetID     int
	PetName   string
	AddedDate string
	Kind      string
}

// Table renderiza la lista completa de mascotas; cada Render reemplaza todo.
type Table struct {
	kinds *pets.Kinds
	rows  []Row
	err   error
}

func NewTable(kinds *pets.Kinds) *Table {
	return &Table{kinds: kinds}
}

// Render ordena por PetID descendente y reemplaza las filas.
func (t *Table) Render(list []pets.Pet) []Row {
	sorted := make([]pets.Pet, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PetID > sorted[j].PetID
	})

	rows := make([]Row, 0, len(sorted))
	for _, p := range sorted {
		added := ""
		if !p.AddedDate.IsZero() {
			added = p.AddedDate.Format(DisplayDateLayout)
		}
		rows = append(rows, Row{
			PetID:     p.PetID,
			PetName:   p.PetName,
			AddedDate: added,
			Kind:      t.kinds.Label(p.Kind),
		})
	}

	t.rows = rows
	t.err = nil
	return t.Rows()
}

func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) Row(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[i], true
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Err es el último fallo de refresh (nil si el último refresh fue ok).
// Las filas anteriores se conservan.
func (t *Table) Err() error {
	return t.err
}

// Apply aplica el resultado de un refresh.
func (t *Table) Apply(res RefreshResult) {
	if res.Err != nil {
		t.err = res.Err
		return
	}
	t.Render(res.Pets)
}

// RefreshRequest vuelve a pedir la lista completa.
type RefreshRequest struct {
	svc PetService
}

type RefreshResult struct {
	Pets []pets.Pet
	Err  error
}

func (r RefreshRequest) Do(ctx context.Context) RefreshResult {
	list, err := r.svc.ListPets(ctx)
	return RefreshResult{Pets: list, Err: err}
}
