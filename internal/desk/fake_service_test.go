package desk

import (
	"context"
	"errors"
	"time"

	"pet-store-admin/internal/domain/pets"
)

var errRemote = errors.New("remote: boom")

// fakeService es un Remote Pet Service en memoria que cuenta llamadas.
type fakeService struct {
	kinds  []pets.Kind
	byID   map[int]pets.Pet
	nextID int

	fail  map[string]error
	calls map[string]int
}

func newFakeService() *fakeService {
	return &fakeService{
		kinds: []pets.Kind{
			{Value: "DOG", DisplayName: "Dog"},
			{Value: "CAT", DisplayName: "Cat"},
		},
		byID:   map[int]pets.Pet{},
		nextID: 1,
		fail:   map[string]error{},
		calls:  map[string]int{},
	}
}

func (f *fakeService) seed(list ...pets.Pet) {
	for _, p := range list {
		f.byID[p.PetID] = p
		if p.PetID >= f.nextID {
			f.nextID = p.PetID + 1
		}
	}
}

func (f *fakeService) hit(op string) error {
	f.calls[op]++
	return f.fail[op]
}

func (f *fakeService) ListKinds(ctx context.Context) ([]pets.Kind, error) {
	if err := f.hit("listKinds"); err != nil {
		return nil, err
	}
	return f.kinds, nil
}

func (f *fakeService) ListPets(ctx context.Context) ([]pets.Pet, error) {
	if err := f.hit("listPets"); err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeService) GetPet(ctx context.Context, id int) (pets.Pet, error) {
	if err := f.hit("getPet"); err != nil {
		return pets.Pet{}, err
	}
	p, ok := f.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (f *fakeService) CreatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := f.hit("createPet"); err != nil {
		return pets.Pet{}, err
	}
	p.PetID = f.nextID
	f.nextID++
	f.byID[p.PetID] = p
	return p, nil
}

func (f *fakeService) UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := f.hit("updatePet"); err != nil {
		return pets.Pet{}, err
	}
	if _, ok := f.byID[p.PetID]; !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	f.byID[p.PetID] = p
	return p, nil
}

func (f *fakeService) DeletePet(ctx context.Context, id int) error {
	if err := f.hit("deletePet"); err != nil {
		return err
	}
	if _, ok := f.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var testToday = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

// newReadyDesk arranca un Desk sobre svc con "hoy" fijo.
func newReadyDesk(svc *fakeService) *Desk {
	d := New(svc, nil)
	if err := d.Start(context.Background()); err != nil {
		panic(err)
	}
	d.Form.now = func() time.Time { return testToday }
	return d
}

func rex() pets.RawPet {
	return pets.RawPet{
		PetName:   "Rex",
		Age:       "3",
		Kind:      "DOG",
		AddedDate: "2024-01-01",
	}
}
