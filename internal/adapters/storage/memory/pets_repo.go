package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-store-admin/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]pets.Pet
	kinds  []pets.Kind
}

// NewPetRepo arranca vacío con el catálogo de kinds indicado
// (si kinds es nil, usa pets.DefaultKinds()).
func NewPetRepo(kinds []pets.Kind) pets.Repository {
	if kinds == nil {
		kinds = pets.DefaultKinds()
	}
	return &petRepo{
		nextID: 1,
		byID:   make(map[int]pets.Pet),
		kinds:  kinds,
	}
}

func (r *petRepo) ListKinds(ctx context.Context) ([]pets.Kind, error) {
	out := make([]pets.Kind, len(r.kinds))
	copy(out, r.kinds)
	return out, nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.PetID != 0 {
		return pets.Pet{}, errors.New("pet id is assigned by the repository")
	}
	p.PetID = r.nextID
	r.nextID++
	r.byID[p.PetID] = p
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.PetID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden estable por id asc (el front ordena como quiera)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PetID < out[j].PetID
	})

	return out, nil
}
