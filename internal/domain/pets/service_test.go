package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int
	byID   map[int]Pet
	kinds  []Kind
}

func newTestRepo() *testRepo {
	return &testRepo{nextID: 1, byID: map[int]Pet{}}
}

func (r *testRepo) ListKinds(ctx context.Context) ([]Kind, error) {
	if r.kinds != nil {
		return r.kinds, nil
	}
	return DefaultKinds(), nil
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	p.PetID = r.nextID
	r.nextID++
	r.byID[p.PetID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.PetID]; !ok {
		return ErrNotFound
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AssignsIDAndIgnoresIncoming(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), Pet{PetID: 99, PetName: " Rex ", Age: 3, Kind: "DOG", AddedDate: NewDate(2024, 1, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PetID != 1 {
		t.Fatalf("expected petId 1, got %d", p.PetID)
	}
	if p.PetName != "Rex" {
		t.Fatalf("expected trimmed name, got %q", p.PetName)
	}
}

func TestService_Create_DefaultsAddedDateToToday(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }

	p, err := svc.Create(context.Background(), Pet{PetName: "Rex", Kind: "DOG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.AddedDate.String(); got != "2025-12-22" {
		t.Fatalf("expected addedDate 2025-12-22, got %s", got)
	}
}

func TestService_Create_RejectsInvalid(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), Pet{PetName: "", Age: -1, Kind: "DRAGON", AddedDate: NewDate(2024, 1, 1)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, f := range []Field{FieldPetName, FieldAge, FieldKind} {
		if !verr.Has(f) {
			t.Fatalf("expected %s in %v", f, verr.Fields)
		}
	}
}

func TestService_Update_KeepsKindAndAddedDate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Pet{PetName: "Kit", Age: 1, Kind: "CAT", AddedDate: NewDate(2023, 5, 1)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), Pet{
		PetID:     created.PetID,
		PetName:   "Kitty",
		Age:       2,
		Kind:      "DOG",
		AddedDate: NewDate(2020, 1, 1),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PetName != "Kitty" || updated.Age != 2 {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if updated.Kind != "CAT" || updated.AddedDate.String() != "2023-05-01" {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
	if repo.byID[created.PetID].PetName != "Kitty" {
		t.Fatalf("repo not updated")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), Pet{PetID: 5, PetName: "x", Kind: "DOG"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = svc.Update(context.Background(), Pet{PetName: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing id, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo())

	p, _ := svc.Create(context.Background(), Pet{PetName: "Kit", Kind: "CAT", AddedDate: NewDate(2024, 1, 1)})
	if err := svc.Delete(context.Background(), p.PetID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), p.PetID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), p.PetID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestService_ValidatorFollowsKindCatalog(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.validatorFor(ctx)
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	again, _ := svc.validatorFor(ctx)
	if first != again {
		t.Fatalf("expected the validator to be reused while kinds are unchanged")
	}

	if _, err := svc.Create(ctx, Pet{PetName: "Nemo", Kind: "FISH", AddedDate: NewDate(2024, 1, 1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown kind, got %v", err)
	}

	repo.kinds = append(DefaultKinds(), Kind{Value: "FISH", DisplayName: "Fish"})
	if _, err := svc.Create(ctx, Pet{PetName: "Nemo", Kind: "FISH", AddedDate: NewDate(2024, 1, 1)}); err != nil {
		t.Fatalf("expected FISH to be accepted after catalog change, got %v", err)
	}
	rebuilt, _ := svc.validatorFor(ctx)
	if rebuilt == first {
		t.Fatalf("expected a new validator after the catalog changed")
	}
}
