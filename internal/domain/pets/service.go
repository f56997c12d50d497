package pets

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time

	// validator se arma una vez por catálogo de kinds.
	mu        sync.Mutex
	kinds     []Kind
	validator *Validator
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) ListKinds(ctx context.Context) ([]Kind, error) {
	return s.repo.ListKinds(ctx)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create ignora cualquier PetID entrante: el id lo asigna el repo.
func (s *Service) Create(ctx context.Context, in Pet) (Pet, error) {
	in = normalize(in)
	in.PetID = 0
	if in.AddedDate.IsZero() {
		in.AddedDate = DateOf(s.now())
	}

	if err := s.check(ctx, in); err != nil {
		return Pet{}, err
	}
	return s.repo.Create(ctx, in)
}

// Update reemplaza el perfil. kind y addedDate quedan fijos desde la creación.
func (s *Service) Update(ctx context.Context, in Pet) (Pet, error) {
	if in.PetID <= 0 {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, in.PetID)
	if err != nil {
		return Pet{}, err
	}

	in = normalize(in)
	in.Kind = current.Kind
	in.AddedDate = current.AddedDate

	if err := s.check(ctx, in); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return Pet{}, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) check(ctx context.Context, p Pet) error {
	val, err := s.validatorFor(ctx)
	if err != nil {
		return err
	}
	if err := val.Check(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (s *Service) validatorFor(ctx context.Context) (*Validator, error) {
	kinds, err := s.repo.ListKinds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load kinds: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.validator == nil || !slices.Equal(s.kinds, kinds) {
		s.kinds = slices.Clone(kinds)
		s.validator = NewValidator(NewKinds(kinds))
	}
	return s.validator, nil
}

func normalize(p Pet) Pet {
	p.PetName = strings.TrimSpace(p.PetName)
	p.Kind = strings.TrimSpace(p.Kind)
	p.Notes = strings.TrimSpace(p.Notes)
	return p
}
