package pets

import "context"

type Repository interface {
	ListKinds(ctx context.Context) ([]Kind, error)

	// Create asigna el PetID y devuelve el registro persistido.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
}
