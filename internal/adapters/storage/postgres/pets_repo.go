package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-store-admin/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) ListKinds(ctx context.Context) ([]pets.Kind, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT value, display_name
		FROM pet_kinds
		ORDER BY position ASC, value ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Kind, 0)
	for rows.Next() {
		var k pets.Kind
		if err := rows.Scan(&k.Value, &k.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			pet_name, age, kind,
			added_date, notes, health_problems
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING pet_id
	`,
		p.PetName,
		p.Age,
		p.Kind,
		p.AddedDate.Time,
		p.Notes,
		p.HealthProblems,
	)
	if err := row.Scan(&p.PetID); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			pet_name = $2,
			age = $3,
			kind = $4,
			added_date = $5,
			notes = $6,
			health_problems = $7
		WHERE pet_id = $1
	`,
		p.PetID,
		p.PetName,
		p.Age,
		p.Kind,
		p.AddedDate.Time,
		p.Notes,
		p.HealthProblems,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE pet_id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			pet_id, pet_name, age, kind,
			added_date, notes, health_problems
		FROM pets
		WHERE pet_id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			pet_id, pet_name, age, kind,
			added_date, notes, health_problems
		FROM pets
		ORDER BY pet_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var added sql.NullTime
	var notes sql.NullString
	if err := s.Scan(
		&p.PetID,
		&p.PetName,
		&p.Age,
		&p.Kind,
		&added,
		&notes,
		&p.HealthProblems,
	); err != nil {
		return pets.Pet{}, err
	}

	// ojo: added_date es DATE, pgx lo mapea a time.Time midnight UTC
	if added.Valid {
		p.AddedDate = pets.DateOf(added.Time)
	}
	p.Notes = notes.String
	return p, nil
}
