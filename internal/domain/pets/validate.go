package pets

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifica un input del formulario. Los de validación también
// identifican el marcador de error que se muestra junto al input.
type Field string

const (
	FieldPetName        Field = "petName"
	FieldAge            Field = "age"
	FieldKind           Field = "kind"
	FieldAddedDate      Field = "addedDate"
	FieldNotes          Field = "notes"
	FieldHealthProblems Field = "healthProblems"
)

// FormFields en el orden en que se muestran.
var FormFields = []Field{
	FieldPetName,
	FieldAge,
	FieldKind,
	FieldAddedDate,
	FieldNotes,
	FieldHealthProblems,
}

// RawPet son los valores tal cual vienen de un formulario (todo string salvo el checkbox).
type RawPet struct {
	PetID          string `field:"petId"`
	PetName        string `field:"petName" validate:"required"`
	Age            string `field:"age" validate:"required,number"`
	Kind           string `field:"kind" validate:"required,petkind"`
	AddedDate      string `field:"addedDate" validate:"required,datetime=2006-01-02"`
	Notes          string `field:"notes"`
	HealthProblems bool   `field:"healthProblems"`
}

// RawFromPet es la vista "formulario" de un Pet ya tipado.
func RawFromPet(p Pet) RawPet {
	raw := RawPet{
		PetName:        p.PetName,
		Age:            strconv.Itoa(p.Age),
		Kind:           p.Kind,
		AddedDate:      p.AddedDate.String(),
		Notes:          p.Notes,
		HealthProblems: p.HealthProblems,
	}
	if p.PetID > 0 {
		raw.PetID = strconv.Itoa(p.PetID)
	}
	return raw
}

// ValidationError agrupa los campos inválidos; nunca llega al servicio remoto.
type ValidationError struct {
	Fields []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f))
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

// Has responde si f está entre los campos inválidos.
func (e *ValidationError) Has(f Field) bool {
	for _, x := range e.Fields {
		if x == f {
			return true
		}
	}
	return false
}

const kindTag = "petkind"

// Validator valida mascotas contra el catálogo de kinds cargado.
type Validator struct {
	v     *validator.Validate
	kinds *Kinds
}

func NewValidator(kinds *Kinds) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	if err := v.RegisterValidation(kindTag, func(fl validator.FieldLevel) bool {
		return kinds.Has(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("pets: register %s validation: %v", kindTag, err))
	}
	return &Validator{v: v, kinds: kinds}
}

// Validate devuelve los campos inválidos (vacío si todo ok), en orden de formulario.
func (val *Validator) Validate(raw RawPet) []Field {
	raw = trimRaw(raw)

	bad := map[Field]bool{}
	if err := val.v.Struct(raw); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			// InvalidValidationError: bug de programación, no del usuario.
			panic(err)
		}
		for _, fe := range fieldErrs {
			bad[Field(fe.Field())] = true
		}
	}
	// "number" deja pasar valores que no entran en un int.
	if !bad[FieldAge] {
		if _, err := strconv.Atoi(raw.Age); err != nil {
			bad[FieldAge] = true
		}
	}

	out := make([]Field, 0, len(bad))
	for _, f := range FormFields {
		if bad[f] {
			out = append(out, f)
		}
	}
	return out
}

// Parse valida y convierte a Pet. El id se toma del raw (0 si vacío o inválido).
func (val *Validator) Parse(raw RawPet) (Pet, error) {
	if fields := val.Validate(raw); len(fields) > 0 {
		return Pet{}, &ValidationError{Fields: fields}
	}
	raw = trimRaw(raw)

	age, _ := strconv.Atoi(raw.Age)
	added, _ := ParseDate(raw.AddedDate)
	id, err := strconv.Atoi(raw.PetID)
	if err != nil || id < 0 {
		id = 0
	}

	return Pet{
		PetID:          id,
		PetName:        raw.PetName,
		Age:            age,
		Kind:           raw.Kind,
		AddedDate:      added,
		Notes:          raw.Notes,
		HealthProblems: raw.HealthProblems,
	}, nil
}

// Check valida un Pet ya tipado (lado servidor).
func (val *Validator) Check(p Pet) error {
	if fields := val.Validate(RawFromPet(p)); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func trimRaw(raw RawPet) RawPet {
	raw.PetID = strings.TrimSpace(raw.PetID)
	raw.PetName = strings.TrimSpace(raw.PetName)
	raw.Age = strings.TrimSpace(raw.Age)
	raw.Kind = strings.TrimSpace(raw.Kind)
	raw.AddedDate = strings.TrimSpace(raw.AddedDate)
	raw.Notes = strings.TrimSpace(raw.Notes)
	return raw
}
