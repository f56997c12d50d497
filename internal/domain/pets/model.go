package pets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout es el formato de fecha en el wire y en los inputs del formulario.
const DateLayout = "2006-01-02"

// Pet representa el registro de una mascota tal como lo expone el Pet Service.
// PetID == 0 significa "borrador aún no persistido".
type Pet struct {
	PetID          int    `json:"petId"`
	PetName        string `json:"petName"`
	Age            int    `json:"age"`
	Kind           string `json:"kind"`
	AddedDate      Date   `json:"addedDate"`
	Notes          string `json:"notes"`
	HealthProblems bool   `json:"healthProblems"`
}

// IsNew es la única regla create-vs-update: sin id (o 0) => create.
func (p Pet) IsNew() bool {
	return p.PetID <= 0
}

// Kind es una entrada del catálogo de tipos de mascota.
type Kind struct {
	Value       string `json:"value"`
	DisplayName string `json:"displayName"`
}

// Date es una fecha de calendario sin hora.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca t a su fecha (en la zona de t).
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate acepta YYYY-MM-DD y también timestamps RFC3339 (se queda con la fecha).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	// Algunos backends mandan "2024-01-01T00:00:00" sin zona.
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		if t, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("addedDate must be a string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
