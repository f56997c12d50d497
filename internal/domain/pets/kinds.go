package pets

// Kinds es el lookup value -> displayName del catálogo.
// Se construye una vez en el bootstrap y no se modifica después;
// no expone setters, así que se puede compartir por referencia.
type Kinds struct {
	order  []Kind
	labels map[string]string
}

func NewKinds(items []Kind) *Kinds {
	k := &Kinds{
		order:  make([]Kind, 0, len(items)),
		labels: make(map[string]string, len(items)),
	}
	for _, it := range items {
		if it.Value == "" {
			continue
		}
		if _, dup := k.labels[it.Value]; dup {
			continue
		}
		k.order = append(k.order, it)
		k.labels[it.Value] = it.DisplayName
	}
	return k
}

// Label devuelve "" si el value no existe (nunca falla).
func (k *Kinds) Label(value string) string {
	if k == nil {
		return ""
	}
	return k.labels[value]
}

func (k *Kinds) Has(value string) bool {
	if k == nil {
		return false
	}
	_, ok := k.labels[value]
	return ok
}

// All devuelve una copia en el orden del catálogo.
func (k *Kinds) All() []Kind {
	if k == nil {
		return nil
	}
	out := make([]Kind, len(k.order))
	copy(out, k.order)
	return out
}

func (k *Kinds) Len() int {
	if k == nil {
		return 0
	}
	return len(k.order)
}

// DefaultKinds es el catálogo con el que arranca el Pet Service in-memory
// (y el seed de la migración de Postgres).
func DefaultKinds() []Kind {
	return []Kind{
		{Value: "DOG", DisplayName: "Dog"},
		{Value: "CAT", DisplayName: "Cat"},
		{Value: "PARROT", DisplayName: "Parrot"},
		{Value: "HAMSTER", DisplayName: "Hamster"},
		{Value: "RABBIT", DisplayName: "Rabbit"},
		{Value: "FISH", DisplayName: "Fish"},
	}
}
