package ids

// Generator produce identificadores para payloads nuevos (p.ej. usuarios del store compartido).
type Generator interface {
	NewID() string
}

// Func adapta una función a Generator.
type Func func() string

func (f Func) NewID() string { return f() }
