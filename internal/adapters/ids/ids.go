package ids

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// UUID genera ids a partir de uuid v4. Con Short=true usa los primeros 8 caracteres hex,
// suficiente para nombres legibles ("License Officer 1a2b3c4d").
type UUID struct {
	Short bool
}

func (g UUID) NewID() string {
	id := uuid.NewString()
	if g.Short {
		return strings.SplitN(id, "-", 2)[0]
	}
	return id
}

// Sequence es un contador monótono (determinístico para tests).
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

func (s *Sequence) NewID() string {
	return s.Prefix + strconv.FormatInt(s.n.Add(1), 10)
}
