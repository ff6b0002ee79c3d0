package memory

import (
	"context"
	"sync"

	"license-management/internal/ports/sharedstore"
)

// SharedStore hace de store del host en modo standalone/dev.
// Un único mutex serializa los dispatch: un solo writer, lectura consistente después de escribir.
type SharedStore struct {
	mu      sync.RWMutex
	counter int
	users   []sharedstore.User
	byID    map[string]int
}

func NewSharedStore() *SharedStore {
	return &SharedStore{
		byID: make(map[string]int),
	}
}

func (s *SharedStore) Counter(ctx context.Context) (sharedstore.CounterState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sharedstore.CounterState{Value: s.counter}, nil
}

func (s *SharedStore) Users(ctx context.Context) (sharedstore.UsersState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sharedstore.UsersState{TotalCount: len(s.users)}, nil
}

// ListUsers devuelve una copia de los usuarios cargados.
func (s *SharedStore) ListUsers() []sharedstore.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]sharedstore.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *SharedStore) Dispatch(ctx context.Context, a sharedstore.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch a.Type {
	case sharedstore.ActionIncrement:
		s.counter++
	case sharedstore.ActionDecrement:
		s.counter--
	case sharedstore.ActionReset:
		s.counter = 0
	case sharedstore.ActionAddUser:
		u := *a.Payload
		// mismo id = reemplazo, no duplicado
		if i, ok := s.byID[u.ID]; ok {
			s.users[i] = u
			return nil
		}
		s.byID[u.ID] = len(s.users)
		s.users = append(s.users, u)
	default:
		return sharedstore.ErrUnknownAction
	}
	return nil
}
