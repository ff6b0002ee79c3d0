package sharedstore

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidAction = errors.New("invalid action payload")
	ErrUnavailable   = errors.New("shared store unavailable")
)

// CounterState es lo que devuelve el selector del contador del host.
type CounterState struct {
	Value int `json:"value"`
}

// UsersState es lo que devuelve el selector de usuarios del host.
type UsersState struct {
	TotalCount int `json:"totalCount"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ActionType string

const (
	ActionIncrement ActionType = "counter/increment"
	ActionDecrement ActionType = "counter/decrement"
	ActionReset     ActionType = "counter/reset"
	ActionAddUser   ActionType = "users/addUser"
)

// Action replica el shape {type, payload} de las acciones del host.
type Action struct {
	Type    ActionType `json:"type"`
	Payload *User      `json:"payload,omitempty"`
}

func Increment() Action { return Action{Type: ActionIncrement} }
func Decrement() Action { return Action{Type: ActionDecrement} }
func Reset() Action     { return Action{Type: ActionReset} }

func AddUser(u User) Action {
	return Action{Type: ActionAddUser, Payload: &u}
}

func (a Action) Validate() error {
	switch a.Type {
	case ActionIncrement, ActionDecrement, ActionReset:
		return nil
	case ActionAddUser:
		if a.Payload == nil || strings.TrimSpace(a.Payload.ID) == "" {
			return ErrInvalidAction
		}
		return nil
	default:
		return ErrUnknownAction
	}
}

// Selector es el lado de lectura del store compartido.
type Selector interface {
	Counter(ctx context.Context) (CounterState, error)
	Users(ctx context.Context) (UsersState, error)
}

// Dispatcher aplica una acción de forma atómica. El store es el único writer.
type Dispatcher interface {
	Dispatch(ctx context.Context, a Action) error
}

// Store se inyecta en la vista; nunca es un singleton de paquete.
type Store interface {
	Selector
	Dispatcher
}
