package dashboard

import (
	"context"
	"errors"
	"fmt"

	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"
	"license-management/internal/domain/sharedstate"
	"license-management/internal/platform/logger"
	"license-management/internal/ports/sharedstore"
)

// Service compone la vista: licencias + feed + store compartido.
type Service struct {
	licenses *licenses.Service
	activity *activity.Service
	shared   *sharedstate.Service
	log      logger.Logger
}

func NewService(lic *licenses.Service, act *activity.Service, shared *sharedstate.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		licenses: lic,
		activity: act,
		shared:   shared,
		log:      log,
	}
}

// Build arma la vista completa. Si el store compartido no responde, la página
// igual se renderiza con contador/usuarios marcados como no disponibles.
func (s *Service) Build(ctx context.Context) (View, error) {
	rows, metrics, err := s.licenses.Rows(ctx)
	if err != nil {
		return View{}, fmt.Errorf("dashboard licenses: %w", err)
	}

	feed, err := s.activity.Feed(ctx)
	if err != nil {
		return View{}, fmt.Errorf("dashboard activity: %w", err)
	}

	v := View{
		Header:     Header{Title: PageTitle, Description: PageDescription},
		Metrics:    metrics,
		WindowDays: s.licenses.WindowDays(),
		Licenses:   rows,
		Activity:   feed,
	}

	if c, err := s.shared.Counter(ctx); err != nil {
		s.log.Warn("shared counter unavailable", logger.Fields{"err": err})
	} else {
		v.Counter = SharedCounter{Value: c.Value, Available: true}
	}

	if u, err := s.shared.Users(ctx); err != nil {
		s.log.Warn("shared users unavailable", logger.Fields{"err": err})
	} else {
		v.Users = SharedUsers{TotalCount: u.TotalCount, Available: true}
	}

	v.Stats = statCards(metrics, v.Counter)
	return v, nil
}

// Action es uno de los botones de la página.
type Action string

const (
	ActionIncrement  Action = "increment"
	ActionDecrement  Action = "decrement"
	ActionReset      Action = "reset"
	ActionAddOfficer Action = "add-officer"
)

var ErrUnknownAction = errors.New("unknown dashboard action")

// Apply ejecuta la acción de un botón contra el store compartido.
func (s *Service) Apply(ctx context.Context, a Action) error {
	var err error
	switch a {
	case ActionIncrement:
		_, err = s.shared.Increment(ctx)
	case ActionDecrement:
		_, err = s.shared.Decrement(ctx)
	case ActionReset:
		_, err = s.shared.Reset(ctx)
	case ActionAddOfficer:
		var u sharedstore.User
		u, _, err = s.shared.AddLicenseOfficer(ctx)
		// con id el dispatch ya se aplicó; solo falló la lectura posterior
		if err != nil && u.ID != "" {
			s.log.Warn("shared users unavailable after add", logger.Fields{"user_id": u.ID, "err": err})
			return nil
		}
	default:
		return ErrUnknownAction
	}
	if err != nil {
		s.log.Warn("dashboard action failed", logger.Fields{"action": string(a), "err": err})
	}
	return err
}
