package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"license-management/internal/adapters/fixtures"
	adids "license-management/internal/adapters/ids"
	mem "license-management/internal/adapters/storage/memory"
	pg "license-management/internal/adapters/storage/postgres"
	_ "license-management/internal/docs"
	"license-management/internal/domain/activity"
	"license-management/internal/domain/dashboard"
	"license-management/internal/domain/licenses"
	"license-management/internal/domain/sharedstate"
	"license-management/internal/middleware"
	"license-management/internal/platform/logger"
	"license-management/internal/ports/ids"
	"license-management/internal/ports/sharedstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	// Opcional: si viene, licencias/actividad/store usan postgres. Si no, in-memory con fixtures.
	DB pg.Querier

	// Opcional: store compartido del host (p.ej. hoststore.Store). Tiene prioridad sobre DB/memoria.
	SharedStore sharedstore.Store

	// Opcional: default ids.UUID{Short: true}.
	IDs ids.Generator

	// WindowDays <= 0 usa licenses.DefaultExpiringWindowDays.
	WindowDays int

	// Now se inyecta en tests; default time.Now.
	Now func() time.Time

	// FixturesPath vacío usa los datos embebidos (solo modo memoria).
	FixturesPath string
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	gen := opts.IDs
	if gen == nil {
		gen = adids.UUID{Short: true}
	}
	window := opts.WindowDays
	if window <= 0 {
		window = licenses.DefaultExpiringWindowDays
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		licenseRepo  licenses.Repository
		activityRepo activity.Repository
		store        sharedstore.Store
	)

	if opts.DB != nil {
		licenseRepo = pg.NewLicensesRepo(opts.DB)
		activityRepo = pg.NewActivityRepo(opts.DB)
		store = pg.NewSharedStore(opts.DB)
	} else {
		licenseRepo = mem.NewLicenseRepo()
		activityRepo = mem.NewActivityRepo()
		store = mem.NewSharedStore()
	}
	if opts.SharedStore != nil {
		store = opts.SharedStore
	}

	// Services por módulo
	licensesSvc := licenses.NewService(licenseRepo, licenses.WithWindowDays(window), licenses.WithClock(now))
	activitySvc := activity.NewService(activityRepo, activity.WithClock(now))
	sharedSvc := sharedstate.NewService(store, gen)
	dashboardSvc := dashboard.NewService(licensesSvc, activitySvc, sharedSvc, log.With(logger.Fields{"module": "dashboard"}))

	if opts.DB == nil {
		set, err := fixtures.Load(opts.FixturesPath, now())
		if err != nil {
			return nil, err
		}
		n, err := fixtures.Seed(context.Background(), set, licensesSvc, activitySvc)
		if err != nil {
			return nil, fmt.Errorf("seed memory storage: %w", err)
		}
		log.Debug("memory storage seeded", logger.Fields{"records": n})
	}

	// Rutas por módulo
	licenses.RegisterRoutes(r, licensesSvc)
	activity.RegisterRoutes(r, activitySvc)
	sharedstate.RegisterRoutes(r, sharedSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r, nil
}
