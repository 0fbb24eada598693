package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/service"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/plan"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	activityService  service.WeeklyActivityServiceI
	readingsService  service.ReadingsServiceI
	wearablesService service.WearablesServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	ActivityService  service.WeeklyActivityServiceI
	ReadingsService  service.ReadingsServiceI
	WearablesService service.WearablesServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		activityService:  servicesOptions.ActivityService,
		readingsService:  servicesOptions.ReadingsService,
		wearablesService: servicesOptions.WearablesService,
		jwtService:       servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Put("/account/plan", s.ChangePlan)
			r.Delete("/account", s.DeleteAccount)
			// single-week lookup has no tier floor, window membership decides
			r.Get("/activity/weekly/{year}/{week}", s.GetWeekActivity)
			r.Post("/readings/glucose", s.LogGlucose)
			r.Get("/readings/glucose", s.GetGlucoseReadings)
			r.Post("/readings/blood-pressure", s.LogBloodPressure)
			r.Get("/readings/blood-pressure", s.GetBloodPressureReadings)
			r.Group(func(r chi.Router) {
				r.Use(s.PlanMiddleware(plan.Pro))
				r.Get("/activity/weekly", s.GetWeeklyActivity)
				r.Post("/activity/weekly", s.SaveWeeklyActivity)
				r.Post("/wearables/import", s.ImportWearables)
			})
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the routed mux, used by httptest in handler tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
