package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/staffdesk/payroll-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	kpiHandler KpiHandler,
	vacationHandler VacationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Post("/terminate", employeeHandler.Terminate)
			})
		})

		r.Route("/attendance/{employeeID}/{year}/{month}", func(r chi.Router) {
			r.Put("/", attendanceHandler.SaveSheet)
			r.Get("/", attendanceHandler.GetSheet)
			r.Get("/worked-days", attendanceHandler.WorkedDays)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", payrollHandler.GetSettings)
				r.Put("/", payrollHandler.UpdateSettings)
			})
			r.Route("/work-norms/{year}/{month}", func(r chi.Router) {
				r.Get("/", payrollHandler.GetWorkNorm)
				r.Put("/", payrollHandler.UpsertWorkNorm)
			})
			r.Post("/recalculate", payrollHandler.Recalculate)
			r.Post("/preview", payrollHandler.Preview)
			r.Get("/records/{year}/{month}", payrollHandler.ListRecords)
			r.Get("/records/{employeeID}/{year}/{month}", payrollHandler.GetRecord)
		})

		r.Route("/kpi", func(r chi.Router) {
			r.Route("/metrics", func(r chi.Router) {
				r.Get("/", kpiHandler.ListMetrics)
				r.Post("/", kpiHandler.CreateMetric)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", kpiHandler.GetMetric)
					r.Put("/", kpiHandler.UpdateMetric)
					r.Delete("/", kpiHandler.DeleteMetric)
					r.Put("/assignments", kpiHandler.AssignEmployees)
				})
			})
			r.Post("/results", kpiHandler.SubmitResult)
			r.Get("/results/{employeeID}/{year}/{month}", kpiHandler.ListResults)
			r.Get("/bonus-total/{employeeID}/{year}/{month}", kpiHandler.BonusTotal)
		})

		r.Route("/vacations", func(r chi.Router) {
			r.Get("/", vacationHandler.List)
			r.Post("/", vacationHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", vacationHandler.Get)
				r.Patch("/status", vacationHandler.UpdateStatus)
			})
		})
	})

	return r
}
