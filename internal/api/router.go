package api

import (
	"log/slog"
	"net/http"
	"time"

	"insurance-office/internal/api/handler"
	mw "insurance-office/internal/api/middleware"
	"insurance-office/internal/config"
	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/domain/contract"
	"insurance-office/internal/domain/customer"
	"insurance-office/internal/domain/insurancetype"
	"insurance-office/internal/domain/payout"
	"insurance-office/internal/domain/report"
	"insurance-office/internal/event"

	_ "insurance-office/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Customers      customer.CustomerService
	InsuranceTypes insurancetype.InsuranceTypeService
	Contracts      contract.ContractService
	Assessments    assessment.AssessmentService
	Payouts        payout.PayoutService
	Reports        report.ReportService
	Publisher      event.EventPublisher
}

func SetupRouter(services Services, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, cfg, logger)
	setupCustomerRoutes(router, cfg, services, logger)
	setupInsuranceTypeRoutes(router, cfg, services, logger)
	setupContractRoutes(router, cfg, services, logger)
	setupAssessmentRoutes(router, cfg, services, logger)
	setupPayoutRoutes(router, cfg, services, logger)
	setupReportRoutes(router, cfg, services, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(*cfg, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})
}

func setupCustomerRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	h := handler.NewCustomerHandler(services.Customers, services.Publisher, logger)
	mutate := mw.RequireRoles(cfg.Server.Auth.Enabled, mw.RoleAdmin, mw.RoleInsuranceAgent)

	router.Route("/customers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.ListCustomers)
		r.Get("/options", h.CustomerOptions)
		r.Get("/next-id", h.NextCustomerID)
		r.With(mutate).Post("/", h.CreateCustomer)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.With(mutate).Put("/", h.UpdateCustomer)
			r.With(mutate).Delete("/", h.DeleteCustomer)
		})
	})
}

func setupInsuranceTypeRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	h := handler.NewInsuranceTypeHandler(services.InsuranceTypes, logger)
	mutate := mw.RequireRoles(cfg.Server.Auth.Enabled, mw.RoleAdmin, mw.RoleInsuranceAgent)

	router.Route("/insurance-types", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.ListInsuranceTypes)
		r.Get("/options", h.InsuranceTypeOptions)
		r.Get("/next-id", h.NextInsuranceTypeID)
		r.With(mutate).Post("/", h.CreateInsuranceType)
		r.Route("/{insuranceTypeID}", func(r chi.Router) {
			r.Get("/", h.GetInsuranceType)
			r.With(mutate).Put("/", h.UpdateInsuranceType)
			r.With(mutate).Delete("/", h.DeleteInsuranceType)
		})
	})
}

func setupContractRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	h := handler.NewContractHandler(services.Contracts, services.Assessments, services.Payouts, logger)
	mutate := mw.RequireRoles(cfg.Server.Auth.Enabled, mw.RoleAdmin, mw.RoleInsuranceAgent)
	// Claim and payout subviews carry the same boundary as /assessments and
	// /payouts: agents manage contracts but never see claim data.
	claimData := mw.RequireRoles(cfg.Server.Auth.Enabled, mw.RoleAdmin, mw.RoleClaimAssessor)

	router.Route("/contracts", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.ListContracts)
		r.Get("/options", h.ContractOptions)
		r.Get("/next-id", h.NextContractID)
		r.Get("/expiring", h.ExpiringContracts)
		r.With(mutate).Post("/", h.CreateContract)
		r.Route("/{contractID}", func(r chi.Router) {
			r.Get("/", h.GetContract)
			r.With(claimData).Get("/assessments", h.ContractAssessments)
			r.With(claimData).Get("/payouts", h.ContractPayouts)
			r.With(mutate).Put("/", h.UpdateContract)
			r.With(mutate).Post("/extend", h.ExtendContract)
		})
	})
}

func setupAssessmentRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	h := handler.NewAssessmentHandler(services.Assessments, logger)

	router.Route("/assessments", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		// Assessments are assessor territory outright: agents cannot read
		// claim data, so the role guard covers the whole group.
		r.Use(mw.RequireRoles(cfg.Server.Auth.Enabled, mw.RoleAdmin, mw.RoleClaimAssessor))
		r.Get("/", h.ListAssessments)
		r.Get("/pending", h.PendingAssessments)
		r.Get("/approved-without-payout", h.ApprovedWithoutPayout)
		r.Get("/next-id", h.NextAssessmentID)
		r.Post("/", h.FileClaim)
		r.Route("/{assessmentID}", func(r chi.Router) {
			r.Get("/", h.GetAssessment)
			r.Put("/result", h.UpdateResult)
		})
	})
}

func setupPayoutRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	h := handler.NewPayoutHandler(services.Payouts, services.Publisher, logger)

	router.Route("/payouts", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		// Same boundary as /assessments: agents see neither reads nor writes.
		r.Use(mw.RequireRoles(cfg.Server.Auth.Enabled, mw.RoleAdmin, mw.RoleClaimAssessor))
		r.Get("/", h.ListPayouts)
		r.Get("/pending", h.PendingPayouts)
		r.Get("/totals", h.TotalsByStatus)
		r.Get("/next-id", h.NextPayoutID)
		r.Post("/", h.ProcessPayout)
		r.Route("/{payoutID}", func(r chi.Router) {
			r.Get("/", h.GetPayout)
			r.Put("/status", h.UpdateStatus)
		})
	})
}

func setupReportRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	h := handler.NewReportHandler(services.Reports, logger)

	router.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/dashboard", h.Dashboard)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/claims", h.ClaimsReport)
			r.Get("/contracts", h.ContractsReport)
			r.Get("/payouts", h.PayoutsReport)
			r.Get("/top-customers", h.TopCustomers)
		})
	})
}
