package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/epidem/internal/logging"
	"github.com/katalvlaran/epidem/internal/observability"
	"github.com/katalvlaran/epidem/internal/service"
	"github.com/katalvlaran/epidem/seir"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	validate   *validator.Validate
	translator ut.Translator
	defaults   seir.Config
	runner     *service.Runner
	metrics    *observability.Collector
	log        logging.Logger

	Mux *chi.Mux
}

// NewHandler builds the HTTP surface. defaults fills every field a request
// omits; metrics may be nil, in which case /metrics is not mounted.
func NewHandler(defaults seir.Config, runner *service.Runner, metrics *observability.Collector, log logging.Logger) (*Handler, error) {
	if log == nil {
		log = logging.Noop()
	}
	if runner == nil {
		runner = service.New(log, service.WithMetrics(metrics))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		translator: trans,
		defaults:   defaults,
		runner:     runner,
		metrics:    metrics,
		log:        log,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(middleware.RequestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	if h.metrics != nil {
		h.Mux.Use(h.metrics.Middleware)
		h.Mux.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	h.Mux.Get("/healthz", h.Healthz)

	h.Mux.Route("/v1", func(r chi.Router) {
		r.Post("/simulate", h.Simulate)
		r.Post("/compare", h.Compare)
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", nil)
}
