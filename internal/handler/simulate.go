package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/katalvlaran/epidem/internal/service"
	"github.com/katalvlaran/epidem/report"
	"github.com/katalvlaran/epidem/seir"
	"github.com/katalvlaran/epidem/timegrid"
)

type stateRequest struct {
	S float64 `json:"S" validate:"gte=0"`
	E float64 `json:"E" validate:"gte=0"`
	I float64 `json:"I" validate:"gte=0"`
	R float64 `json:"R" validate:"gte=0"`
}

// scenarioRequest holds the fields shared by /v1/simulate and /v1/compare.
// Omitted fields take the server defaults.
type scenarioRequest struct {
	Alpha      *float64      `json:"alpha" validate:"omitempty,gte=0"`
	Beta       *float64      `json:"beta" validate:"omitempty,gte=0"`
	Gamma      *float64      `json:"gamma" validate:"omitempty,gte=0"`
	Rho        *float64      `json:"rho" validate:"omitempty,gte=0,lte=1"`
	Population *int          `json:"population" validate:"omitempty,gte=1"`
	Initial    *stateRequest `json:"initial"`
	Days       *float64      `json:"days" validate:"omitempty,gt=0"`
	Dt         *float64      `json:"dt" validate:"omitempty,gt=0"`

	Trajectory bool `json:"trajectory"`
	Every      int  `json:"every" validate:"omitempty,gte=1"`
}

type simulateRequest struct {
	scenarioRequest
	Policy string `json:"policy" validate:"omitempty,oneof=base social_distancing sd distancing"`
}

type simulateResponse struct {
	Summary    report.Summary `json:"summary"`
	Trajectory []report.Point `json:"trajectory,omitempty"`
}

type compareResponse struct {
	Comparison report.Comparison `json:"comparison"`
	Base       []report.Point    `json:"base,omitempty"`
	Distancing []report.Point    `json:"distancing,omitempty"`
}

// apply overlays the request on defaults. An explicit initial state wins
// over population.
func (req scenarioRequest) apply(cfg seir.Config) seir.Config {
	if req.Alpha != nil {
		cfg.Params.Alpha = *req.Alpha
	}
	if req.Beta != nil {
		cfg.Params.Beta = *req.Beta
	}
	if req.Gamma != nil {
		cfg.Params.Gamma = *req.Gamma
	}
	if req.Rho != nil {
		cfg.Params.Rho = *req.Rho
	}
	if req.Population != nil {
		cfg.Initial = seir.DefaultInitialState(*req.Population)
	}
	if req.Initial != nil {
		cfg.Initial = seir.State{S: req.Initial.S, E: req.Initial.E, I: req.Initial.I, R: req.Initial.R}
	}
	if req.Days != nil {
		cfg.End = cfg.Start + *req.Days
	}
	if req.Dt != nil {
		cfg.Dt = *req.Dt
	}
	cfg.Grid = nil

	return cfg
}

func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	cfg := req.apply(h.defaults)
	if req.Policy != "" {
		policy, err := seir.ParsePolicy(req.Policy)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		cfg.Policy = policy
	}

	traj, err := h.runner.Simulate(r.Context(), cfg)
	if err != nil {
		h.runError(w, r, err)
		return
	}

	every := max(req.Every, 1)
	if wantsCSV(r) {
		w.Header().Set("Content-Type", "text/csv")
		if err := report.WriteCSV(w, traj, report.WithEvery(every)); err != nil {
			h.logInternalServerError(r, err)
		}
		return
	}

	summary, err := report.Summarize(traj)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	data := simulateResponse{Summary: summary}
	if req.Trajectory {
		if data.Trajectory, err = report.Sample(traj, every); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "simulation finished", data)
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	cmp, base, distancing, err := h.runner.Compare(r.Context(), req.apply(h.defaults))
	if err != nil {
		h.runError(w, r, err)
		return
	}

	data := compareResponse{Comparison: cmp}
	if req.Trajectory {
		every := max(req.Every, 1)
		if data.Base, err = report.Sample(base, every); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if data.Distancing, err = report.Sample(distancing, every); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "comparison finished", data)
}

// runError maps domain errors to 400 and everything else to 500.
func (h *Handler) runError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, seir.ErrInvalidParameters),
		errors.Is(err, seir.ErrInvalidState),
		errors.Is(err, seir.ErrUnknownPolicy),
		errors.Is(err, timegrid.ErrInvalidTimeGrid),
		errors.Is(err, service.ErrTooManySteps):
		h.badRequest(w, r, err)
	default:
		h.internalServerError(w, r, err)
	}
}

func wantsCSV(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/csv")
}
