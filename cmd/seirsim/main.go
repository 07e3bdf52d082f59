// Command seirsim integrates the SEIR model under the Base and
// SocialDistancing policies and prints a summary, a comparison or the raw
// trajectory as CSV. With -serve it exposes the same runs over HTTP.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/epidem/internal/config"
	"github.com/katalvlaran/epidem/internal/handler"
	"github.com/katalvlaran/epidem/internal/logging"
	"github.com/katalvlaran/epidem/internal/observability"
	"github.com/katalvlaran/epidem/internal/service"
	"github.com/katalvlaran/epidem/report"
	"github.com/katalvlaran/epidem/seir"
)

var errCSVNeedsPolicy = errors.New("-csv needs -policy base or social_distancing")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "seirsim:", err)
		os.Exit(1)
	}
}

// options are the CLI-only switches; model flags write straight into the
// loaded config.
type options struct {
	csv   bool
	json  bool
	every int
	serve bool
	addr  string
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("seirsim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&cfg.Model.Alpha, "alpha", cfg.Model.Alpha, "incubation rate, E to I (1/days)")
	fs.Float64Var(&cfg.Model.Beta, "beta", cfg.Model.Beta, "contact rate")
	fs.Float64Var(&cfg.Model.Gamma, "gamma", cfg.Model.Gamma, "recovery rate, I to R (1/days)")
	fs.Float64Var(&cfg.Model.Rho, "rho", cfg.Model.Rho, "social distancing factor in [0,1]")
	fs.IntVar(&cfg.Model.Population, "population", cfg.Model.Population, "population size; one individual starts exposed")
	fs.Float64Var(&cfg.Model.Days, "days", cfg.Model.Days, "horizon in days")
	fs.Float64Var(&cfg.Model.Dt, "dt", cfg.Model.Dt, "Euler step in days")
	fs.StringVar(&cfg.Model.Policy, "policy", cfg.Model.Policy, "base, social_distancing or both")

	fs.BoolVar(&opts.csv, "csv", false, "write the trajectory as CSV instead of a summary")
	fs.BoolVar(&opts.json, "json", false, "write the summary as JSON")
	fs.IntVar(&opts.every, "every", 1, "with -csv, write every k-th row plus the last")
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of running once")
	fs.StringVar(&opts.addr, "addr", ":"+cfg.Server.Port, "listen address for -serve")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.every < 1 {
		return opts, fmt.Errorf("-every=%d must be at least 1", opts.every)
	}
	if opts.csv && opts.json {
		return opts, errors.New("-csv and -json are mutually exclusive")
	}

	return opts, config.Validate(cfg)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: stderr})

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
		Writer:      stderr,
	}, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, shutdownTimeout(cfg), log)

	scenario, err := cfg.Scenario()
	if err != nil {
		return err
	}

	if opts.serve {
		return serve(ctx, cfg, opts.addr, scenario, log)
	}

	return simulate(ctx, service.New(log), scenario, cfg.Model.Policy, opts, stdout)
}

// simulate runs the selected policy, or both, and writes the result.
func simulate(ctx context.Context, runner *service.Runner, scenario seir.Config, policy string, opts options, w io.Writer) error {
	if policy == config.PolicyBoth {
		if opts.csv {
			return errCSVNeedsPolicy
		}
		cmp, _, _, err := runner.Compare(ctx, scenario)
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(w, cmp)
		}
		return report.WriteComparison(w, cmp)
	}

	traj, err := runner.Simulate(ctx, scenario)
	if err != nil {
		return err
	}
	if opts.csv {
		return report.WriteCSV(w, traj, report.WithEvery(opts.every))
	}
	summary, err := report.Summarize(traj)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(w, summary)
	}
	return report.WriteSummary(w, summary)
}

// shutdownTimeout bounds both the HTTP drain and the tracer flush.
func shutdownTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Server.ShutdownTimeout) * time.Second
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newServer wires the HTTP handler with a private registry that also
// carries the Go runtime and process collectors.
func newServer(cfg *config.Config, addr string, scenario seir.Config, log logging.Logger) (*http.Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewCollector(reg)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	runner := service.New(log,
		service.WithMetrics(metrics),
		service.WithMaxSteps(cfg.Server.MaxSteps),
	)

	h, err := handler.NewHandler(scenario, runner, metrics, log)
	if err != nil {
		return nil, fmt.Errorf("init handler: %w", err)
	}
	h.RegisterRoutes()

	srv := &http.Server{
		Addr:         addr,
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}
	if sl := logging.Slog(log); sl != nil {
		srv.ErrorLog = slog.NewLogLogger(sl.Handler(), slog.LevelError)
	}

	return srv, nil
}

// serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, cfg *config.Config, addr string, scenario seir.Config, log logging.Logger) error {
	srv, err := newServer(cfg, addr, scenario, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting server", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info(context.Background(), "server stopped")

	return nil
}
