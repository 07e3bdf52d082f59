package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/epidem/seir"
)

// Prefix is prepended to every environment variable name.
const Prefix = "SEIRSIM_"

// PolicyBoth runs both transmission policies.
const PolicyBoth = "both"

type Config struct {
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
		Format string `env:"FORMAT" envDefault:"text" validate:"oneof=text json"`
	} `envPrefix:"LOG_"`
	Model struct {
		Alpha      float64 `env:"ALPHA" envDefault:"0.2" validate:"gte=0"`
		Beta       float64 `env:"BETA" envDefault:"1.75" validate:"gte=0"`
		Gamma      float64 `env:"GAMMA" envDefault:"0.5" validate:"gte=0"`
		Rho        float64 `env:"RHO" envDefault:"0.5" validate:"gte=0,lte=1"`
		Population int     `env:"POPULATION" envDefault:"10000" validate:"gte=1"`
		Days       float64 `env:"DAYS" envDefault:"100" validate:"gt=0"`
		Dt         float64 `env:"DT" envDefault:"0.1" validate:"gt=0"`
		Policy     string  `env:"POLICY" envDefault:"both" validate:"oneof=base social_distancing both"`
	} `envPrefix:"MODEL_"`
	Server struct {
		Port            string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10" validate:"gte=1"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"30" validate:"gte=1"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60" validate:"gte=1"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10" validate:"gte=1"`
		MaxSteps        int    `env:"MAX_STEPS" envDefault:"1000000" validate:"gte=1"`
	} `envPrefix:"SERVER_"`
	Tracing struct {
		Enabled     bool    `env:"ENABLED" envDefault:"false"`
		Exporter    string  `env:"EXPORTER" envDefault:"stdout" validate:"oneof=stdout otlp"`
		Endpoint    string  `env:"ENDPOINT" envDefault:"localhost:4317"`
		ServiceName string  `env:"SERVICE_NAME" envDefault:"seirsim" validate:"required"`
		SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1" validate:"gte=0,lte=1"`
	} `envPrefix:"TRACING_"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return load(env.Options{Prefix: Prefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment. Keys carry the SEIRSIM_ prefix.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Prefix: Prefix, Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// first error only, keeps the log line readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config: %s fails %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}

	return nil
}

// Scenario converts the model section into a seir.Config. Policy "both"
// maps to Base; callers running both policies use seir.RunBoth.
func (c *Config) Scenario() (seir.Config, error) {
	policy := seir.PolicyBase
	if c.Model.Policy != PolicyBoth {
		p, err := seir.ParsePolicy(c.Model.Policy)
		if err != nil {
			return seir.Config{}, err
		}
		policy = p
	}

	return seir.Config{
		Initial: seir.DefaultInitialState(c.Model.Population),
		Params:  seir.NewDistancingParams(c.Model.Alpha, c.Model.Beta, c.Model.Gamma, c.Model.Rho),
		Policy:  policy,
		Start:   0,
		End:     c.Model.Days,
		Dt:      c.Model.Dt,
	}, nil
}
