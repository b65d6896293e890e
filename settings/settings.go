// Package settings loads the run configuration of the rgodd tool.
//
// Sources, later ones winning:
//  1. Defaults.
//  2. An optional YAML file.
//  3. An optional .env file (RGODD_* keys).
//  4. RGODD_* process environment variables.
//
// The merged result is checked with struct validation.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rgodd/builder"
	"github.com/katalvlaran/rgodd/construct"
	"github.com/katalvlaran/rgodd/fault"
)

// EnvPrefix prefixes every environment key.
const EnvPrefix = "RGODD_"

// ErrInvalidSettings is returned for unreadable or out-of-range settings.
var ErrInvalidSettings = errors.New("settings: invalid settings")

var validate = validator.New()

// Settings is the run configuration.
type Settings struct {
	Seed            *int64  `yaml:"seed"`
	MinStates       int     `yaml:"min_states" validate:"min=1"`
	MaxStates       int     `yaml:"max_states" validate:"gtefield=MinStates"`
	Density         float64 `yaml:"density" validate:"gt=0"`
	Observable      int     `yaml:"observable" validate:"min=1,max=26"`
	FaultClasses    int     `yaml:"fault_classes" validate:"min=2,max=26"`
	FaultFraction   float64 `yaml:"fault_fraction" validate:"gt=0,lte=1"`
	InjectRetries   int     `yaml:"inject_retries" validate:"min=0"`
	GenerateRetries int     `yaml:"generate_retries" validate:"min=0"`
	MaxPairStates   int     `yaml:"max_pair_states" validate:"min=0"`
	OutDir          string  `yaml:"out_dir" validate:"required"`
	Format          string  `yaml:"format" validate:"oneof=yaml json"`
	Compress        bool    `yaml:"compress"`
	LogLevel        string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogDev          bool    `yaml:"log_dev"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		MinStates:       5,
		MaxStates:       10,
		Density:         builder.DefaultDensity,
		Observable:      builder.DefaultObservable,
		FaultClasses:    construct.DefaultFaultClasses,
		FaultFraction:   fault.DefaultFraction,
		InjectRetries:   construct.DefaultInjectRetries,
		GenerateRetries: construct.DefaultGenerateRetries,
		OutDir:          "configs",
		Format:          "yaml",
		LogLevel:        "info",
	}
}

// Load merges the sources listed in the package comment. Empty file names
// are skipped; a named file that does not exist is an error.
func Load(file, envFile string) (*Settings, error) {
	return load(file, envFile, os.LookupEnv)
}

func load(file, envFile string, lookup func(string) (string, bool)) (*Settings, error) {
	s := Defaults()
	if file != "" {
		if err := s.readYAML(file); err != nil {
			return nil, err
		}
	}
	dotenv := map[string]string{}
	if envFile != "" {
		var err error
		if dotenv, err = godotenv.Read(envFile); err != nil {
			return nil, fmt.Errorf("settings: %s: %w: %w", envFile, ErrInvalidSettings, err)
		}
	}
	merged := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := s.applyEnv(merged); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the struct tags.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("settings: %s fails %s%s: %w", e.Field(), e.Tag(), param(e.Param()), ErrInvalidSettings)
		}
		return fmt.Errorf("settings: %w: %w", ErrInvalidSettings, err)
	}

	return nil
}

func param(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

func (s *Settings) readYAML(file string) error {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("settings: %s: %w: %w", file, ErrInvalidSettings, err)
	}
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(s); err != nil {
		return fmt.Errorf("settings: %s: %w: %w", file, ErrInvalidSettings, err)
	}

	return nil
}

// applyEnv sets every field whose RGODD_ key is present.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"MIN_STATES":       &s.MinStates,
		"MAX_STATES":       &s.MaxStates,
		"OBSERVABLE":       &s.Observable,
		"FAULT_CLASSES":    &s.FaultClasses,
		"INJECT_RETRIES":   &s.InjectRetries,
		"GENERATE_RETRIES": &s.GenerateRetries,
		"MAX_PAIR_STATES":  &s.MaxPairStates,
	}
	floats := map[string]*float64{
		"DENSITY":        &s.Density,
		"FAULT_FRACTION": &s.FaultFraction,
	}
	bools := map[string]*bool{
		"COMPRESS": &s.Compress,
		"LOG_DEV":  &s.LogDev,
	}
	strs := map[string]*string{
		"OUT_DIR":   &s.OutDir,
		"FORMAT":    &s.Format,
		"LOG_LEVEL": &s.LogLevel,
	}

	bad := func(key, v string, err error) error {
		return fmt.Errorf("settings: %s%s=%q: %w: %w", EnvPrefix, key, v, ErrInvalidSettings, err)
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return bad(key, v, err)
			}
			*dst = n
		}
	}
	for key, dst := range floats {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return bad(key, v, err)
			}
			*dst = f
		}
	}
	for key, dst := range bools {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return bad(key, v, err)
			}
			*dst = b
		}
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return bad("SEED", v, err)
		}
		s.Seed = &seed
	}

	return nil
}
