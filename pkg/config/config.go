/*
config reads the settings for the command line tools from the environment and
from a .env file. Values in the environment take precedence over the file,
which takes precedence over the defaults.
*/
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	// Packages
	kong "github.com/alecthomas/kong"
	validator "github.com/go-playground/validator/v10"
	godotenv "github.com/joho/godotenv"
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Settings for connecting to the API and choosing the interview
type Settings struct {
	Token     string          `name:"token" env:"VIRTUAL_CLINIC_TOKEN" validate:"required"`
	BaseURL   string          `name:"base-url" env:"VIRTUAL_CLINIC_BASE_URL" default:"https://virtual-clinic-api.vercel.app" validate:"required,url"`
	PatientID string          `name:"patient" env:"VIRTUAL_CLINIC_PATIENT_ID"`
	TaskType  schema.TaskType `name:"task" env:"VIRTUAL_CLINIC_TASK_TYPE" default:"diagnosis" validate:"required,oneof=diagnosis treatment event"`
	Azure     Azure           `embed:"" prefix:"azure-" validate:"-"`
}

// Azure settings for the chat model which plays the doctor
type Azure struct {
	Endpoint   string `name:"endpoint" env:"AZURE_OPENAI_ENDPOINT" validate:"required,url"`
	APIKey     string `name:"api-key" env:"AZURE_OPENAI_API_KEY" validate:"required"`
	Deployment string `name:"deployment" env:"AZURE_OPENAI_DEPLOYMENT" default:"gpt5" validate:"required"`
	APIVersion string `name:"api-version" env:"AZURE_OPENAI_API_VERSION" default:"2024-08-01-preview" validate:"required"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EnvToken      = "VIRTUAL_CLINIC_TOKEN"
	EnvBaseURL    = "VIRTUAL_CLINIC_BASE_URL"
	EnvPatientID  = "VIRTUAL_CLINIC_PATIENT_ID"
	EnvTaskType   = "VIRTUAL_CLINIC_TASK_TYPE"
	EnvEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAPIKey     = "AZURE_OPENAI_API_KEY"
	EnvDeployment = "AZURE_OPENAI_DEPLOYMENT"
	EnvAPIVersion = "AZURE_OPENAI_API_VERSION"
)

const DefaultFile = ".env"

var validate = newValidator()

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load returns the settings from the environment and the named files. With
// no files, a .env file in the working directory is read if it exists. The
// process environment is not modified.
func Load(files ...string) (*Settings, error) {
	values, err := read(files...)
	if err != nil {
		return nil, err
	}

	settings := new(Settings)
	parser, err := kong.New(settings,
		kong.Name("config"),
		kong.Exit(func(int) {}),
		kong.Writers(io.Discard, io.Discard),
		kong.Resolvers(fileResolver(values)),
	)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	// Return success
	return settings, nil
}

// LoadEnv sets environment variables from the named files, or from a .env
// file in the working directory if no files are named. Variables which are
// already set are not overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		files = []string{DefaultFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return clinic.ErrBadParameter.With(err)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the settings required to connect to the API
func (s *Settings) Validate() error {
	return validationError(validate.Struct(s))
}

// Validate checks the settings required to call the chat model
func (a Azure) Validate() error {
	return validationError(validate.Struct(a))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// read returns the values in the named files, or in the default file if it
// exists
func read(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultFile); errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		files = []string{DefaultFile}
	}
	values, err := godotenv.Read(files...)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}
	return values, nil
}

// newValidator returns a validator which reports fields by their
// environment variable
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// fileResolver returns values from a .env file for flags whose environment
// variable is unset or empty. An empty variable falls back to the default.
func fileResolver(values map[string]string) kong.ResolverFunc {
	return func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, env := range flag.Tag.Envs {
			if strings.TrimSpace(os.Getenv(env)) != "" {
				return nil, nil
			}
		}
		for _, env := range flag.Tag.Envs {
			if value := strings.TrimSpace(values[env]); value != "" {
				return value, nil
			}
		}
		if flag.HasDefault {
			return flag.Default, nil
		}
		return nil, nil
	}
}

// validationError names the environment variable of each failed field
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field()+" ("+e.Tag()+")")
	}
	return clinic.ErrBadParameter.With("invalid settings: ", strings.Join(names, ", "))
}
