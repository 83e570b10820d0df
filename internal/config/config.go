package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultServiceURL = "http://localhost:8080"

type Config struct {
	// ServiceURL is the base URL of the character-status service.
	ServiceURL     string        `env:"DINO_SERVICE_URL" envDefault:"http://localhost:8080"`
	PatientID      string        `env:"DINO_PATIENT_ID"`
	RequestTimeout time.Duration `env:"DINO_REQUEST_TIMEOUT" envDefault:"5s"`
	LogFile        string        `env:"DINO_LOG_FILE"`
	FakeAddr       string        `env:"DINO_FAKE_ADDR" envDefault:":8080"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// ReadFrom parses cfg from an explicit environment instead of the process one.
func ReadFrom(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}
