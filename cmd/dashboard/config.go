package main

import (
	"errors"
	"time"

	"github.com/dmitrymomot/therapist-admin/pkg/environment"
	"github.com/dmitrymomot/therapist-admin/pkg/httpserver"
	"github.com/dmitrymomot/therapist-admin/pkg/pg"
	"github.com/dmitrymomot/therapist-admin/pkg/redis"
)

const (
	storePostgres = "postgres"
	storeMemory   = "memory"
)

var errUnknownStore = errors.New("STORE must be postgres or memory")

type appConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string                  `env:"APP_NAME" envDefault:"therapist-admin"`
	LogLevel string                  `env:"LOG_LEVEL"`

	Store               string        `env:"STORE" envDefault:"postgres"`
	Seed                bool          `env:"SEED" envDefault:"false"`
	ScanLimit           int           `env:"SCAN_LIMIT" envDefault:"100"`
	BrowseLimit         int           `env:"BROWSE_LIMIT" envDefault:"50"`
	SummaryCacheTTL     time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"30s"`
	RemediationValidate bool          `env:"REMEDIATION_VALIDATE" envDefault:"false"`
}

type settings struct {
	App   appConfig
	PG    pg.Config
	Redis redis.Config
	HTTP  httpserver.Config
}

func (c settings) validate() error {
	switch c.App.Store {
	case storePostgres, storeMemory:
		return nil
	default:
		return errUnknownStore
	}
}
