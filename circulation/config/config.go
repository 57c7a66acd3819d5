package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/circulation-service/pkg/kafka"
	"github.com/Astemirdum/circulation-service/pkg/logger"
	"github.com/Astemirdum/circulation-service/pkg/postgres"
	"github.com/Astemirdum/circulation-service/pkg/tracing"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Policy holds the lending rules that are configuration rather than code.
type Policy struct {
	LoanPeriod       time.Duration `envconfig:"LOAN_PERIOD" default:"720h"`
	StatusAvailable  string        `envconfig:"STATUS_AVAILABLE" default:"Available"`
	StatusCheckedOut string        `envconfig:"STATUS_CHECKED_OUT" default:"CheckedOut"`
	StatusOnHold     string        `envconfig:"STATUS_ON_HOLD" default:"On Hold"`
	StatusCacheTTL   time.Duration `envconfig:"STATUS_CACHE_TTL" default:"5m"`
	// AllowDuplicateHolds lets one card queue several holds on the same asset.
	AllowDuplicateHolds bool `envconfig:"ALLOW_DUPLICATE_HOLDS" default:"false"`
	// ReserveForHeadHold lends an asset on hold only to the card at the head of
	// its queue, consuming that hold. Otherwise any card may check it out and
	// the queue is left as is.
	ReserveForHeadHold bool `envconfig:"RESERVE_FOR_HEAD_HOLD" default:"false"`
	// RejectBorrowerHolds refuses a hold from the card that has the asset checked out.
	RejectBorrowerHolds bool `envconfig:"REJECT_BORROWER_HOLDS" default:"false"`
}

func DefaultPolicy() Policy {
	return Policy{
		LoanPeriod:       30 * 24 * time.Hour,
		StatusAvailable:  "Available",
		StatusCheckedOut: "CheckedOut",
		StatusOnHold:     "On Hold",
		StatusCacheTTL:   5 * time.Minute,
	}
}

type Config struct {
	Server   HTTPServer     `yaml:"server"`
	Database postgres.DB    `yaml:"db"`
	Kafka    kafka.Config   `yaml:"kafka"`
	Tracing  tracing.Config `yaml:"tracing"`
	Policy   Policy         `yaml:"policy"`
	Log      logger.Log     `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment once; options are applied on top of it.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func Load(ops ...Option) (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	for _, op := range ops {
		op(&config)
	}
	if config.Policy.LoanPeriod <= 0 {
		return nil, fmt.Errorf("LOAN_PERIOD must be positive, got %s", config.Policy.LoanPeriod)
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
