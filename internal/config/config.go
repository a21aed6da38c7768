package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the generator defaults. CLI flags override these; they exist
// so pipelines can configure a run through the environment or a .env file.
type Config struct {
	Env             string  `mapstructure:"ENV"`
	PatientCount    int     `mapstructure:"PATIENT_COUNT"`
	Seed            int64   `mapstructure:"SEED"`
	ReadmissionRate float64 `mapstructure:"READMISSION_RATE"`
	SepsisRate      float64 `mapstructure:"SEPSIS_RATE"`
	MortalityRate   float64 `mapstructure:"MORTALITY_RATE"`
	OutputPath      string  `mapstructure:"OUTPUT_PATH"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("PATIENT_COUNT", 1000)
	v.SetDefault("SEED", 42)
	v.SetDefault("READMISSION_RATE", 0.05)
	v.SetDefault("SEPSIS_RATE", 0.02)
	v.SetDefault("MORTALITY_RATE", 0.03)
	v.SetDefault("OUTPUT_PATH", "")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("PATIENT_COUNT")
	v.BindEnv("SEED")
	v.BindEnv("READMISSION_RATE")
	v.BindEnv("SEPSIS_RATE")
	v.BindEnv("MORTALITY_RATE")
	v.BindEnv("OUTPUT_PATH")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the generator would refuse anyway, so
// misconfiguration surfaces at startup rather than mid-run.
func (c *Config) Validate() error {
	if c.PatientCount <= 0 {
		return fmt.Errorf("PATIENT_COUNT must be positive, got %d", c.PatientCount)
	}
	for _, r := range []struct {
		name string
		rate float64
	}{
		{"READMISSION_RATE", c.ReadmissionRate},
		{"SEPSIS_RATE", c.SepsisRate},
		{"MORTALITY_RATE", c.MortalityRate},
	} {
		if r.rate < 0 || r.rate > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %g", r.name, r.rate)
		}
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
