// Package config loads service configuration from configs/config.yml and
// HVAC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"hvac_reward/internal/reward"
)

const (
	envPrefix      = "HVAC"
	configName     = "config"
	defaultPort    = "8080"
	defaultDBPath  = "rewards.db"
	defaultTTL     = time.Hour
	defaultTopic   = "hvac.rewards"
	defaultLogLvl  = "info"
	defaultLogEnc  = "console"

	minSigningKeyLen = 32
)

// ErrWeakSigningKey is returned by AuthConfig.Validate.
var ErrWeakSigningKey = errors.New("config: auth.signing_key must be set to a secret of at least 32 bytes (HVAC_AUTH_SIGNING_KEY)")

// placeholderKeys are sample values that must never sign real tokens.
var placeholderKeys = []string{"change-me", "changeme", "secret"}

type Config struct {
	Port   string       `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Reward RewardConfig `mapstructure:"reward"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// RewardConfig mirrors reward.Params with config-friendly names and units.
type RewardConfig struct {
	ElectricityPriceUSDPerKWh     float64 `mapstructure:"electricity_price_usd_per_kwh"`
	NaturalGasPriceUSDPerKWh      float64 `mapstructure:"natural_gas_price_usd_per_kwh"`
	ElectricityEmissionKgPerKWh   float64 `mapstructure:"electricity_emission_kg_per_kwh"`
	NaturalGasEmissionKgPerKWh    float64 `mapstructure:"natural_gas_emission_kg_per_kwh"`
	CarbonPriceUSDPerKg           float64 `mapstructure:"carbon_price_usd_per_kg"`
	ProductivityWeight            float64 `mapstructure:"productivity_weight"`
	EnergyCostWeight              float64 `mapstructure:"energy_cost_weight"`
	CarbonEmissionWeight          float64 `mapstructure:"carbon_emission_weight"`
	PersonProductivityUSDPerHour  float64 `mapstructure:"person_productivity_usd_per_hour"`
	ComfortToleranceK             float64 `mapstructure:"comfort_tolerance_k"`
	AirflowPenaltyWeight          float64 `mapstructure:"airflow_penalty_weight"`
	EnergyCostReferenceUSDPerHour float64 `mapstructure:"energy_cost_reference_usd_per_hour"`
	CarbonReferenceKgPerHour      float64 `mapstructure:"carbon_reference_kg_per_hour"`
	RewardScale                   float64 `mapstructure:"reward_scale"`
	RewardShift                   float64 `mapstructure:"reward_shift"`
}

// Params converts the config section into reward function parameters.
func (r RewardConfig) Params() reward.Params {
	return reward.Params{
		Prices: reward.Prices{
			ElectricityUSDPerKWh: r.ElectricityPriceUSDPerKWh,
			NaturalGasUSDPerKWh:  r.NaturalGasPriceUSDPerKWh,
		},
		Emissions: reward.EmissionFactors{
			ElectricityKgPerKWh: r.ElectricityEmissionKgPerKWh,
			NaturalGasKgPerKWh:  r.NaturalGasEmissionKgPerKWh,
			CarbonUSDPerKg:      r.CarbonPriceUSDPerKg,
		},
		Weights: reward.Weights{
			Productivity:   r.ProductivityWeight,
			EnergyCost:     r.EnergyCostWeight,
			CarbonEmission: r.CarbonEmissionWeight,
		},
		Normalization: reward.Normalization{
			PersonProductivityUSDPerHour:  r.PersonProductivityUSDPerHour,
			ComfortToleranceK:             r.ComfortToleranceK,
			EnergyCostReferenceUSDPerHour: r.EnergyCostReferenceUSDPerHour,
			CarbonReferenceKgPerHour:      r.CarbonReferenceKgPerHour,
			RewardScale:                   r.RewardScale,
			RewardShift:                   r.RewardShift,
		},
		AirflowPenaltyWeight: r.AirflowPenaltyWeight,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", defaultLogLvl)
	v.SetDefault("log.encoding", defaultLogEnc)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", defaultTTL)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", defaultTopic)

	p := reward.DefaultParams()
	v.SetDefault("reward.electricity_price_usd_per_kwh", p.Prices.ElectricityUSDPerKWh)
	v.SetDefault("reward.natural_gas_price_usd_per_kwh", p.Prices.NaturalGasUSDPerKWh)
	v.SetDefault("reward.electricity_emission_kg_per_kwh", p.Emissions.ElectricityKgPerKWh)
	v.SetDefault("reward.natural_gas_emission_kg_per_kwh", p.Emissions.NaturalGasKgPerKWh)
	v.SetDefault("reward.carbon_price_usd_per_kg", p.Emissions.CarbonUSDPerKg)
	v.SetDefault("reward.productivity_weight", p.Weights.Productivity)
	v.SetDefault("reward.energy_cost_weight", p.Weights.EnergyCost)
	v.SetDefault("reward.carbon_emission_weight", p.Weights.CarbonEmission)
	v.SetDefault("reward.person_productivity_usd_per_hour", p.Normalization.PersonProductivityUSDPerHour)
	v.SetDefault("reward.comfort_tolerance_k", p.Normalization.ComfortToleranceK)
	v.SetDefault("reward.airflow_penalty_weight", p.AirflowPenaltyWeight)
	v.SetDefault("reward.energy_cost_reference_usd_per_hour", p.Normalization.EnergyCostReferenceUSDPerHour)
	v.SetDefault("reward.carbon_reference_kg_per_hour", p.Normalization.CarbonReferenceKgPerHour)
	v.SetDefault("reward.reward_scale", p.Normalization.RewardScale)
	v.SetDefault("reward.reward_shift", p.Normalization.RewardShift)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads config.yml from dir. A missing file is not an error: defaults
// and environment variables still apply.
func Load(dir string) (Config, error) {
	v := newViper()
	v.AddConfigPath(dir)
	v.SetConfigName(configName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

// LoadFile reads an explicit config file path.
func LoadFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that defaults cannot guarantee.
// The signing key is only needed to serve HTTP and is checked separately by
// AuthConfig.Validate.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: auth.token_ttl must be positive")
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return errors.New("config: kafka.brokers and kafka.topic are required when kafka is enabled")
	}
	if err := c.Reward.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate rejects a missing, short or sample signing key.
func (a AuthConfig) Validate() error {
	key := strings.TrimSpace(a.SigningKey)
	if len(key) < minSigningKeyLen {
		return ErrWeakSigningKey
	}
	for _, p := range placeholderKeys {
		if strings.Contains(strings.ToLower(key), p) {
			return fmt.Errorf("%w: contains placeholder %q", ErrWeakSigningKey, p)
		}
	}
	return nil
}
