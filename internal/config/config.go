package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server Server `yaml:"server"`

	Database Database `yaml:"database"`

	JWT JWT `yaml:"jwt"`

	Redis Redis `yaml:"redis"`

	Uploads Uploads `yaml:"uploads"`

	Billing Billing `yaml:"billing"`
}

type Server struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"`
	// AllowedOrigin restricts websocket upgrades to one Origin.
	// Empty accepts any origin, which tablets on restaurant LANs need.
	AllowedOrigin string `yaml:"allowed_origin"`
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type Redis struct {
	Enabled    bool   `yaml:"enabled"`
	Address    string `yaml:"address"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type Uploads struct {
	Dir string `yaml:"dir"`
}

// Billing is the plan catalog. Prices are configuration, never code.
type Billing struct {
	POSSurcharge float64       `yaml:"pos_surcharge"`
	Plans        []BillingPlan `yaml:"plans"`
}

type BillingPlan struct {
	Tier      string  `yaml:"tier"`
	Name      string  `yaml:"name"`
	BasePrice float64 `yaml:"base_price"`
}

func Load() (*Config, error) {
	configPath := "configs/development.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
