package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port           int
	GinMode        string
	LogLevel       string
	TLSCertFile    string
	TLSKeyFile     string
	SeedSampleData bool
}

// Load reads configuration from the environment with sane defaults. Keys are
// set via their upper-case env names: PORT, GIN_MODE, LOG_LEVEL,
// TLS_CERT_FILE, TLS_KEY_FILE, SEED_SAMPLE_DATA.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", 8000)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("tls_cert_file", "")
	v.SetDefault("tls_key_file", "")
	v.SetDefault("seed_sample_data", false)
	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetInt("port"),
		GinMode:        v.GetString("gin_mode"),
		LogLevel:       v.GetString("log_level"),
		TLSCertFile:    v.GetString("tls_cert_file"),
		TLSKeyFile:     v.GetString("tls_key_file"),
		SeedSampleData: v.GetBool("seed_sample_data"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}
