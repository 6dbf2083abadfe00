package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/cfman/internal/domain"
	"github.com/lite-lake/cfman/internal/infrastructure/cloudflare"
)

// FileName is the optional configuration file looked up in the config dir.
const FileName = "cfman.yaml"

type API struct {
	BaseURL              string `yaml:"base_url"`
	TimeoutSeconds       int    `yaml:"timeout_seconds"`
	ExportTimeoutSeconds int    `yaml:"export_timeout_seconds"`
	ZonePageSize         int    `yaml:"zone_page_size"`
	RecordPageSize       int    `yaml:"record_page_size"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	API API `yaml:"api"`
	Log Log `yaml:"log"`
}

func Default() *Config {
	return &Config{
		API: API{
			BaseURL:              cloudflare.DefaultBaseURL,
			TimeoutSeconds:       int(cloudflare.DefaultTimeout / time.Second),
			ExportTimeoutSeconds: int(cloudflare.DefaultExportTimeout / time.Second),
			ZonePageSize:         cloudflare.DefaultZonePageSize,
			RecordPageSize:       cloudflare.DefaultRecordPageSize,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads cfman.yaml from dir on top of the defaults. A missing file is
// not an error; keys absent from the file keep their default values.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, domain.WrapOp("loading "+path, domain.ErrConfigReadFailed)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.WrapOp("parsing "+path, domain.ErrConfigParseFailed)
	}

	if cfg.API.ZonePageSize <= 0 {
		cfg.API.ZonePageSize = cloudflare.DefaultZonePageSize
	}
	if cfg.API.RecordPageSize <= 0 {
		cfg.API.RecordPageSize = cloudflare.DefaultRecordPageSize
	}
	return cfg, nil
}

func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return cloudflare.DefaultTimeout
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c *Config) ExportTimeout() time.Duration {
	if c.API.ExportTimeoutSeconds <= 0 {
		return cloudflare.DefaultExportTimeout
	}
	return time.Duration(c.API.ExportTimeoutSeconds) * time.Second
}
