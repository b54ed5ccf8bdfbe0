// internal/types/config.go
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aaronwald/indexstats/internal/utils"
)

// Defaults applied by DefaultConfig and ApplyDefaults
const (
	DefaultListen         = ":8000"
	DefaultTierAttribute  = "data"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config is the runtime configuration shared by the CLI and the API server
type Config struct {
	// ElasticsearchHost keeps the key name used by earlier deployments.
	ElasticsearchHost string              `yaml:"elasticsearch_host,omitempty" validate:"omitempty,url"`
	Elasticsearch     ElasticsearchConfig `yaml:"elasticsearch,omitempty"`

	// Snapshot points at a directory of saved API payloads; when set the
	// cluster is not contacted.
	Snapshot string `yaml:"snapshot,omitempty"`

	Listen        string        `yaml:"listen" validate:"required"`
	TierAttribute string        `yaml:"tier_attribute" validate:"required"`
	StrictShards  bool          `yaml:"strict_shards,omitempty"`
	Timeout       time.Duration `yaml:"timeout"`
	Log           LogConfig     `yaml:"log"`
}

// ElasticsearchConfig holds cluster connection settings
type ElasticsearchConfig struct {
	Addresses []string `yaml:"addresses,omitempty" validate:"dive,url"`
	Username  string   `yaml:"username,omitempty"`
	Password  string   `yaml:"password,omitempty"`
	APIKey    string   `yaml:"api_key,omitempty"`
	CACert    string   `yaml:"ca_cert,omitempty"`
}

// LogConfig selects log level and output format
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var configValidate = validator.New()

// DefaultConfig returns a configuration with every default filled in
func DefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields
func (c *Config) ApplyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.TierAttribute == "" {
		c.TierAttribute = DefaultTierAttribute
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultRequestTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Addresses returns the cluster URLs, folding in the legacy host key
func (c *Config) Addresses() []string {
	addrs := append([]string{}, c.Elasticsearch.Addresses...)
	if c.ElasticsearchHost != "" {
		addrs = append([]string{c.ElasticsearchHost}, addrs...)
	}
	return addrs
}

// Validate checks field constraints and that a data source is configured
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed %q check", fe.Namespace(), fe.Tag())
		}
		return err
	}

	if c.Snapshot == "" && len(c.Addresses()) == 0 {
		return fmt.Errorf("either elasticsearch_host, elasticsearch.addresses or snapshot is required")
	}

	if err := utils.ValidateListenAddr(c.Listen); err != nil {
		return err
	}

	if c.Elasticsearch.APIKey != "" && c.Elasticsearch.Username != "" {
		return fmt.Errorf("elasticsearch: api_key and username are mutually exclusive")
	}

	return nil
}

// LoadConfig reads a YAML config file and applies defaults.
// An empty path yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := utils.LoadYAML[Config](path)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
		cfg = loaded
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyEnv overlays INDEXSTATS_* environment variables onto the config.
// PORT is honored for container platforms that inject it.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("INDEXSTATS_ELASTICSEARCH_HOST"); v != "" {
		c.ElasticsearchHost = v
	}
	if v := getenv("INDEXSTATS_ELASTICSEARCH_ADDRESSES"); v != "" {
		c.Elasticsearch.Addresses = splitList(v)
	}
	if v := getenv("INDEXSTATS_ELASTICSEARCH_USERNAME"); v != "" {
		c.Elasticsearch.Username = v
	}
	if v := getenv("INDEXSTATS_ELASTICSEARCH_PASSWORD"); v != "" {
		c.Elasticsearch.Password = v
	}
	if v := getenv("INDEXSTATS_ELASTICSEARCH_API_KEY"); v != "" {
		c.Elasticsearch.APIKey = v
	}
	if v := getenv("INDEXSTATS_SNAPSHOT"); v != "" {
		c.Snapshot = v
	}
	if v := getenv("PORT"); v != "" {
		c.Listen = ":" + v
	}
	if v := getenv("INDEXSTATS_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := getenv("INDEXSTATS_TIER_ATTRIBUTE"); v != "" {
		c.TierAttribute = v
	}
	if v := getenv("INDEXSTATS_STRICT_SHARDS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("INDEXSTATS_STRICT_SHARDS: %w", err)
		}
		c.StrictShards = b
	}
	if v := getenv("INDEXSTATS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("INDEXSTATS_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := getenv("INDEXSTATS_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv("INDEXSTATS_LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
