package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the client, the terminal form and
// the stub server. Zero values mean "unspecified" and are replaced by
// WithDefaults.
type Config struct {
	Endpoint         string   `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	RequestTimeoutMS int      `json:"request_timeout_ms" yaml:"request_timeout_ms" toml:"request_timeout_ms"`
	AnimationMS      int      `json:"animation_ms" yaml:"animation_ms" toml:"animation_ms"`
	ToastMS          int      `json:"toast_ms" yaml:"toast_ms" toml:"toast_ms"`
	ScrollDelayMS    int      `json:"scroll_delay_ms" yaml:"scroll_delay_ms" toml:"scroll_delay_ms"`
	ConfettiCount    int      `json:"confetti_count" yaml:"confetti_count" toml:"confetti_count"`
	Strict           bool     `json:"strict" yaml:"strict" toml:"strict"`
	LogLevel         string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFile          string   `json:"log_file" yaml:"log_file" toml:"log_file"`
	StubAddr         string   `json:"stub_addr" yaml:"stub_addr" toml:"stub_addr"`
	CORSOrigins      []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Defaults used when a field is left unspecified.
const (
	DefaultEndpoint      = "http://localhost:5000"
	DefaultAnimationMS   = 1500
	DefaultToastMS       = 5000
	DefaultScrollDelayMS = 300
	DefaultConfettiCount = 50
	DefaultLogLevel      = "info"
	DefaultStubAddr      = ":5000"
)

// WithDefaults returns a copy of c with unspecified fields filled in.
// RequestTimeoutMS stays 0, which means no timeout.
func (c Config) WithDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.AnimationMS <= 0 {
		c.AnimationMS = DefaultAnimationMS
	}
	if c.ToastMS <= 0 {
		c.ToastMS = DefaultToastMS
	}
	if c.ScrollDelayMS <= 0 {
		c.ScrollDelayMS = DefaultScrollDelayMS
	}
	if c.ConfettiCount <= 0 {
		c.ConfettiCount = DefaultConfettiCount
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.StubAddr == "" {
		c.StubAddr = DefaultStubAddr
	}
	if c.RequestTimeoutMS < 0 {
		c.RequestTimeoutMS = 0
	}
	return c
}

// ApplyEnv overrides c from HOMEPRICE_ENDPOINT and HOMEPRICE_LOG_LEVEL.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv("HOMEPRICE_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("HOMEPRICE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return c
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func (c Config) RequestTimeout() time.Duration { return ms(c.RequestTimeoutMS) }
func (c Config) AnimationDuration() time.Duration { return ms(c.AnimationMS) }
func (c Config) ToastDuration() time.Duration { return ms(c.ToastMS) }
func (c Config) ScrollDelay() time.Duration { return ms(c.ScrollDelayMS) }

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	if err := decodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadValues reads a property input file (same formats as Load) holding a
// flat map of field key to value. Numbers and strings are kept as the text
// a user would have typed; null becomes an empty value.
func LoadValues(path string) (map[string]string, error) {
	if path == "" {
		return nil, fmt.Errorf("empty input path")
	}
	raw := map[string]any{}
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		s, err := scalarText(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = s
	}
	return out, nil
}

func scalarText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func decodeFile(path string, v any) error {
	p, err := ExpandHome(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, v)
	case ".json":
		return json.Unmarshal(b, v)
	case ".toml":
		return toml.Unmarshal(b, v)
	default:
		return fmt.Errorf("unsupported config extension: %s", ext)
	}
}

// ExpandHome expands a bare "~" or a leading "~/" to the user's home
// directory. Other paths, including "~user/...", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
