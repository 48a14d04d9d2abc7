package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/servarr"
)

// Config captures runtime configuration for the application.
type Config struct {
	Path    string
	Radarr  []Servarr
	Sonarr  []Servarr
	Lidarr  []Servarr
	Logging Logging
	Network Network
	UI      UI
	Flags   map[string]string
	Args    []string
}

// Servarr addresses one server. Only the first entry per backend is used.
type Servarr struct {
	Name     string `yaml:"name" toml:"name"`
	Host     string `yaml:"host" toml:"host"`
	Port     int    `yaml:"port" toml:"port"`
	URI      string `yaml:"uri" toml:"uri"`
	APIToken string `yaml:"api_token" toml:"api_token"`
	SSL      bool   `yaml:"ssl" toml:"ssl"`
}

type Logging struct {
	File  string `yaml:"file" toml:"file"`
	Level string `yaml:"level" toml:"level"`
	Trace bool   `yaml:"trace" toml:"trace"`
}

type Network struct {
	QueueSize int      `yaml:"queue_size" toml:"queue_size"`
	Workers   int      `yaml:"workers" toml:"workers"`
	Timeout   Duration `yaml:"timeout" toml:"timeout"`
	Throttle  Duration `yaml:"throttle" toml:"throttle"`
}

type UI struct {
	TickRate      Duration `yaml:"tick_rate" toml:"tick_rate"`
	TickUntilPoll int      `yaml:"tick_until_poll" toml:"tick_until_poll"`
}

// Duration reads "250ms"-style strings from YAML and TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// file is the on-disk shape.
type file struct {
	Radarr  []Servarr `yaml:"radarr" toml:"radarr"`
	Sonarr  []Servarr `yaml:"sonarr" toml:"sonarr"`
	Lidarr  []Servarr `yaml:"lidarr" toml:"lidarr"`
	Logging Logging   `yaml:"logging" toml:"logging"`
	Network Network   `yaml:"network" toml:"network"`
	UI      UI        `yaml:"ui" toml:"ui"`
}

const (
	envPrefix   = "SERVARR_DASH_"
	envConfig   = envPrefix + "CONFIG"
	envLogFile  = envPrefix + "LOG_FILE"
	envLogLevel = envPrefix + "LOG_LEVEL"
	envTrace    = envPrefix + "TRACE"
	envWorkers  = envPrefix + "WORKERS"
	envQueue    = envPrefix + "QUEUE_SIZE"
	envTimeout  = envPrefix + "TIMEOUT"
	envThrottle = envPrefix + "THROTTLE"
	envTickRate = envPrefix + "TICK_RATE"
)

const (
	DefaultQueueSize     = 500
	DefaultWorkers       = 2
	DefaultTimeout       = 30 * time.Second
	DefaultTickRate      = 50 * time.Millisecond
	DefaultTickUntilPoll = 400
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Network: Network{
			QueueSize: DefaultQueueSize,
			Workers:   DefaultWorkers,
			Timeout:   Duration(DefaultTimeout),
		},
		UI: UI{
			TickRate:      Duration(DefaultTickRate),
			TickUntilPoll: DefaultTickUntilPoll,
		},
	}
}

// DefaultPath returns the first config file found in the user config
// directory, or the YAML path when none exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	base := filepath.Join(dir, "servarr-dash")
	for _, name := range []string{"config.yml", "config.yaml", "config.toml"} {
		path := filepath.Join(base, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(base, "config.yml")
}

// LoadFile merges the file at path over cfg. The format follows the
// extension: .toml is TOML, anything else YAML. A missing file is not an
// error.
func LoadFile(path string, cfg Config) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	f := file{Logging: cfg.Logging, Network: cfg.Network, UI: cfg.UI}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(content, &f); err != nil {
			return Config{}, fmt.Errorf("decode toml: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(content, &f); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	}
	cfg.Path = path
	cfg.Radarr = f.Radarr
	cfg.Sonarr = f.Sonarr
	cfg.Lidarr = f.Lidarr
	cfg.Logging = f.Logging
	cfg.Network = f.Network
	cfg.UI = f.UI
	return cfg, nil
}

// RegisterFlags adds the configuration flags to fs. The cobra root command
// registers them as persistent flags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to the YAML or TOML config file")
	fs.String("log-file", "", "path to the log file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.Int("workers", 0, "number of concurrent network workers")
	fs.Int("queue-size", 0, "capacity of the outbound request queue")
	fs.Duration("timeout", 0, "per-request HTTP timeout")
	fs.Duration("throttle", 0, "minimum spacing between requests")
	fs.Duration("tick-rate", 0, "UI tick interval")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("servarr-dash", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration from an already parsed flag set.
// Precedence: defaults, config file, environment, then flags that were set.
func FromFlags(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := envOrDefault(env, envConfig, "")
	if fs.Changed("config") {
		path, _ = fs.GetString("config")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	cfg, err := LoadFile(path, Default())
	if err != nil {
		return Config{}, err
	}
	if explicit && cfg.Path == "" {
		return Config{}, fmt.Errorf("config file %q not found or empty", path)
	}

	cfg.Logging.File = envOrDefault(env, envLogFile, cfg.Logging.File)
	cfg.Logging.Level = envOrDefault(env, envLogLevel, cfg.Logging.Level)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)
	cfg.Network.Workers = envOrInt(env, envWorkers, cfg.Network.Workers)
	cfg.Network.QueueSize = envOrInt(env, envQueue, cfg.Network.QueueSize)
	cfg.Network.Timeout = Duration(envOrDuration(env, envTimeout, cfg.Network.Timeout.Std()))
	cfg.Network.Throttle = Duration(envOrDuration(env, envThrottle, cfg.Network.Throttle.Std()))
	cfg.UI.TickRate = Duration(envOrDuration(env, envTickRate, cfg.UI.TickRate.Std()))
	for _, b := range route.AllBackends() {
		applyServarrEnv(env, b, cfg.servarrs(b))
	}

	if fs.Changed("log-file") {
		cfg.Logging.File, _ = fs.GetString("log-file")
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level, _ = fs.GetString("log-level")
	}
	if fs.Changed("trace") {
		cfg.Logging.Trace, _ = fs.GetBool("trace")
	}
	if fs.Changed("workers") {
		cfg.Network.Workers, _ = fs.GetInt("workers")
	}
	if fs.Changed("queue-size") {
		cfg.Network.QueueSize, _ = fs.GetInt("queue-size")
	}
	if fs.Changed("timeout") {
		v, _ := fs.GetDuration("timeout")
		cfg.Network.Timeout = Duration(v)
	}
	if fs.Changed("throttle") {
		v, _ := fs.GetDuration("throttle")
		cfg.Network.Throttle = Duration(v)
	}
	if fs.Changed("tick-rate") {
		v, _ := fs.GetDuration("tick-rate")
		cfg.UI.TickRate = Duration(v)
	}

	cfg.Flags = map[string]string{
		"config":    cfg.Path,
		"logFile":   cfg.Logging.File,
		"logLevel":  cfg.Logging.Level,
		"trace":     strconv.FormatBool(cfg.Logging.Trace),
		"workers":   strconv.Itoa(cfg.Network.Workers),
		"queueSize": strconv.Itoa(cfg.Network.QueueSize),
		"timeout":   cfg.Network.Timeout.Std().String(),
		"throttle":  cfg.Network.Throttle.Std().String(),
		"tickRate":  cfg.UI.TickRate.Std().String(),
	}
	return cfg, nil
}

func (c *Config) servarrs(b route.Backend) *[]Servarr {
	switch b {
	case route.Sonarr:
		return &c.Sonarr
	case route.Lidarr:
		return &c.Lidarr
	default:
		return &c.Radarr
	}
}

// applyServarrEnv overrides the first entry of a backend from
// SERVARR_DASH_<BACKEND>_{HOST,PORT,URI,API_TOKEN,SSL}. Any of them being set
// creates the entry.
func applyServarrEnv(env map[string]string, b route.Backend, list *[]Servarr) {
	prefix := envPrefix + strings.ToUpper(b.String()) + "_"
	keys := []string{"HOST", "PORT", "URI", "API_TOKEN", "SSL"}
	present := false
	for _, k := range keys {
		if _, ok := env[prefix+k]; ok {
			present = true
			break
		}
	}
	if !present {
		return
	}
	if len(*list) == 0 {
		*list = []Servarr{{}}
	}
	s := &(*list)[0]
	s.Host = envOrDefault(env, prefix+"HOST", s.Host)
	s.Port = envOrInt(env, prefix+"PORT", s.Port)
	s.URI = envOrDefault(env, prefix+"URI", s.URI)
	s.APIToken = envOrDefault(env, prefix+"API_TOKEN", s.APIToken)
	s.SSL = envOrBool(env, prefix+"SSL", s.SSL)
}

// Backends lists the configured backends in tab order.
func (c Config) Backends() []route.Backend {
	var out []route.Backend
	for _, b := range route.AllBackends() {
		if len(*c.servarrs(b)) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Servarrs returns the client configuration of every configured backend.
func (c Config) Servarrs() map[route.Backend]servarr.Config {
	out := make(map[route.Backend]servarr.Config)
	for _, b := range c.Backends() {
		s := (*c.servarrs(b))[0]
		out[b] = servarr.Config{
			Name:     s.Name,
			Host:     s.Host,
			Port:     s.Port,
			URI:      s.URI,
			APIToken: s.APIToken,
			SSL:      s.SSL,
			Timeout:  c.Network.Timeout.Std(),
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	backends := cfg.Backends()
	if len(backends) == 0 {
		return errors.New("no servarr configured: add a radarr, sonarr or lidarr entry")
	}
	for _, b := range backends {
		s := (*cfg.servarrs(b))[0]
		if strings.TrimSpace(s.Host) == "" && strings.TrimSpace(s.URI) == "" {
			return fmt.Errorf("%s: host or uri is required", b)
		}
		if strings.TrimSpace(s.APIToken) == "" {
			return fmt.Errorf("%s: api_token is required", b)
		}
		if s.Port < 0 || s.Port > 65535 {
			return fmt.Errorf("%s: port must be within 0-65535 (got %d)", b, s.Port)
		}
	}
	if cfg.Network.Workers < 0 {
		return fmt.Errorf("network.workers must be >= 0 (got %d)", cfg.Network.Workers)
	}
	if cfg.Network.QueueSize <= 0 {
		return fmt.Errorf("network.queue_size must be > 0 (got %d)", cfg.Network.QueueSize)
	}
	if cfg.UI.TickRate <= 0 {
		return fmt.Errorf("ui.tick_rate must be > 0 (got %s)", cfg.UI.TickRate.Std())
	}
	if cfg.Logging.Level != "" {
		if _, err := charmLog.ParseLevel(cfg.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	return nil
}
