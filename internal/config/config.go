// Package config loads the scenectl configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zeusync/scenedoc/internal/observability/log"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Transports understood by Assets.Transport.
const (
	TransportHTTP = "http"
	TransportWS   = "ws"
)

type Config struct {
	Log      log.Config `yaml:"log"`
	Assets   Assets     `yaml:"assets"`
	Document Document   `yaml:"document"`
	Server   Server     `yaml:"server"`
}

// Assets selects where remote references are fetched from.
type Assets struct {
	BaseURL   string        `yaml:"base_url"`
	Transport string        `yaml:"transport"`
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	// CacheSize bounds the fetch cache; zero disables it.
	CacheSize int `yaml:"cache_size"`
}

// Document controls how documents are written.
type Document struct {
	Format string `yaml:"format"`
	Indent string `yaml:"indent"`
}

type Server struct {
	Address    string `yaml:"address"`
	Root       string `yaml:"root"`
	MaxClients int    `yaml:"max_clients"`
}

func Default() Config {
	return Config{
		Log: log.Config{
			Level:    "info",
			Encoding: "console",
		},
		Assets: Assets{
			BaseURL:   "http://127.0.0.1:8080/assets/",
			Transport: TransportHTTP,
			Endpoint:  "ws://127.0.0.1:8080/ws",
			Timeout:   10 * time.Second,
			CacheSize: 256,
		},
		Document: Document{
			Format: "json",
			Indent: "  ",
		},
		Server: Server{
			Address:    "127.0.0.1:8080",
			Root:       ".",
			MaxClients: 1000,
		},
	}
}

// Load reads the file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, err := LoadReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadReader decodes YAML over the defaults, so omitted keys keep their
// default value. Unknown keys are rejected.
func LoadReader(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Assets.Transport {
	case TransportHTTP, TransportWS:
	default:
		return fmt.Errorf("%w: assets.transport %q", ErrInvalidConfig, c.Assets.Transport)
	}
	switch c.Document.Format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: document.format %q", ErrInvalidConfig, c.Document.Format)
	}
	if c.Assets.Timeout < 0 {
		return fmt.Errorf("%w: assets.timeout is negative", ErrInvalidConfig)
	}
	if c.Assets.CacheSize < 0 {
		return fmt.Errorf("%w: assets.cache_size is negative", ErrInvalidConfig)
	}
	if c.Server.MaxClients < 0 {
		return fmt.Errorf("%w: server.max_clients is negative", ErrInvalidConfig)
	}
	return nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
