package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "COFFEE"
	configFileEnvName = envPrefix + "_CONFIG_FILE"
)

type api struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type brokerTLS struct {
	CAFile   string `mapstructure:"ca_file"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// Enabled reports whether any of the files is set,
// a partial set is rejected by [LoadFile].
func (t brokerTLS) Enabled() bool {
	return t.CAFile != "" || t.CertFile != "" || t.KeyFile != ""
}

func (t brokerTLS) complete() bool {
	return t.CAFile != "" && t.CertFile != "" && t.KeyFile != ""
}

type changeFeed struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topic              string    `mapstructure:"topic"`
	TLS                brokerTLS `mapstructure:"tls"`
}

// Enabled reports whether mutations are published to kafka.
func (c changeFeed) Enabled() bool {
	return len(c.SeedBrokers) != 0
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	TopN           int        `mapstructure:"top_n"`
	API            api        `mapstructure:"api"`
	ChangeFeed     changeFeed `mapstructure:"change_feed"`
}

var defaults = map[string]any{
	"log_level":                        "info",
	"http_server_addr":                 ":8000",
	"top_n":                            3,
	"api.base_url":                     "http://localhost:8080/api/producto",
	"api.request_timeout":              "0s",
	"change_feed.seed_brokers":         []string{},
	"change_feed.schema_registry_urls": []string{},
	"change_feed.topic":                "coffee-product-changes",
	"change_feed.tls.ca_file":          "",
	"change_feed.tls.cert_file":        "",
	"change_feed.tls.key_file":         "",
}

// Load reads the config file named by the command line or the
// environment and exits the process with code 2 on failure.
func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the YAML file at path over the defaults.
// An empty path skips the file.
// Environment variables COFFEE_<KEY> override both, e.g. COFFEE_API_BASE_URL.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if cfg.TopN < 0 {
		return Config{}, fmt.Errorf("top_n must not be negative: %d", cfg.TopN)
	}
	if cfg.ChangeFeed.Enabled() && len(cfg.ChangeFeed.SchemaRegistryURLs) == 0 {
		return Config{}, errors.New("change_feed.schema_registry_urls is required with seed brokers")
	}
	if tls := cfg.ChangeFeed.TLS; tls.Enabled() && !tls.complete() {
		return Config{}, errors.New("change_feed.tls requires ca_file, cert_file and key_file")
	}

	return cfg, nil
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	TopN=%d

	API:
	BaseURL=%q
	RequestTimeout=%q

	ChangeFeed:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topic=%q
	TLS:
		CAFile=%q
		CertFile=%q
		KeyFile=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.TopN,
		c.API.BaseURL,
		c.API.RequestTimeout,
		c.ChangeFeed.SeedBrokers,
		c.ChangeFeed.SchemaRegistryURLs,
		c.ChangeFeed.Topic,
		c.ChangeFeed.TLS.CAFile,
		c.ChangeFeed.TLS.CertFile,
		c.ChangeFeed.TLS.KeyFile,
	)
}
