package settings

import (
	"fmt"
	"math/rand/v2"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Alphabet is shared with generated filenames.
const Alphabet = "0123456789abcdef"

// SuffixLength is the length of the random database name suffix.
const SuffixLength = 11

type Config struct {
	Mongo MongoConfig `mapstructure:"mongo"`
	Log   LogConfig   `mapstructure:"log"`
}

type MongoConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the environment (MONGO_HOST, MONGO_PORT,
// MONGO_DATABASE, LOG_LEVEL, LOG_FORMAT) on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Mongo.Port <= 0 || cfg.Mongo.Port > 65535 {
		return nil, fmt.Errorf("invalid mongo port %d", cfg.Mongo.Port)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mongo.host", "127.0.0.1")
	v.SetDefault("mongo.port", 27017)
	v.SetDefault("mongo.database", "grid_storage")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// URL formats the connection string, e.g. mongodb://127.0.0.1:27017/grid_storage.
func (m MongoConfig) URL() string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(m.Host, strconv.Itoa(m.Port)),
		Path:   "/" + m.Database,
	}
	return u.String()
}

// Unique returns a copy of m pointing at a fresh database named
// <database>_<random suffix>.
func (m MongoConfig) Unique() MongoConfig {
	m.Database = m.Database + "_" + RandomName(SuffixLength)
	return m
}

func (m MongoConfig) UniqueURL() string {
	return m.Unique().URL()
}

func GenerateChar() byte {
	return Alphabet[rand.IntN(len(Alphabet))]
}

func RandomName(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = GenerateChar()
	}
	return string(b)
}
