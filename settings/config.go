package settings

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. THEO_PRICING_RATE.
const EnvPrefix = "THEO"

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Pricing    PricingConfig    `mapstructure:"pricing"`
	Volatility VolatilityConfig `mapstructure:"volatility"`
	Tracking   TrackingConfig   `mapstructure:"tracking"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type PricingConfig struct {
	Rate float64 `mapstructure:"rate"`
}

type VolatilityConfig struct {
	Window int `mapstructure:"window"`
}

type TrackingConfig struct {
	Sink       string       `mapstructure:"sink"` // "log", "influx" or "none"
	Experiment string       `mapstructure:"experiment"`
	Influx     InfluxConfig `mapstructure:"influx"`
}

type InfluxConfig struct {
	Addr      string        `mapstructure:"addr"`
	User      string        `mapstructure:"user"`
	Password  string        `mapstructure:"password"`
	Database  string        `mapstructure:"database"`
	Precision string        `mapstructure:"precision"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("pricing.rate", 0.05)
	v.SetDefault("volatility.window", 252)
	v.SetDefault("tracking.sink", "log")
	v.SetDefault("tracking.experiment", "theo")
	v.SetDefault("tracking.influx.addr", "")
	v.SetDefault("tracking.influx.user", "")
	v.SetDefault("tracking.influx.password", "")
	v.SetDefault("tracking.influx.database", "theo")
	v.SetDefault("tracking.influx.precision", "us")
	v.SetDefault("tracking.influx.timeout", 10*time.Second)
}

// Load reads defaults, then the config file at path (if any), then THEO_*
// environment variables.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Volatility.Window <= 0 {
		return errors.Errorf("volatility.window must be positive, got %d", c.Volatility.Window)
	}
	switch c.Tracking.Sink {
	case "log", "none":
	case "influx":
		if c.Tracking.Influx.Addr == "" {
			return errors.New("tracking.influx.addr is required for the influx sink")
		}
	default:
		return errors.Errorf("unknown tracking.sink %q", c.Tracking.Sink)
	}
	return nil
}
