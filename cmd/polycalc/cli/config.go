package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpoly/poly"
)

// Flag and configuration keys. Environment variables use the POLYCALC_
// prefix with dashes turned into underscores (POLYCALC_MAX_TERMS).
const (
	keyConfig      = "config"
	keyInput       = "input"
	keyX           = "x"
	keyTime        = "time"
	keyRepeat      = "repeat"
	keyFormat      = "format"
	keyMaxTerms    = "max-terms"
	keyNonNegative = "non-negative"
	keyLogLevel    = "log-level"
	keyLogFmt      = "log-fmt"

	envPrefix = "POLYCALC"
)

// Output formats.
const (
	formatTable     = "table"
	formatCanonical = "canonical"
)

// Config is the resolved polycalc configuration.
type Config struct {
	Input       string
	X           float64
	XSet        bool
	Time        bool
	Repeat      int
	Format      string
	MaxTerms    int
	NonNegative bool
	LogLevel    string
	LogFmt      string
}

// registerFlags declares every polycalc flag on fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "Path to a YAML, TOML or JSON config file.")
	fs.StringP(keyInput, "i", "", "Read polynomials from this file instead of stdin.")
	fs.Float64(keyX, 0, "Evaluation point. When unset it is read after the two polynomials.")
	fs.Bool(keyTime, false, "Report how long Add and Multiply take.")
	fs.Int(keyRepeat, 1, "Number of runs per operation when --time is set.")
	fs.String(keyFormat, formatTable, "Output format: table or canonical.")
	fs.Int(keyMaxTerms, poly.DefaultMaxTerms, "Largest term count accepted per polynomial.")
	fs.Bool(keyNonNegative, false, "Reject negative exponents.")
	fs.String(keyLogLevel, "warn", "Log level: debug, info, warn or error.")
	fs.String(keyLogFmt, "text", "Log format: text or json.")
}

// loadConfig merges flags, POLYCALC_* environment variables and the optional
// config file (read through fs). Explicit flags win over the environment,
// which wins over the file.
func loadConfig(fs afero.Fs, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	path := v.GetString(keyConfig)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		Input:       v.GetString(keyInput),
		X:           v.GetFloat64(keyX),
		XSet:        v.IsSet(keyX),
		Time:        v.GetBool(keyTime),
		Repeat:      v.GetInt(keyRepeat),
		Format:      strings.ToLower(strings.TrimSpace(v.GetString(keyFormat))),
		MaxTerms:    v.GetInt(keyMaxTerms),
		NonNegative: v.GetBool(keyNonNegative),
		LogLevel:    v.GetString(keyLogLevel),
		LogFmt:      v.GetString(keyLogFmt),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case formatTable, formatCanonical:
	default:
		return fmt.Errorf("invalid format %q: expected %s or %s", c.Format, formatTable, formatCanonical)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("invalid repeat %d: must be >= 1", c.Repeat)
	}
	if c.MaxTerms < 0 {
		return fmt.Errorf("invalid max-terms %d: must be >= 0", c.MaxTerms)
	}

	return nil
}

// decodeOptions maps the configuration onto poly decoding options.
func (c Config) decodeOptions() []poly.Option {
	opts := []poly.Option{poly.WithMaxTerms(c.MaxTerms)}
	if c.NonNegative {
		opts = append(opts, poly.WithNonNegativeExponents())
	}

	return opts
}
