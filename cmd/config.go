package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	consts "github.com/izza-m1/Secgap-Analyzer/internal/shared/constants"
)

const (
	defaultTimeoutSecs = int(consts.FetchTimeout / time.Second)
	defaultUserAgent   = consts.DefaultUserAgent
	defaultFormat      = "text"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Defaults DefaultValues
	Serve    ServeConfig
	Scan     ScanConfig
}

// DefaultValues apply to every command.
type DefaultValues struct {
	TimeoutSecs int
	UserAgent   string
	Verbose     bool
}

// ServeConfig holds API server settings.
type ServeConfig struct {
	Addr            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// ScanConfig holds settings for the scan commands.
type ScanConfig struct {
	Format string
}

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Defaults: DefaultValues{
			TimeoutSecs: defaultTimeoutSecs,
			UserAgent:   defaultUserAgent,
		},
		Serve: ServeConfig{
			Addr:            consts.DefaultListenAddr,
			CORSOrigins:     []string{},
			ShutdownTimeout: consts.DefaultShutdownTimeout,
		},
		Scan: ScanConfig{
			Format: defaultFormat,
		},
	}
}

// resolveConfig layers explicit flags over config file and environment values
// over built-in defaults. Flags that the running command does not define fall
// through to the lower layers.
func resolveConfig(cmd *cobra.Command) *CLIConfig {
	cfg := newCLIConfig()
	flags := cmd.Flags()

	cfg.Defaults.TimeoutSecs = intSetting(flags, "timeout", "defaults.timeout_secs", cfg.Defaults.TimeoutSecs)
	cfg.Defaults.UserAgent = stringSetting(flags, "user-agent", "defaults.user_agent", cfg.Defaults.UserAgent)
	cfg.Defaults.Verbose = boolSetting(flags, "verbose", "defaults.verbose", cfg.Defaults.Verbose)

	cfg.Serve.Addr = stringSetting(flags, "addr", "serve.addr", cfg.Serve.Addr)
	cfg.Serve.CORSOrigins = stringSliceSetting(flags, "cors-origins", "serve.cors_origins", cfg.Serve.CORSOrigins)
	cfg.Serve.ShutdownTimeout = durationSetting(flags, "shutdown-timeout", "serve.shutdown_timeout", cfg.Serve.ShutdownTimeout)

	cfg.Scan.Format = stringSetting(flags, "format", "scan.format", cfg.Scan.Format)

	return cfg
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	flag := flags.Lookup(name)
	return flag != nil && flag.Changed
}

func intSetting(flags *pflag.FlagSet, name, key string, fallback int) int {
	if flagChanged(flags, name) {
		if v, err := flags.GetInt(name); err == nil {
			return v
		}
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func stringSetting(flags *pflag.FlagSet, name, key, fallback string) string {
	if flagChanged(flags, name) {
		if v, err := flags.GetString(name); err == nil {
			return v
		}
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func boolSetting(flags *pflag.FlagSet, name, key string, fallback bool) bool {
	if flagChanged(flags, name) {
		if v, err := flags.GetBool(name); err == nil {
			return v
		}
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return fallback
}

func stringSliceSetting(flags *pflag.FlagSet, name, key string, fallback []string) []string {
	if flagChanged(flags, name) {
		if v, err := flags.GetStringSlice(name); err == nil {
			return v
		}
	}
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	return fallback
}

func durationSetting(flags *pflag.FlagSet, name, key string, fallback time.Duration) time.Duration {
	if flagChanged(flags, name) {
		if v, err := flags.GetDuration(name); err == nil {
			return v
		}
	}
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	return fallback
}
