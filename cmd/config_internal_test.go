package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestIntSettingPrecedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("timeout", defaultTimeoutSecs, "")

	if got := intSetting(flags, "timeout", "defaults.timeout_secs", 5); got != 5 {
		t.Fatalf("expected fallback 5, got %d", got)
	}

	viper.Set("defaults.timeout_secs", 12)
	if got := intSetting(flags, "timeout", "defaults.timeout_secs", 5); got != 12 {
		t.Fatalf("expected config value 12, got %d", got)
	}

	if err := flags.Set("timeout", "3"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if got := intSetting(flags, "timeout", "defaults.timeout_secs", 5); got != 3 {
		t.Fatalf("explicit flag should win, got %d", got)
	}
}

func TestStringSettingWithoutFlag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	if got := stringSetting(flags, "addr", "serve.addr", "127.0.0.1:5000"); got != "127.0.0.1:5000" {
		t.Fatalf("expected fallback, got %q", got)
	}
	viper.Set("serve.addr", "0.0.0.0:8000")
	if got := stringSetting(flags, "addr", "serve.addr", "127.0.0.1:5000"); got != "0.0.0.0:8000" {
		t.Fatalf("expected config value, got %q", got)
	}
	if got := stringSetting(nil, "addr", "serve.addr", "x"); got != "0.0.0.0:8000" {
		t.Fatalf("nil flag set should still read config, got %q", got)
	}
}

func TestBoolAndDurationSettings(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")
	flags.Duration("shutdown-timeout", time.Second, "")

	viper.Set("defaults.verbose", true)
	viper.Set("serve.shutdown_timeout", "45s")

	if !boolSetting(flags, "verbose", "defaults.verbose", false) {
		t.Fatal("expected verbose from config")
	}
	if got := durationSetting(flags, "shutdown-timeout", "serve.shutdown_timeout", time.Second); got != 45*time.Second {
		t.Fatalf("expected 45s, got %v", got)
	}

	if err := flags.Set("verbose", "false"); err != nil {
		t.Fatalf("failed to set bool flag: %v", err)
	}
	if boolSetting(flags, "verbose", "defaults.verbose", true) {
		t.Fatal("explicit --verbose=false should win over config")
	}
}

func TestResolveConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "secgap.yaml")
	content := `defaults:
  timeout_secs: 9
  user_agent: secgap-test
serve:
  addr: 0.0.0.0:9000
  cors_origins:
    - https://a.example
    - https://b.example
scan:
  format: yaml
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("addr", "127.0.0.1:5000", "")
	if err := cmd.Flags().Set("addr", "127.0.0.1:7000"); err != nil {
		t.Fatalf("set addr: %v", err)
	}

	cfg := resolveConfig(cmd)

	if cfg.Defaults.TimeoutSecs != 9 {
		t.Errorf("timeout = %d, want 9", cfg.Defaults.TimeoutSecs)
	}
	if cfg.Defaults.UserAgent != "secgap-test" {
		t.Errorf("user agent = %q", cfg.Defaults.UserAgent)
	}
	if cfg.Serve.Addr != "127.0.0.1:7000" {
		t.Errorf("addr = %q, flag should override config", cfg.Serve.Addr)
	}
	if len(cfg.Serve.CORSOrigins) != 2 || cfg.Serve.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors origins = %v", cfg.Serve.CORSOrigins)
	}
	if cfg.Scan.Format != "yaml" {
		t.Errorf("format = %q, want yaml", cfg.Scan.Format)
	}
	if cfg.Serve.ShutdownTimeout != 30*time.Second {
		t.Errorf("shutdown timeout = %v, want default", cfg.Serve.ShutdownTimeout)
	}
}

func TestInitConfigReadsEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	origCfg := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = origCfg })

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SECGAP_SERVE_ADDR", "0.0.0.0:5050")

	if err := initConfig(); err != nil {
		t.Fatalf("initConfig without a config file should succeed: %v", err)
	}

	cfg := resolveConfig(&cobra.Command{Use: "test"})
	if cfg.Serve.Addr != "0.0.0.0:5050" {
		t.Fatalf("addr = %q, want value from SECGAP_SERVE_ADDR", cfg.Serve.Addr)
	}
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	origCfg := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { cfgFile = origCfg })

	if err := initConfig(); err == nil {
		t.Fatal("expected an error for a missing --config file")
	}
}
