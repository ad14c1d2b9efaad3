package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dynom/speedtest/cmd/speedtest/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTestCommand(s *RootSettings) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&s.LogLevel, "log-level", "info", "")
	cmd.Flags().Var(&s.LogFormat, "log-format", "")

	return cmd
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(file, []byte("[log]\nlevel = \"debug\"\nformat = \"json\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("defaults", func(t *testing.T) {
		s := &RootSettings{LogFormat: config.LFText}
		conf, err := loadConfig(newTestCommand(s), s)
		if err != nil {
			t.Fatalf("loadConfig() unexpected error %s", err)
		}

		if conf.Log.Level != "info" || conf.Log.Format != config.LFText {
			t.Errorf("loadConfig() expected defaults, got %+v", conf)
		}
	})

	t.Run("file", func(t *testing.T) {
		s := &RootSettings{ConfigFile: file, LogFormat: config.LFText}
		conf, err := loadConfig(newTestCommand(s), s)
		if err != nil {
			t.Fatalf("loadConfig() unexpected error %s", err)
		}

		if conf.Log.Level != "debug" || conf.Log.Format != config.LFJSON {
			t.Errorf("loadConfig() expected the file's values, got %+v", conf)
		}
	})

	t.Run("flags win over file", func(t *testing.T) {
		s := &RootSettings{ConfigFile: file, LogFormat: config.LFText}
		cmd := newTestCommand(s)
		if err := cmd.Flags().Set("log-level", "error"); err != nil {
			t.Fatal(err)
		}

		if err := cmd.Flags().Set("log-format", "text"); err != nil {
			t.Fatal(err)
		}

		conf, err := loadConfig(cmd, s)
		if err != nil {
			t.Fatalf("loadConfig() unexpected error %s", err)
		}

		if conf.Log.Level != "error" || conf.Log.Format != config.LFText {
			t.Errorf("loadConfig() expected the flag values, got %+v", conf)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		s := &RootSettings{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")}
		if _, err := loadConfig(newTestCommand(s), s); err == nil {
			t.Errorf("loadConfig() expected an error for a missing file")
		}
	})

	t.Run("bad flag value", func(t *testing.T) {
		s := &RootSettings{LogFormat: config.LFText}
		if err := newTestCommand(s).Flags().Set("log-format", "xml"); err == nil {
			t.Errorf("Expected the log-format flag to reject %q", "xml")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	conf := config.Default()
	conf.Log.Level = "warn"

	logger, err := newLogger(conf, &buf)
	if err != nil {
		t.Fatalf("newLogger() unexpected error %s", err)
	}

	if logger.Level != logrus.WarnLevel {
		t.Errorf("newLogger() level = %s, want %s", logger.Level, logrus.WarnLevel)
	}

	if f, ok := logger.Formatter.(*logrus.TextFormatter); !ok || !f.DisableColors {
		t.Errorf("newLogger() expected a colorless text formatter for a buffer, got %T", logger.Formatter)
	}

	conf.Log.Format = config.LFJSON
	logger, _ = newLogger(conf, &buf)
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("newLogger() expected a JSON formatter, got %T", logger.Formatter)
	}

	logger.Warn("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("newLogger() expected JSON output on the given writer, got %q", buf.String())
	}

	conf.Log.Level = "loud"
	if _, err := newLogger(conf, &buf); err == nil {
		t.Errorf("newLogger() expected an error for an unknown level")
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3")
	defer SetVersion("dev")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command failed %s", err)
	}

	if got, expect := out.String(), "v1.2.3\n"; got != expect {
		t.Errorf("Expected %q, got %q", expect, got)
	}
}
