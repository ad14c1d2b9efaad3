package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	LFJSON LogFormat = "json"
	LFText LogFormat = "text"
)

// Default is used when no config file is given
func Default() Config {
	c := Config{}
	c.Log.Level = "info"
	c.Log.Format = LFText

	return c
}

// NewConfig reads fileName on top of Default, keys missing from the file keep their default value.
func NewConfig(fileName string) (Config, error) {
	c := Default()

	b, err := os.ReadFile(fileName)
	if err != nil {
		return c, fmt.Errorf("unable to open %q, reason: %w", fileName, err)
	}

	_, err = toml.Decode(string(b), &c)
	if err != nil {
		return c, fmt.Errorf("unable to unmarshal %q, reason: %w", fileName, err)
	}

	return c, nil
}

// Config holds central config parameters. Vector sizes are fixed and intentionally not part of it.
type Config struct {
	Log struct {
		Level  string    `toml:"level"`
		Format LogFormat `toml:"format" usage:"The log output format \"json\" or \"text\""`
	} `toml:"log"`
}

type LogFormat string

func (vt LogFormat) String() string {
	return string(vt)
}

// Set validates v, so the type can back a command line flag
func (vt *LogFormat) Set(v string) error {
	return vt.UnmarshalText([]byte(v))
}

// Type is used by pflag in help output
func (vt LogFormat) Type() string {
	return "format"
}

func (vt *LogFormat) UnmarshalText(value []byte) error {
	validTypes := []string{string(LFJSON), string(LFText)}
	v := string(value)
	for _, t := range validTypes {
		if t == v {
			*vt = LogFormat(v)
			return nil
		}
	}

	expected := strings.Join(validTypes, ", ")
	return fmt.Errorf("unsupported value %q for log format. Expected one of: %q", value, expected)
}
