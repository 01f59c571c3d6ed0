// Copyright 2025 The ptcalc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the global flag-backed configuration of ptcalc.
// Flags are registered once on a FlagSet and read back into a Config
// after parsing, so tests can exercise the round trip on private
// FlagSets.
package config

import (
	"flag"
	"fmt"
)

// ColorOption controls when ANSI styling is used.
type ColorOption string

// Valid color options.
const (
	// ColorNever never uses ANSI escape sequences.
	ColorNever ColorOption = "never"
	// ColorAuto uses ANSI escape sequences only when stdout is a TTY.
	ColorAuto ColorOption = "auto"
	// ColorAlways always uses ANSI escape sequences.
	ColorAlways ColorOption = "always"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the global configuration. It is populated from flags and
// not mutated afterwards.
type Config struct {
	// Color is when to use ANSI styling on the report.
	Color ColorOption

	// Debug enables debug logging.
	Debug bool

	// DebugLog is the file to write logs to. Empty means logs are
	// discarded; stdout and stderr belong to the report.
	DebugLog string

	// LogFormat is the debug log format, "text" or "json".
	LogFormat string
}

// RegisterFlags registers the global flags on the given FlagSet.
func RegisterFlags(f *flag.FlagSet) {
	f.String("color", string(ColorAuto), "when to use ANSI styling: never, auto (only when stdout is a TTY), or always.")
	f.Bool("debug", false, "enable debug logging.")
	f.String("debug-log", "", "file to write debug logs to. If unset, logs are discarded.")
	f.String("log-format", LogFormatText, "debug log format: text or json.")
}

// NewFromFlags reads the parsed FlagSet back into a validated Config.
func NewFromFlags(f *flag.FlagSet) (*Config, error) {
	c := &Config{
		Color:     ColorOption(stringVal(f, "color")),
		Debug:     boolVal(f, "debug"),
		DebugLog:  stringVal(f, "debug-log"),
		LogFormat: stringVal(f, "log-format"),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorNever, ColorAuto, ColorAlways:
	default:
		return fmt.Errorf("invalid color option %q: must be %q, %q, or %q", c.Color, ColorNever, ColorAuto, ColorAlways)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, LogFormatText, LogFormatJSON)
	}
	return nil
}

func stringVal(f *flag.FlagSet, name string) string {
	return f.Lookup(name).Value.String()
}

func boolVal(f *flag.FlagSet, name string) bool {
	return f.Lookup(name).Value.(flag.Getter).Get().(bool)
}
