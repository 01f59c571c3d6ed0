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

// Package cli is the main entrypoint for ptcalc.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/subcommands"
	"golang.org/x/term"

	"ptcalc.dev/ptcalc/cmd"
	"ptcalc.dev/ptcalc/config"
	"ptcalc.dev/ptcalc/console"
	"ptcalc.dev/ptcalc/pkg/log"
	"ptcalc.dev/ptcalc/version"
)

// versionFlagName is the name of a flag that triggers printing the
// version.
const versionFlagName = "version"

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// Register with the main command line.
	config.RegisterFlags(flag.CommandLine)

	// Register version flag if it is not already defined.
	if flag.Lookup(versionFlagName) == nil {
		flag.Bool(versionFlagName, false, "show version and exit.")
	}

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	// Are we showing the version?
	if flag.Lookup(versionFlagName).Value.(flag.Getter).Get().(bool) {
		fmt.Fprintf(os.Stdout, "ptcalc version %s\n", version.Version())
		os.Exit(0)
	}

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flag.CommandLine)
	if err != nil {
		cmd.Fatalf("%v", err)
	}

	// Set up logging. Stdout and stderr carry the report, so logs are
	// discarded unless a debug log file is given.
	if conf.Debug {
		log.SetLevel(log.Debug)
	}
	logFile := io.Writer(io.Discard)
	if conf.DebugLog != "" {
		f, err := os.OpenFile(conf.DebugLog, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			cmd.Fatalf("error opening debug log file %q: %v", conf.DebugLog, err)
		}
		logFile = f
	}
	log.SetTarget(newEmitter(conf.LogFormat, logFile))

	// Resolve the styling switch once; everything downstream only
	// consults the resolved value.
	console.SetANSI(useANSI(conf.Color))

	log.Infof("ptcalc version %s, %s, %s", version.Version(), runtime.Version(), runtime.GOARCH)
	log.Debugf("args: %v", os.Args)

	os.Exit(int(subcommands.Execute(context.Background())))
}

// forEachCmd invokes the passed callback for each command supported by
// ptcalc.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")

	cb(new(cmd.X86), "")
	cb(new(cmd.X8664), "")
	cb(new(cmd.Custom), "")
	cb(new(cmd.Archs), "")
}

func newEmitter(format string, logFile io.Writer) log.Emitter {
	switch format {
	case config.LogFormatText:
		return log.TextEmitter{Writer: &log.Writer{Next: logFile}}
	case config.LogFormatJSON:
		return log.JSONEmitter{Writer: &log.Writer{Next: logFile}}
	}
	cmd.Fatalf("invalid log format %q, must be %q or %q", format, config.LogFormatText, config.LogFormatJSON)
	panic("unreachable")
}

// useANSI resolves the color option against the execution environment.
func useANSI(color config.ColorOption) bool {
	switch color {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return false
	}
}
