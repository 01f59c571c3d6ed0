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

// Package cmd holds implementations of the ptcalc commands.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"ptcalc.dev/ptcalc/console"
	"ptcalc.dev/ptcalc/pkg/log"
	"ptcalc.dev/ptcalc/pkg/pagetable"
	"ptcalc.dev/ptcalc/pkg/vaddr"
)

// Errorf logs an error to the debug log and to stderr, and returns
// ExitFailure for the calling command to hand back.
func Errorf(format string, args ...any) subcommands.ExitStatus {
	log.Warningf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// Fatalf logs an error and exits. It is reserved for failures before
// any command runs; commands themselves return Errorf.
func Fatalf(format string, args ...any) {
	Errorf(format, args...)
	os.Exit(128)
}

// parseAddr parses the single positional virtual-address argument
// common to all calculating commands. Callers check arity beforehand.
func parseAddr(f *flag.FlagSet) (vaddr.Addr, error) {
	addr, err := vaddr.Parse(f.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("invalid virtual address %q: %w", f.Arg(0), err)
	}
	return addr, nil
}

// run computes and renders the full lookup report for one descriptor
// and address.
func run(impl *pagetable.Impl, addr vaddr.Addr) subcommands.ExitStatus {
	log.Debugf("calculating %d levels for %v (%s)", impl.Levels, addr, impl.Name)
	metas := impl.LookupAllLevels(addr)
	if err := console.Report(os.Stdout, impl, addr, metas); err != nil {
		return Errorf("writing report: %v", err)
	}
	return subcommands.ExitSuccess
}
