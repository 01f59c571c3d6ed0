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

package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"ptcalc.dev/ptcalc/pkg/pagetable"
)

// X8664 implements subcommands.Command for the "x86_64" command.
type X8664 struct {
	// LA57, one additional page-table level.
	fiveLevel bool
}

// Name implements subcommands.Command.Name.
func (*X8664) Name() string {
	return "x86_64"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*X8664) Synopsis() string {
	return "calculate page-table indices for x86_64 paging"
}

// Usage implements subcommands.Command.Usage.
func (*X8664) Usage() string {
	return `x86_64 [--five-level] <virtual address>

Calculates the page-table lookup breakdown of a virtual address under
x86_64 paging. x86_64 uses a 4-level page table whose structure matches
x86 with PAE but with 64-bit virtual addresses; --five-level adds the
optional fifth level (LA57). The address is hexadecimal with a
mandatory 0x prefix; underscores may group digits.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (x *X8664) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&x.fiveLevel, "five-level", false, "use 5-level paging (LA57).")
	f.BoolVar(&x.fiveLevel, "5", false, "use 5-level paging (shorthand).")
}

// Execute implements subcommands.Command.Execute.
func (x *X8664) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	addr, err := parseAddr(f)
	if err != nil {
		return Errorf("%v", err)
	}
	impl := pagetable.ForFamily(pagetable.FamilyX8664, x.fiveLevel)
	return run(&impl, addr)
}
