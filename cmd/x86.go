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

// X86 implements subcommands.Command for the "x86" command.
type X86 struct {
	// Physical Address Extension.
	pae bool
}

// Name implements subcommands.Command.Name.
func (*X86) Name() string {
	return "x86"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*X86) Synopsis() string {
	return "calculate page-table indices for 32-bit x86 paging"
}

// Usage implements subcommands.Command.Usage.
func (*X86) Usage() string {
	return `x86 [--pae] <virtual address>

Calculates the page-table lookup breakdown of a virtual address under
x86 paging. Plain x86 uses a 2-level page table; with --pae a 3-level
one. The address is hexadecimal with a mandatory 0x prefix; underscores
may group digits, e.g. 0xdead_beef. Input wider than 32 bits is
truncated.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (x *X86) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&x.pae, "pae", false, "use the Physical Address Extension (3-level page table).")
}

// Execute implements subcommands.Command.Execute.
func (x *X86) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	addr, err := parseAddr(f)
	if err != nil {
		return Errorf("%v", err)
	}
	impl := pagetable.ForFamily(pagetable.FamilyX86, x.pae)
	return run(&impl, addr)
}
