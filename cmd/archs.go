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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"ptcalc.dev/ptcalc/pkg/pagetable"
)

// Archs implements subcommands.Command for the "archs" command.
type Archs struct{}

// Name implements subcommands.Command.Name.
func (*Archs) Name() string {
	return "archs"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Archs) Synopsis() string {
	return "list the supported paging modes"
}

// Usage implements subcommands.Command.Usage.
func (*Archs) Usage() string {
	return `archs

Lists the built-in paging modes and their constants.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Archs) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Archs) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEVELS\tADDRESS WIDTH\tPAGE SIZE\tENTRIES/TABLE\tENTRY SIZE")
	for _, impl := range pagetable.All() {
		fmt.Fprintf(w, "%s\t%d\t%v\t%d\t%d\t%d\n",
			impl.Name, impl.Levels, impl.Width, impl.PageSize(), impl.EntriesPerTable(), impl.EntrySize)
	}
	if err := w.Flush(); err != nil {
		return Errorf("writing table: %v", err)
	}
	return subcommands.ExitSuccess
}
