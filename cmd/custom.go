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

	"github.com/BurntSushi/toml"
	"github.com/google/subcommands"

	"ptcalc.dev/ptcalc/pkg/pagetable"
	"ptcalc.dev/ptcalc/pkg/vaddr"
)

// Custom implements subcommands.Command for the "custom" command.
type Custom struct {
	// Path to the TOML file holding the paging-mode descriptors.
	file string
	// Name of the descriptor to use; empty selects the first one.
	arch string
}

// Name implements subcommands.Command.Name.
func (*Custom) Name() string {
	return "custom"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Custom) Synopsis() string {
	return "calculate page-table indices for a user-defined paging mode"
}

// Usage implements subcommands.Command.Usage.
func (*Custom) Usage() string {
	return `custom --file=<modes.toml> [--arch=<name>] <virtual address>

Calculates the page-table lookup breakdown of a virtual address under a
paging mode read from a TOML file. The file holds one or more [[arch]]
tables:

	[[arch]]
	name = "riscv-ish sv39"
	description = "3 levels of 9 index bits over 4 KiB pages."
	addr_width = 64
	page_offset_bits = 12
	index_bits = 9
	entry_size = 8
	levels = 3

--arch selects a mode by name; without it the first one is used.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Custom) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "path to the TOML file with [[arch]] paging-mode descriptors.")
	f.StringVar(&c.arch, "arch", "", "name of the descriptor to use. Defaults to the first one in the file.")
}

// Execute implements subcommands.Command.Execute.
func (c *Custom) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 || c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	addr, err := parseAddr(f)
	if err != nil {
		return Errorf("%v", err)
	}
	impl, err := loadCustom(c.file, c.arch)
	if err != nil {
		return Errorf("%v", err)
	}
	return run(impl, addr)
}

// customFile mirrors the TOML schema of a custom paging-mode file.
type customFile struct {
	Arch []customArch `toml:"arch"`
}

type customArch struct {
	Name           string `toml:"name"`
	Description    string `toml:"description"`
	AddrWidth      uint64 `toml:"addr_width"`
	PageOffsetBits uint64 `toml:"page_offset_bits"`
	IndexBits      uint64 `toml:"index_bits"`
	EntrySize      uint64 `toml:"entry_size"`
	Levels         uint64 `toml:"levels"`
}

// loadCustom reads the descriptor named arch (or the first one, if arch
// is empty) from the TOML file at path and validates it.
func loadCustom(path, arch string) (*pagetable.Impl, error) {
	var cf customFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	if len(cf.Arch) == 0 {
		return nil, fmt.Errorf("no [[arch]] entries in %q", path)
	}

	pick := cf.Arch[0]
	if arch != "" {
		found := false
		for _, a := range cf.Arch {
			if a.Name == arch {
				pick, found = a, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no [[arch]] named %q in %q", arch, path)
		}
	}

	var width vaddr.Width
	switch pick.AddrWidth {
	case 32:
		width = vaddr.Width32
	case 64:
		width = vaddr.Width64
	default:
		return nil, fmt.Errorf("arch %q: addr_width must be 32 or 64, got %d", pick.Name, pick.AddrWidth)
	}

	impl := &pagetable.Impl{
		Name:           pick.Name,
		Description:    pick.Description,
		Width:          width,
		PageOffsetBits: pick.PageOffsetBits,
		IndexBits:      pick.IndexBits,
		EntrySize:      pick.EntrySize,
		Levels:         pick.Levels,
	}
	if err := impl.Check(); err != nil {
		return nil, fmt.Errorf("arch %q: %w", pick.Name, err)
	}
	return impl, nil
}
