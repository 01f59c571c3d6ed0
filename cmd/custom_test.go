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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ptcalc.dev/ptcalc/pkg/pagetable"
	"ptcalc.dev/ptcalc/pkg/vaddr"
)

const testModes = `
[[arch]]
name = "two-level test mode"
description = "Minimal 2-level mode for tests."
addr_width = 32
page_offset_bits = 12
index_bits = 10
entry_size = 4
levels = 2

[[arch]]
name = "sv39"
description = "3 levels of 9 index bits over 4 KiB pages."
addr_width = 64
page_offset_bits = 12
index_bits = 9
entry_size = 8
levels = 3
`

func writeModes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modes.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing modes file: %v", err)
	}
	return path
}

func TestLoadCustomFirstEntry(t *testing.T) {
	path := writeModes(t, testModes)
	impl, err := loadCustom(path, "")
	if err != nil {
		t.Fatalf("loadCustom failed: %v", err)
	}
	want := &pagetable.Impl{
		Name:           "two-level test mode",
		Description:    "Minimal 2-level mode for tests.",
		Width:          vaddr.Width32,
		PageOffsetBits: 12,
		IndexBits:      10,
		EntrySize:      4,
		Levels:         2,
	}
	if diff := cmp.Diff(want, impl); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCustomByName(t *testing.T) {
	path := writeModes(t, testModes)
	impl, err := loadCustom(path, "sv39")
	if err != nil {
		t.Fatalf("loadCustom failed: %v", err)
	}
	if got, want := impl.Levels, uint64(3); got != want {
		t.Errorf("levels: got %d, wanted %d", got, want)
	}
	if got, want := impl.Width, vaddr.Width64; got != want {
		t.Errorf("width: got %v, wanted %v", got, want)
	}

	if _, err := loadCustom(path, "no such mode"); err == nil {
		t.Errorf("loadCustom with unknown name: expected error")
	}
}

func TestLoadCustomRejectsBadFiles(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"not toml", "level = [broken"},
		{"bad width", `
[[arch]]
name = "bad width"
addr_width = 48
page_offset_bits = 12
index_bits = 9
entry_size = 8
levels = 3
`},
		{"zero index bits", `
[[arch]]
name = "zero index bits"
addr_width = 64
page_offset_bits = 12
index_bits = 0
entry_size = 8
levels = 3
`},
		{"top level out of range", `
[[arch]]
name = "too many levels"
addr_width = 32
page_offset_bits = 12
index_bits = 10
entry_size = 4
levels = 3
`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeModes(t, tc.content)
			if _, err := loadCustom(path, ""); err == nil {
				t.Errorf("loadCustom should have failed")
			}
		})
	}

	if _, err := loadCustom(filepath.Join(t.TempDir(), "missing.toml"), ""); err == nil {
		t.Errorf("loadCustom with missing file: expected error")
	}
}
