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

package console

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ptcalc.dev/ptcalc/pkg/pagetable"
	"ptcalc.dev/ptcalc/pkg/vaddr"
	"ptcalc.dev/ptcalc/version"
)

func TestReportX86(t *testing.T) {
	SetANSI(false)

	// Scenario address: level-2 index 1023, level-1 index 682.
	const addr = vaddr.Addr(0b1111111111_1010101010_001111000011)
	impl := pagetable.X86

	var sb strings.Builder
	if err := Report(&sb, &impl, addr, impl.LookupAllLevels(addr)); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	want := fmt.Sprintf("Page Table Calculator (v%s): %s\n", version.Version(), impl.Name) +
		impl.Description + "\n\n" +
		"address       : 0xffeaa3c3  (user input truncated to 32-bit)\n" +
		"address (bits): 0b11111111111010101010001111000011\n" +
		"level 2 bits  : 0b11111111110000000000000000000000\n" +
		"level 1 bits  : 0b00000000001010101010000000000000\n" +
		"level 2 entry index :   1023  (number of entry)\n" +
		"level 2 entry offset: 0x0ffc  (offset into the page table for that entry)\n" +
		"level 1 entry index :    682\n" +
		"level 1 entry offset: 0x0aa8\n"

	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestReportPAEHighlightClamp(t *testing.T) {
	SetANSI(false)

	// Level 3 of PAE uses only the top 2 address bits; its row must not
	// render 9 digits.
	const addr = vaddr.Addr(0b10_111111111_010101010_001111000011)
	impl := pagetable.X86PAE

	var sb strings.Builder
	if err := Report(&sb, &impl, addr, impl.LookupAllLevels(addr)); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	wantRow := "level 3 bits  : 0b10" + strings.Repeat("0", 30) + "\n"
	if !strings.Contains(sb.String(), wantRow) {
		t.Errorf("report misses clamped level-3 row %q:\n%s", wantRow, sb.String())
	}
}

func TestReport64BitHeader(t *testing.T) {
	SetANSI(false)

	const addr = vaddr.Addr(0xdeadbeef13371337)
	impl := pagetable.X8664

	var sb strings.Builder
	if err := Report(&sb, &impl, addr, impl.LookupAllLevels(addr)); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	out := sb.String()

	if want := "address       : 0xdeadbeef13371337\n"; !strings.Contains(out, want) {
		t.Errorf("report misses %q:\n%s", want, out)
	}
	if strings.Contains(out, "truncated") {
		t.Errorf("64-bit report must not mention truncation:\n%s", out)
	}
	wantBits := fmt.Sprintf("address (bits): 0b%064b\n", uint64(addr))
	if !strings.Contains(out, wantBits) {
		t.Errorf("report misses %q:\n%s", wantBits, out)
	}
}

func TestReportANSI(t *testing.T) {
	SetANSI(true)
	defer SetANSI(false)

	const addr = vaddr.Addr(0x1000)
	impl := pagetable.X86

	var sb strings.Builder
	if err := Report(&sb, &impl, addr, impl.LookupAllLevels(addr)); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, ansiBold) {
		t.Errorf("styled report misses the bold heading:\n%q", out)
	}
	if !strings.Contains(out, ansiBoldRed) {
		t.Errorf("styled report misses the index highlight:\n%q", out)
	}
}
