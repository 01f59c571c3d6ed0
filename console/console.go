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

// Package console renders lookup reports for a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"ptcalc.dev/ptcalc/pkg/pagetable"
	"ptcalc.dev/ptcalc/pkg/vaddr"
	"ptcalc.dev/ptcalc/version"
)

// useANSI is the process-wide styling switch. The CLI resolves the
// --color flag once at startup; the calculation packages never read it.
var useANSI atomic.Bool

// SetANSI enables or disables ANSI styling for all subsequent output.
func SetANSI(enabled bool) {
	useANSI.Store(enabled)
}

const (
	ansiReset       = "\x1b[0m"
	ansiBold        = "\x1b[1m"
	ansiBoldRed     = "\x1b[1;31m"
	ansiBrightBlack = "\x1b[90m"
)

func paintHeading(s string) string {
	if useANSI.Load() {
		return ansiBold + s + ansiReset
	}
	return s
}

// paintHighlight marks the bits used for indexing.
func paintHighlight(s string) string {
	if useANSI.Load() {
		return ansiBoldRed + s + ansiReset
	}
	return s
}

func paintHint(s string) string {
	if useANSI.Load() {
		return ansiBrightBlack + s + ansiReset
	}
	return s
}

// Report writes the full lookup breakdown for addr under impl. metas
// must be the ascending per-level sequence produced by
// impl.LookupAllLevels; the report prints levels outermost first.
func Report(w io.Writer, impl *pagetable.Impl, addr vaddr.Addr, metas []pagetable.LookupMeta) error {
	b := bufio.NewWriter(w)

	header(b, impl, addr)

	for i := len(metas) - 1; i >= 0; i-- {
		m := metas[i]
		fmt.Fprintf(b, "level %d bits  : %s\n", m.Level, bitRow(impl, m))
	}

	for i := len(metas) - 1; i >= 0; i-- {
		m := metas[i]
		first := i == len(metas)-1

		fmt.Fprintf(b, "level %d entry index : %6d", m.Level, m.Index)
		if first {
			fmt.Fprintf(b, "  %s", paintHint("(number of entry)"))
		}
		fmt.Fprintln(b)

		fmt.Fprintf(b, "level %d entry offset: 0x%04x", m.Level, m.EntryOffset(impl.EntrySize))
		if first {
			fmt.Fprintf(b, "  %s", paintHint("(offset into the page table for that entry)"))
		}
		fmt.Fprintln(b)
	}

	return b.Flush()
}

func header(b *bufio.Writer, impl *pagetable.Impl, addr vaddr.Addr) {
	fmt.Fprintf(b, "%s\n", paintHeading(fmt.Sprintf("Page Table Calculator (v%s): %s", version.Version(), impl.Name)))
	fmt.Fprintf(b, "%s\n\n", impl.Description)
	if impl.Width == vaddr.Width32 {
		t := uint64(addr.Truncate32())
		fmt.Fprintf(b, "address       : 0x%x  %s\n", t, paintHint("(user input truncated to 32-bit)"))
		fmt.Fprintf(b, "address (bits): 0b%032b\n", t)
	} else {
		fmt.Fprintf(b, "address       : %v\n", addr)
		fmt.Fprintf(b, "address (bits): 0b%064b\n", uint64(addr))
	}
}

// bitRow renders the address at one level's width with the index bits
// highlighted and everything else zeroed.
func bitRow(impl *pagetable.Impl, m pagetable.LookupMeta) string {
	width := impl.Width.Bits()

	zeroesRight := impl.PageOffsetBits + (m.Level-1)*impl.IndexBits

	// The top level's field may stick out beyond the address width
	// (x86 PAE level 3 has only 2 in-range bits); clamp the highlight.
	highlightBits := impl.IndexBits
	if zeroesRight+highlightBits > width {
		highlightBits = width - zeroesRight
	}

	zeroesLeft := width - zeroesRight - highlightBits

	return "0b" +
		strings.Repeat("0", int(zeroesLeft)) +
		paintHighlight(fmt.Sprintf("%0*b", int(highlightBits), m.Index)) +
		strings.Repeat("0", int(zeroesRight))
}
