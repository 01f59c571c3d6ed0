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

// Package pagetable implements the paging arithmetic behind the
// calculator: given a paging mode's constants, it derives for each
// page-table level the index into that level's table and the address
// bits the index came from.
//
// Nothing here touches real page tables. All operations are pure
// arithmetic over the virtual address value and may be called from any
// goroutine without coordination.
package pagetable

import (
	"fmt"

	"ptcalc.dev/ptcalc/pkg/bits"
	"ptcalc.dev/ptcalc/pkg/vaddr"
)

// LookupMeta describes the lookup at a single page-table level. Meta
// because it carries the information needed to perform the lookup, not
// the lookup result itself.
type LookupMeta struct {
	// Addr is the virtual address the lookup was computed for.
	Addr vaddr.Addr

	// Level is the page-table level, counted from 1 at the innermost
	// table. Level 0 would be the page itself and is never computed.
	Level uint64

	// Index is the entry index into the level's table. It is always in
	// [0, 2^indexBits - 1].
	Index uint64

	// Shift is how far the address was shifted right so that the index
	// field lands at bit 0.
	Shift uint64

	// RelevantBits is the address with every bit outside this level's
	// index field cleared.
	RelevantBits uint64
}

// CalculateIndex computes the lookup metadata for one page-table level.
//
// indexBits is the number of address bits indexing one table (10 on
// x86, 9 on x86 with PAE and on x86_64) and pageOffsetBits the number
// of bits indexing into the page (12 for 4096-byte pages). level counts
// from 1 at the innermost table. A 32-bit width discards the upper half
// of addr before any computation.
//
// indexBits, pageOffsetBits, and level must all be non-zero. Violations
// indicate a defective caller or catalog entry, not bad user input, and
// panic rather than produce a garbage result.
func CalculateIndex(indexBits, pageOffsetBits uint64, addr vaddr.Addr, level uint64, width vaddr.Width) LookupMeta {
	switch {
	case indexBits == 0:
		panic("pagetable: indexBits must be > 0")
	case pageOffsetBits == 0:
		panic("pagetable: pageOffsetBits must be > 0")
	case level == 0:
		panic("pagetable: level must be > 0; level 0 is the page itself")
	}

	a := uint64(addr.Masked(width))

	// Level 1 sits just above the page offset; every further level is
	// one index field more to the left.
	shift := indexBits*(level-1) + pageOffsetBits

	mask := bits.MaskUpTo64(int(indexBits))
	index := (a >> shift) & mask
	relevant := a & (mask << shift)

	return LookupMeta{
		Addr:         addr,
		Level:        level,
		Index:        index,
		Shift:        shift,
		RelevantBits: relevant,
	}
}

// EntryOffset returns the byte offset of the entry inside its table for
// the given entry size.
func (m LookupMeta) EntryOffset(entrySize uint64) uint64 {
	return m.Index * entrySize
}

// String implements fmt.Stringer.String.
func (m LookupMeta) String() string {
	return fmt.Sprintf("level %d: index %d (shift %d)", m.Level, m.Index, m.Shift)
}
