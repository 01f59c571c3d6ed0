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

package pagetable

import (
	"fmt"

	"ptcalc.dev/ptcalc/pkg/vaddr"
)

// Impl describes one paging implementation. The shipped descriptors
// below are never mutated; Check holds for all of them by construction.
type Impl struct {
	// Name is the short human-readable name of the paging mode.
	Name string

	// Description explains the mode in a few lines of prose.
	Description string

	// Width is the virtual address width of the mode.
	Width vaddr.Width

	// PageOffsetBits is the number of bits indexing into the page. Two
	// to this power is the page size.
	PageOffsetBits uint64

	// IndexBits is the number of bits indexing one page table. Two to
	// this power is the number of entries per table. The count is
	// uniform across levels; no x86 mode varies it mid-address.
	IndexBits uint64

	// EntrySize is the size of one page-table entry in bytes.
	EntrySize uint64

	// Levels is the number of page-table levels.
	Levels uint64
}

// Family selects a processor family for descriptor lookup.
type Family int

// Supported families.
const (
	FamilyX86 Family = iota
	FamilyX8664
)

// String implements fmt.Stringer.String.
func (f Family) String() string {
	switch f {
	case FamilyX86:
		return "x86"
	case FamilyX8664:
		return "x86_64"
	default:
		return fmt.Sprintf("invalid family (%d)", int(f))
	}
}

// Shipped paging-mode descriptors.
var (
	// X86 is plain 32-bit x86 paging without PAE.
	X86 = Impl{
		Name:   "x86 32-bit paging",
		Levels: 2,
		Description: "x86 paging uses a 2-level page table. The page is indexed by 12 bits,\n" +
			"which results in a page-size of 4096 bytes. Each page table is indexed by 10\n" +
			"bits and has 2^10 == 1024 entries. Each page-table entry is 32-bit in size.\n" +
			"Hence, a page table occupies the size of a page. Huge pages have a size of\n" +
			"2^22 == 4 MiB.",
		Width:          vaddr.Width32,
		PageOffsetBits: 12,
		IndexBits:      10,
		EntrySize:      4,
	}

	// X86PAE is 32-bit x86 paging with the Physical Address Extension.
	X86PAE = Impl{
		Name:   "x86 32-bit paging with PAE",
		Levels: 3,
		Description: "x86 with the Physical Address Extension (PAE) paging uses a 3-level page table,\n" +
			"that enables to access more than 32-bit of physical address space. The page\n" +
			"is indexed by 12 bits, which results in a page-size of 4096 bytes. Tables\n" +
			"at level 1 and 2 are indexed by 9 bits and have 2^9 == 512 entries. The third-\n" +
			"level page table is indexed by 2 bits and has 2^2 == 4 entries. Each page-table\n" +
			"entry is 64-bit in size. Hence, a page table at levels 1 and 2 occupies the size\n" +
			"of a page whereas the level 3 page table occupies 32 byte. Huge pages have a size\n" +
			"of 2^21 == 2 MiB and are only valid on level 2.",
		Width:          vaddr.Width32,
		PageOffsetBits: 12,
		IndexBits:      9,
		EntrySize:      8,
	}

	// X8664 is 4-level x86_64 paging.
	X8664 = Impl{
		Name:   "x86_64 paging",
		Levels: 4,
		Description: "x86_64 paging uses a 4-level page table. The page is indexed by 12 bits,\n" +
			"which results in a page-size of 4096 bytes. Each page table is indexed by 9\n" +
			"bits and has 2^9 == 512 entries. Each page-table entry is 64-bit in size. Hence,\n" +
			"a page table occupies the size of a page. Huge pages have a size of\n" +
			"2^21 == 2 MiB or 2^30 == 1 GiB. Huge pages are only valid on levels 2 or 3.",
		Width:          vaddr.Width64,
		PageOffsetBits: 12,
		IndexBits:      9,
		EntrySize:      8,
	}

	// X86645Level is x86_64 paging with the LA57 extension.
	X86645Level = Impl{
		Name:   "x86_64 paging (5-level)",
		Levels: 5,
		Description: "x86_64 paging optionally uses a 5-level page table. The page is indexed\n" +
			"by 12 bits, which results in a page-size of 4096 bytes. Each page table is\n" +
			"indexed by 9 bits and has 2^9 == 512 entries. Each page-table entry is 64-bit in\n" +
			"size. Hence, a page table occupies the size of a page. Huge pages have a size of\n" +
			"2^21 == 2 MiB or 2^30 == 1 GiB. Huge pages are only valid on levels 2 or 3.",
		Width:          vaddr.Width64,
		PageOffsetBits: 12,
		IndexBits:      9,
		EntrySize:      8,
	}
)

// All returns the shipped descriptors in catalog order. The slice is
// freshly allocated; callers may reorder it.
func All() []Impl {
	return []Impl{X86, X86PAE, X8664, X86645Level}
}

// ForFamily returns the shipped descriptor for the given family and
// feature flag: PAE for FamilyX86, 5-level paging for FamilyX8664. It
// is a pure lookup; unknown families panic.
func ForFamily(family Family, feature bool) Impl {
	switch family {
	case FamilyX86:
		if feature {
			return X86PAE
		}
		return X86
	case FamilyX8664:
		if feature {
			return X86645Level
		}
		return X8664
	}
	panic(fmt.Sprintf("pagetable: unknown family %d", int(family)))
}

// LookupAllLevels computes the lookup metadata for every level of the
// paging mode, innermost level first. The result always has exactly
// impl.Levels entries with result[i].Level == i+1.
func (impl *Impl) LookupAllLevels(addr vaddr.Addr) []LookupMeta {
	metas := make([]LookupMeta, 0, impl.Levels)
	for level := uint64(1); level <= impl.Levels; level++ {
		metas = append(metas, CalculateIndex(impl.IndexBits, impl.PageOffsetBits, addr, level, impl.Width))
	}
	return metas
}

// PageSize returns the page size in bytes implied by PageOffsetBits.
func (impl *Impl) PageSize() uint64 {
	return uint64(1) << impl.PageOffsetBits
}

// EntriesPerTable returns the number of entries per table implied by
// IndexBits.
func (impl *Impl) EntriesPerTable() uint64 {
	return uint64(1) << impl.IndexBits
}

// Check validates a descriptor that did not come from the shipped
// catalog, e.g. one read from a user-supplied config file. The shipped
// descriptors satisfy it by construction.
func (impl *Impl) Check() error {
	if impl.Name == "" {
		return fmt.Errorf("paging mode has no name")
	}
	if impl.Width != vaddr.Width32 && impl.Width != vaddr.Width64 {
		return fmt.Errorf("address width must be 32 or 64, got %d", int(impl.Width))
	}
	if impl.PageOffsetBits == 0 {
		return fmt.Errorf("page offset bits must be > 0")
	}
	if impl.IndexBits == 0 {
		return fmt.Errorf("index bits must be > 0")
	}
	if impl.EntrySize == 0 {
		return fmt.Errorf("entry size must be > 0")
	}
	if impl.Levels == 0 {
		return fmt.Errorf("level count must be > 0")
	}
	// Every level must have at least one index bit inside the address
	// width. The top level may be partially out of range (x86 PAE's
	// level 3 uses only 2 of its 9 bits); the renderer clamps it.
	if topShift := impl.IndexBits*(impl.Levels-1) + impl.PageOffsetBits; topShift >= impl.Width.Bits() {
		return fmt.Errorf("level %d starts at bit %d, beyond the %v address width",
			impl.Levels, topShift, impl.Width)
	}
	return nil
}
