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

// Package vaddr provides the virtual address and address width types
// used by the page-table calculator.
package vaddr

import (
	"fmt"
)

// Addr represents a virtual address. It is always carried as 64 bits;
// paging modes with a 32-bit address width simply ignore the upper half.
type Addr uint64

// String implements fmt.Stringer.String.
func (a Addr) String() string {
	return fmt.Sprintf("0x%016x", uint64(a))
}

// Truncate32 returns the address with the upper 32 bits discarded.
func (a Addr) Truncate32() Addr {
	return a & 0xffffffff
}

// Masked returns the address clamped to the given width. A 64-bit width
// is the identity.
func (a Addr) Masked(w Width) Addr {
	if w == Width32 {
		return a.Truncate32()
	}
	return a
}

// Width is the width of a virtual address in bits.
type Width int

// Supported address widths.
const (
	Width32 Width = 32
	Width64 Width = 64
)

// Bits returns the width as a bit count.
func (w Width) Bits() uint64 {
	return uint64(w)
}

// String implements fmt.Stringer.String.
func (w Width) String() string {
	switch w {
	case Width32:
		return "32-bit"
	case Width64:
		return "64-bit"
	default:
		return fmt.Sprintf("invalid address width (%d)", int(w))
	}
}
