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

// Package bits provides non-atomic bit operations on uint64 values.
package bits

import "fmt"

// IsOn64 returns true if *all* bits set in 'bits' are set in 'mask'.
func IsOn64(mask, bits uint64) bool {
	return mask&bits == bits
}

// IsAnyOn64 returns true if *any* bit set in 'bits' is set in 'mask'.
func IsAnyOn64(mask, bits uint64) bool {
	return mask&bits != 0
}

// Mask64 returns a uint64 with all of the given bits set.
func Mask64(is ...int) uint64 {
	ret := uint64(0)
	for _, i := range is {
		ret |= MaskOf64(i)
	}
	return ret
}

// MaskOf64 is like Mask64, but sets only a single bit (more efficiently).
func MaskOf64(i int) uint64 {
	return uint64(1) << uint64(i)
}

// MaskUpTo64 returns a uint64 with the n lowest bits set. It is defined
// for the full range 0 <= n <= 64; n == 64 yields all ones. The mask is
// built one bit at a time so that no shift expression ever reaches the
// bit width.
func MaskUpTo64(n int) uint64 {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("MaskUpTo64: n must be in [0, 64], got %d", n))
	}
	ret := uint64(0)
	for i := 0; i < n; i++ {
		ret |= MaskOf64(i)
	}
	return ret
}
