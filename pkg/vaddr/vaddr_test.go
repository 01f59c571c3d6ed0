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

package vaddr

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Addr
	}{
		{"0x123", 0x123},
		{"0x0", 0},
		{"0xdead_beef", 0xdeadbeef},
		{"    0xdEAd_bEEF    ", 0xdeadbeef},
		{"0xdead_beef_1337_1337", 0xdeadbeef13371337},
		{"0xffffffffffffffff", 0xffffffffffffffff},
	} {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q): got %v, wanted %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMissingPrefix(t *testing.T) {
	for _, in := range []string{"123", "deadbeef", "x123", ""} {
		if _, err := Parse(in); !errors.Is(err, ErrMissingPrefix) {
			t.Errorf("Parse(%q): got err %v, wanted ErrMissingPrefix", in, err)
		}
	}
}

func TestParseBadDigits(t *testing.T) {
	for _, in := range []string{
		"0x",
		"0xzzzz",
		"0x123 456",
		// 17 hex digits overflow a uint64.
		"0x1_0000_0000_0000_0000",
	} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q): expected error", in)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q): got err %v, wanted *ParseError", in, err)
		}
	}
}

func TestTruncate32(t *testing.T) {
	a, err := Parse("0xdead_beef_1337_1337")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, want := a.Truncate32(), Addr(0x13371337); got != want {
		t.Errorf("Truncate32: got %v, wanted %v", got, want)
	}
	if got, want := a.Masked(Width32), Addr(0x13371337); got != want {
		t.Errorf("Masked(Width32): got %v, wanted %v", got, want)
	}
	if got, want := a.Masked(Width64), a; got != want {
		t.Errorf("Masked(Width64): got %v, wanted %v", got, want)
	}
}

func TestAddrString(t *testing.T) {
	if got, want := Addr(0xdeadbeef).String(), "0x00000000deadbeef"; got != want {
		t.Errorf("String: got %q, wanted %q", got, want)
	}
}

func TestWidth(t *testing.T) {
	if got, want := Width32.String(), "32-bit"; got != want {
		t.Errorf("Width32.String: got %q, wanted %q", got, want)
	}
	if got, want := Width64.String(), "64-bit"; got != want {
		t.Errorf("Width64.String: got %q, wanted %q", got, want)
	}
	if got, want := Width32.Bits(), uint64(32); got != want {
		t.Errorf("Width32.Bits: got %d, wanted %d", got, want)
	}
	if got, want := Width64.Bits(), uint64(64); got != want {
		t.Errorf("Width64.Bits: got %d, wanted %d", got, want)
	}
}
