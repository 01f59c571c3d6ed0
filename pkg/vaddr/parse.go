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
	"fmt"
	"strconv"
	"strings"
)

// hexPrefix is the required prefix for virtual address input.
const hexPrefix = "0x"

// ErrMissingPrefix is returned by Parse when the input does not start
// with "0x".
var ErrMissingPrefix = errors.New("virtual address must begin with the prefix 0x")

// ParseError is returned by Parse when the digits after the prefix do
// not form a 64-bit hexadecimal number.
type ParseError struct {
	// Text is the original user input.
	Text string
	// Err is the underlying strconv failure.
	Err error
}

// Error implements error.Error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a 64-bit hexadecimal address: %v", e.Text, e.Err)
}

// Unwrap supports errors.Is/As on the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts user-supplied hexadecimal text into an Addr. The 0x
// prefix is required. Surrounding whitespace, mixed case, and
// underscore digit separators are tolerated, e.g. "0xdEAd_bEEF".
func Parse(s string) (Addr, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, "_", "")
	if !strings.HasPrefix(t, hexPrefix) {
		return 0, ErrMissingPrefix
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(t, hexPrefix), 16, 64)
	if err != nil {
		return 0, &ParseError{Text: s, Err: err}
	}
	return Addr(v), nil
}
