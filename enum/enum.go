/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package enum implements bit-level analysis of registered enumerated types.
//
// Values of any integer width are widened to a 64-bit pattern (signed kinds
// sign-extended) so that a single code path handles int8 through uint64.
package enum

import (
	"errors"
	"reflect"
	"slices"

	"dirpx.dev/weasel/apis"
	uref "dirpx.dev/weasel/utils/reflect"
)

// ErrNotInteger is returned when a value is not of an integer kind.
var ErrNotInteger = errors.New("weasel(enum): value is not of an integer kind")

// Bits widens v to its 64-bit pattern.
func Bits(v reflect.Value) (uint64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	default:
		return 0, ErrNotInteger
	}
}

// Value builds a reflect.Value of the integer type t holding bits.
// Bits wider than t are truncated exactly as a Go conversion would.
func Value(t reflect.Type, bits uint64) (reflect.Value, error) {
	if t == nil || !uref.IsInteger(t.Kind()) {
		return reflect.Value{}, ErrNotInteger
	}
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(bits))
	default:
		v.SetUint(bits)
	}
	return v, nil
}

// IsZero reports whether the member value is zero, compared as a signed
// 64-bit integer.
func IsZero(m apis.Member) bool {
	return int64(m.Bits) == 0
}

// Has reports whether every bit of flag is set in bits.
// A zero flag is contained in every value.
func Has(bits, flag uint64) bool {
	return bits&flag == flag
}

// Enumerate splits bits into the members of e it contains.
//
// For a non-flag enum the result is []uint64{bits}, whatever includeZero
// says and whether or not bits names a member. For a flags enum, members
// are visited in declaration order and kept when Has(bits, member); zero
// members pass that test for any value, so they are removed afterwards
// unless includeZero is set.
func Enumerate(e apis.Enum, bits uint64, includeZero bool) []uint64 {
	if !e.Flags {
		return []uint64{bits}
	}
	kept := make([]apis.Member, 0, len(e.Members))
	for _, m := range e.Members {
		if Has(bits, m.Bits) {
			kept = append(kept, m)
		}
	}
	if !includeZero {
		kept = slices.DeleteFunc(kept, IsZero)
	}

	out := make([]uint64, len(kept))
	for i, m := range kept {
		out[i] = m.Bits
	}
	return out
}
