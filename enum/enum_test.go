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

package enum_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/enum"
)

type perm int8

type wide uint64

// signed returns the 64-bit pattern of a negative member value.
func signed(i int64) uint64 { return uint64(i) }

func flagsEnum() apis.Enum {
	return apis.Enum{
		Type:  reflect.TypeOf(perm(0)),
		Flags: true,
		Members: []apis.Member{
			{Name: "Z", Bits: 0},
			{Name: "A", Bits: 1},
			{Name: "B", Bits: 2},
			{Name: "C", Bits: 4},
		},
	}
}

func TestEnumerate_FlagsDeclarationOrder(t *testing.T) {
	e := flagsEnum()

	assert.Equal(t, []uint64{1, 2, 4}, enum.Enumerate(e, 7, false))
	assert.Equal(t, []uint64{0, 1, 2, 4}, enum.Enumerate(e, 7, true))
	assert.Equal(t, []uint64{1, 4}, enum.Enumerate(e, 5, false))
}

func TestEnumerate_ZeroValue(t *testing.T) {
	e := flagsEnum()

	assert.Empty(t, enum.Enumerate(e, 0, false))
	assert.Equal(t, []uint64{0}, enum.Enumerate(e, 0, true))
}

func TestEnumerate_DeclarationOrderNotBitOrder(t *testing.T) {
	e := apis.Enum{
		Type:  reflect.TypeOf(perm(0)),
		Flags: true,
		Members: []apis.Member{
			{Name: "High", Bits: 4},
			{Name: "Low", Bits: 1},
			{Name: "Both", Bits: 5},
		},
	}
	assert.Equal(t, []uint64{4, 1, 5}, enum.Enumerate(e, 5, false))
}

func TestEnumerate_NonFlagsReturnsValue(t *testing.T) {
	e := flagsEnum()
	e.Flags = false

	for _, includeZero := range []bool{false, true} {
		assert.Equal(t, []uint64{7}, enum.Enumerate(e, 7, includeZero))
		assert.Equal(t, []uint64{0}, enum.Enumerate(e, 0, includeZero))
		assert.Equal(t, []uint64{99}, enum.Enumerate(e, 99, includeZero))
	}
}

func TestEnumerate_NegativeAndWideMembers(t *testing.T) {
	e := apis.Enum{
		Type:  reflect.TypeOf(perm(0)),
		Flags: true,
		Members: []apis.Member{
			{Name: "None", Bits: 0},
			{Name: "One", Bits: 1},
			{Name: "All", Bits: signed(-1)},
		},
	}
	bits, err := enum.Bits(reflect.ValueOf(perm(-1)))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, bits}, enum.Enumerate(e, bits, false))

	top := uint64(math.MaxUint64 &^ (math.MaxUint64 >> 1))
	w := apis.Enum{
		Type:    reflect.TypeOf(wide(0)),
		Flags:   true,
		Members: []apis.Member{{Name: "Top", Bits: top}, {Name: "Bottom", Bits: 1}},
	}
	assert.Equal(t, []uint64{top, 1}, enum.Enumerate(w, top|1, false))
}

func TestValue_RoundTrip(t *testing.T) {
	v, err := enum.Value(reflect.TypeOf(perm(0)), signed(-3))
	require.NoError(t, err)
	assert.Equal(t, perm(-3), v.Interface())

	v, err = enum.Value(reflect.TypeOf(wide(0)), 42)
	require.NoError(t, err)
	assert.Equal(t, wide(42), v.Interface())

	_, err = enum.Value(reflect.TypeOf(""), 1)
	assert.ErrorIs(t, err, enum.ErrNotInteger)
}

func TestHasAndIsZero(t *testing.T) {
	assert.True(t, enum.Has(7, 0))
	assert.True(t, enum.Has(7, 3))
	assert.False(t, enum.Has(5, 3))
	assert.True(t, enum.IsZero(apis.Member{Bits: 0}))
	assert.False(t, enum.IsZero(apis.Member{Bits: 1 << 63}))
}
