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

package apis

import (
	"reflect"
)

// Resolver answers display-name questions about types, enum values and
// properties. Implementations memoize every successful answer and must be
// safe for concurrent use.
type Resolver interface {
	// IsFlags reports whether t was declared as a bitmask enum.
	IsFlags(t reflect.Type) bool

	// Flags splits bits into the declared members of t it contains, in
	// declaration order. For non-flag types it returns []uint64{bits}.
	Flags(t reflect.Type, bits uint64, includeZero bool) []uint64

	// ValueName returns the label of the member of t equal to bits, falling
	// back to the member identifier. ok is false when no member matches.
	ValueName(t reflect.Type, bits uint64) (name string, ok bool)

	// EnumName joins the labels of the flag components of bits with sep.
	EnumName(t reflect.Type, bits uint64, sep string, includeZero bool) string

	// Groupings returns the groupings declared on the member equal to bits.
	Groupings(t reflect.Type, bits uint64) []string

	// TypeName returns the type-level display annotation of t. It never
	// falls back to the Go type name.
	TypeName(t reflect.Type) (name string, ok bool)

	// PropertyName returns the display annotation of the named field of t.
	// It fails when t has no such field.
	PropertyName(t reflect.Type, property string) (name string, ok bool, err error)
}
