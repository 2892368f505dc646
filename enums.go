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

package weasel

import (
	"fmt"
	"reflect"

	"dirpx.dev/weasel/apis"
)

// EnumMember declares one constant of the enumerated type E.
type EnumMember[E apis.Integer] struct {
	// Value is the constant itself.
	Value E
	// Name is the Go identifier. If empty, Value's String method is used.
	Name string
	// Display is the display annotation, optional.
	Display string
	// Groupings lists the groups the member belongs to, optional.
	Groupings []string
}

// EnumOption modifies an enum declaration.
type EnumOption func(*apis.Enum)

// AsFlags marks the enum as a bitmask type.
func AsFlags() EnumOption {
	return func(e *apis.Enum) { e.Flags = true }
}

// RegisterEnum declares E and its members, in declaration order, in the
// global registry:
//
//	type Check uint8
//
//	const (
//	    One Check = 1 << iota
//	    Two
//	    Three
//	)
//
//	func init() {
//	    _ = weasel.RegisterEnum([]weasel.EnumMember[Check]{
//	        {Value: One, Name: "One", Display: "CHECK 1"},
//	        {Value: Two, Name: "Two", Display: "CHECK 2"},
//	        {Value: Three, Name: "Three", Display: "CHECK 3"},
//	    }, weasel.AsFlags())
//	}
func RegisterEnum[E apis.Integer](members []EnumMember[E], opts ...EnumOption) error {
	e := apis.Enum{
		Type:    reflect.TypeFor[E](),
		Members: make([]apis.Member, 0, len(members)),
	}
	for _, m := range members {
		name := m.Name
		if name == "" {
			if s, ok := any(m.Value).(fmt.Stringer); ok {
				name = s.String()
			}
		}
		e.Members = append(e.Members, apis.Member{
			Name:      name,
			Bits:      uint64(m.Value),
			Display:   m.Display,
			Groupings: m.Groupings,
		})
	}
	for _, opt := range opts {
		opt(&e)
	}
	return register(func(reg apis.Registry) error { return reg.RegisterEnum(e) })
}

// EnumDisplayName resolves v with the configured separator and zero policy.
// For flags, the labels of every contained member are joined in declaration
// order; a value matching no member yields "".
func EnumDisplayName[E apis.Integer](v E) string {
	s := st.Load()
	return s.res.EnumName(reflect.TypeFor[E](), uint64(v), s.cfg.Separator, s.cfg.IncludeZero)
}

// EnumDisplayNameWith is EnumDisplayName with an explicit separator, used
// verbatim, and zero policy.
func EnumDisplayNameWith[E apis.Integer](v E, sep string, includeZero bool) string {
	return st.Load().res.EnumName(reflect.TypeFor[E](), uint64(v), sep, includeZero)
}

// EnumDisplayNameOr returns fallback where EnumDisplayName returns "".
func EnumDisplayNameOr[E apis.Integer](v E, fallback string) string {
	if name := EnumDisplayName(v); name != "" {
		return name
	}
	return fallback
}

// EnumValueName returns the label of the single member equal to v, or its
// identifier when the member has no label.
func EnumValueName[E apis.Integer](v E) (string, bool) {
	return st.Load().res.ValueName(reflect.TypeFor[E](), uint64(v))
}

// Groupings returns the groupings declared on the member equal to v.
func Groupings[E apis.Integer](v E) []string {
	return st.Load().res.Groupings(reflect.TypeFor[E](), uint64(v))
}

// IsFlags reports whether t was registered as a bitmask type.
func IsFlags(t reflect.Type) bool {
	return st.Load().res.IsFlags(t)
}

// IsFlagsOf is IsFlags for E.
func IsFlagsOf[E apis.Integer]() bool {
	return IsFlags(reflect.TypeFor[E]())
}

// EnumerateFlags splits v into the declared members it contains, in
// declaration order. Zero members are dropped unless includeZero is set.
// For a non-flag type it returns []E{v}.
func EnumerateFlags[E apis.Integer](v E, includeZero bool) []E {
	bits := st.Load().res.Flags(reflect.TypeFor[E](), uint64(v), includeZero)
	out := make([]E, len(bits))
	for i, b := range bits {
		out[i] = E(b)
	}
	return out
}
