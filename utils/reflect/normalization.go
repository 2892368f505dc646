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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
)

// Normalize unwraps pointers according to cfg.MaxUnwrap and returns the
// nearest named type, or an error if none is found.
//
// Only pointers are unwrapped: a display name belongs to T whether it is
// asked for through T, *T or **T, but []T is a different thing.
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Pointer && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Kind() != reflect.Pointer && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// QualifiedName returns a stable "pkg.Type" identifier for t, stripping any
// generic instantiation suffix. Builtin/no-package types yield the bare name.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// IsInteger reports whether k is a kind an enumerated type may have.
func IsInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// FindField looks up an exported field by name in two passes:
//
//  1. fields declared directly on the struct t;
//  2. fields promoted from embedded structs (reflect's FieldByName rules,
//     so ambiguous names are not found).
//
// t must already be normalized; non-struct types have no fields.
func FindField(t reflect.Type, name string) (reflect.StructField, bool) {
	if t == nil || t.Kind() != reflect.Struct || name == "" {
		return reflect.StructField{}, false
	}
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.Name == name && f.IsExported() {
			return f, true
		}
	}
	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return f, true
	}
	return reflect.StructField{}, false
}
