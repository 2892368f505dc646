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
	"reflect"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/resolver"
)

// ErrPropertyNotFound matches the error returned for a property that does
// not exist on the requested type.
var ErrPropertyNotFound = resolver.ErrPropertyNotFound

// RegisterType attaches a type-level display label to t in the global registry.
func RegisterType(t reflect.Type, label string) error {
	return register(func(reg apis.Registry) error { return reg.RegisterType(t, label) })
}

// RegisterProperty attaches a display label to the field of t in the global registry.
func RegisterProperty(t reflect.Type, field, label string) error {
	return register(func(reg apis.Registry) error { return reg.RegisterProperty(t, field, label) })
}

// TypeDisplayName returns the type-level display label of t.
// Unlike enum members, there is no fallback to the Go type name.
func TypeDisplayName(t reflect.Type) (string, bool) {
	return st.Load().res.TypeName(t)
}

// TypeDisplayNameOf is TypeDisplayName for T.
func TypeDisplayNameOf[T any]() (string, bool) {
	return TypeDisplayName(reflect.TypeFor[T]())
}

// TypeDisplayNameOr returns fallback when t has no display label.
func TypeDisplayNameOr(t reflect.Type, fallback string) string {
	if name, ok := TypeDisplayName(t); ok {
		return name
	}
	return fallback
}

// PropertyDisplayName returns the display label of the named field of t.
// The field is searched among the fields declared on t first and among
// promoted fields after that. It fails with ErrPropertyNotFound when
// neither search finds it, and returns ok=false when the field has no label.
func PropertyDisplayName(t reflect.Type, property string) (string, bool, error) {
	return st.Load().res.PropertyName(t, property)
}

// PropertyDisplayNameOf is PropertyDisplayName for T.
func PropertyDisplayNameOf[T any](property string) (string, bool, error) {
	return PropertyDisplayName(reflect.TypeFor[T](), property)
}

// PropertyDisplayNameOr returns fallback when the field has no display label.
func PropertyDisplayNameOr(t reflect.Type, property, fallback string) (string, error) {
	name, ok, err := PropertyDisplayName(t, property)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return name, nil
}
